package main

import (
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/units"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func txCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Sign and submit transactions with the configured signer",
	}
	cmd.AddCommand(
		txApproveCommand(),
		txCloseCommand(),
		txExtendCommand(),
		txDonateCommand(),
	)
	return cmd
}

func txApproveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runTx(cmd, port.PayloadRequest{Kind: port.PayloadApprove, CampaignID: id})
		},
	}
}

func txCloseCommand() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Force-close a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runTx(cmd, port.PayloadRequest{Kind: port.PayloadClose, CampaignID: id, Reason: reason})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded with the closure")
	return cmd
}

func txExtendCommand() *cobra.Command {
	var deadline int64
	cmd := &cobra.Command{
		Use:   "extend <id>",
		Short: "Move a campaign deadline later",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runTx(cmd, port.PayloadRequest{
				Kind:                 port.PayloadExtendDeadline,
				CampaignID:           id,
				NewDeadlineEpochSecs: deadline,
			})
		},
	}
	cmd.Flags().Int64Var(&deadline, "deadline", 0, "new deadline in unix seconds")
	_ = cmd.MarkFlagRequired("deadline")
	return cmd
}

func txDonateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "donate <id> <amount>",
		Short: "Donate a whole-coin amount such as 0.5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, err := units.ToOctas(args[1])
			if err != nil {
				return err
			}
			return runTx(cmd, port.PayloadRequest{Kind: port.PayloadDonate, CampaignID: id, Amount: amount})
		},
	}
}

// runTx builds, submits and confirms req, printing the final record. A
// transaction that did not succeed fails the command.
func runTx(cmd *cobra.Command, req port.PayloadRequest) error {
	ctx := cmd.Context()
	a, err := newApp(fromContext(ctx))
	if err != nil {
		return err
	}
	defer a.Close()
	if a.signer == nil {
		return fmt.Errorf("%w: set LEDGER_SIGNER_KEY", domain.ErrSignerNotConfigured)
	}

	journal, err := a.openJournal(ctx)
	if err != nil {
		return err
	}
	svc := a.useCase(journal)

	p, err := svc.BuildPayload(ctx, req)
	if err != nil {
		return err
	}
	pending, err := svc.Submit(ctx, p)
	if err != nil {
		return err
	}
	a.logger.Info("waiting for confirmation", slog.String("hash", pending.Hash))

	rec, err := svc.AwaitConfirmation(ctx, pending.Hash, a.cfg.Ledger.ConfirmTimeout)
	if err != nil {
		return err
	}
	if err = printJSON(rec); err != nil {
		return err
	}
	switch rec.Status {
	case domain.TxSuccess:
		return nil
	case domain.TxTimeout:
		return fmt.Errorf("%w: %s", domain.ErrConfirmationTimeout, rec.Hash)
	default:
		return fmt.Errorf("%w: %s", domain.ErrTransactionFailed, rec.VMStatus)
	}
}
