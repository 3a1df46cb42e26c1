package main

import (
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func campaignsCommand() *cobra.Command {
	var status, query string
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "List the campaigns on the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(fromContext(cmd.Context()))
			if err != nil {
				return err
			}
			defer a.Close()

			filter := port.ListFilter{Query: query}
			if status != "" {
				if filter.Status, err = domain.ParseStatus(status); err != nil {
					return err
				}
			}
			views, err := a.useCase(nil).ListCampaigns(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(views)
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "", "only list campaigns with this status")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search title and description")
	return cmd
}

func campaignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "campaign <id>",
		Short: "Show one campaign with its donor count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(fromContext(cmd.Context()))
			if err != nil {
				return err
			}
			defer a.Close()

			c, err := a.useCase(nil).GetCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(c)
		},
	}
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: campaign id %q", domain.ErrInvalidRequest, s)
	}
	return id, nil
}
