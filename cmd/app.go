package main

import (
	"context"
	"crowdfund/internal/adapter/aptos"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/payload"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/resolver"
	"crowdfund/internal/db"
	"crowdfund/internal/metrics"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// app holds the components shared by all commands.
type app struct {
	*runtime
	registry *prometheus.Registry
	gateway  *aptos.Client
	builder  *payload.Builder
	resolver *resolver.Resolver
	signer   port.Signer
	closers  []func()
}

// newApp wires the gateway, builder and resolver from the loaded config.
// A configured signer key that does not parse is an error.
func newApp(rt *runtime) (*app, error) {
	if rt == nil {
		return nil, fmt.Errorf("no config loaded")
	}
	cfg := rt.cfg.Ledger

	builder, err := payload.NewBuilder(cfg.ModuleAddress, cfg.ModuleName)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewGateway(reg)

	gateway, err := aptos.New(aptos.Config{
		NodeURL:        cfg.NodeURL,
		RequestTimeout: cfg.RequestTimeout,
		MaxGasAmount:   cfg.MaxGasAmount,
		GasUnitPrice:   cfg.GasUnitPrice,
		TxExpiry:       cfg.TxExpiry,
		PollInterval:   cfg.PollInterval,
		ConfirmTimeout: cfg.ConfirmTimeout,
	}, rt.logger, m)
	if err != nil {
		return nil, err
	}

	a := &app{
		runtime:  rt,
		registry: reg,
		gateway:  gateway,
		builder:  builder,
		resolver: resolver.New(rt.logger, resolver.WithDropObserver(m.Dropped)),
	}
	if cfg.SignerKey != "" {
		signer, err := aptos.NewLocalSigner(cfg.SignerKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSignerNotConfigured, err)
		}
		a.signer = signer
		rt.logger.Info("server-side signing enabled", slog.String("signer", signer.Address()))
	}
	return a, nil
}

// openJournal connects the transaction journal when it is enabled and
// applies migrations when asked to.
func (a *app) openJournal(ctx context.Context) (port.TxJournal, error) {
	psql := a.cfg.Psql
	if !psql.Enabled {
		return nil, nil
	}
	if psql.RunMigrations {
		if err := db.Migrate(psql.Addr.String()); err != nil {
			return nil, fmt.Errorf("migrate journal: %w", err)
		}
		a.logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, psql)
	if err != nil {
		return nil, fmt.Errorf("connect journal: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	return postgres.NewTxJournal(pool), nil
}

// useCase builds the campaign usecase over the shared components.
func (a *app) useCase(journal port.TxJournal) *usecase.CampaignUseCase {
	opts := []usecase.Option{usecase.WithLogger(a.logger)}
	if journal != nil {
		opts = append(opts, usecase.WithJournal(journal))
	}
	if a.signer != nil {
		opts = append(opts, usecase.WithSigner(a.signer))
	}
	return usecase.NewCampaignUseCase(a.gateway, a.builder, a.resolver, opts...)
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
