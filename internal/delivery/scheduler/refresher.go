// Package scheduler refreshes the signed-in principal's events in the background.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"planner/config"
	"planner/internal/delivery"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/lifecycle"
	"planner/internal/errors"
	"planner/internal/usecase"
	"planner/internal/util"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// RefresherParams holds dependencies for the refresher, injected by Fx.
type RefresherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Events usecase.EventSyncUsecase
}

type refresher struct {
	spec    string
	timeout time.Duration
	events  usecase.EventSyncUsecase
	logger  *slog.Logger
	cron    *cron.Cron
}

// NewRefresher creates the background refresh job. An empty schedule
// produces a refresher that does nothing.
func NewRefresher(params RefresherParams) (delivery.Delivery, error) {
	// Leaves room for credential retries on top of the list call itself.
	timeout := 2 * params.Cfg.EventAPI.Timeout

	r := newRefresher(params.Cfg.Sync.AutoRefresh, timeout, params.Events, params.Logger)
	if err := r.schedule(); err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.stop,
	})

	return r, nil
}

func newRefresher(spec string, timeout time.Duration, events usecase.EventSyncUsecase, logger *slog.Logger) *refresher {
	return &refresher{
		spec:    spec,
		timeout: timeout,
		events:  events,
		logger:  logger,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

func (r *refresher) schedule() error {
	if r.spec == "" {
		return nil
	}

	if _, err := r.cron.AddFunc(r.spec, r.run); err != nil {
		return errors.Wrapf(err, "invalid sync.autoRefresh schedule %q", r.spec)
	}

	return nil
}

// Serve starts the schedule and returns immediately.
func (r *refresher) Serve(ctx context.Context) error {
	if r.spec == "" {
		r.logger.Info("Background refresh disabled")

		return nil
	}

	r.logger.Info("Starting background refresh",
		slog.String("schedule", r.spec),
		slog.String("timeout", util.FormatDuration(r.timeout)),
	)
	r.cron.Start()

	return nil
}

// run refreshes once. Nobody signed in is not an error here.
func (r *refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	err := r.events.Refresh(ctx)
	switch {
	case err == nil:
		r.logger.Debug("Background refresh completed")
	case errors.IsAny(err, domainerrors.ErrNotAuthenticated, domainerrors.ErrPrincipalChanged):
		r.logger.Debug("Background refresh skipped", slog.Any("reason", err))
	default:
		r.logger.Warn("Background refresh failed", slog.Any("error", err))
	}
}

func (r *refresher) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}
