package reorder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

const sweepTimeout = 2 * time.Minute

// ReorderLister is satisfied by the item application service.
type ReorderLister interface {
	ListNeedingReorder(ctx context.Context) ([]*models.Item, error)
}

// Sweep periodically hands every active item needing stock to the notifier.
// It catches items whose purchase event was lost or whose threshold was
// crossed before the worker started.
type Sweep struct {
	items    ReorderLister
	notifier Notifier
	cron     *cron.Cron
	log      logger.Logger
}

// NewSweep builds a sweep whose schedule is evaluated in loc.
func NewSweep(items ReorderLister, notifier Notifier, log logger.Logger, loc *time.Location) *Sweep {
	if loc == nil {
		loc = time.UTC
	}
	return &Sweep{
		items:    items,
		notifier: notifier,
		cron:     cron.New(cron.WithLocation(loc)),
		log:      log,
	}
}

// Start schedules the sweep with a standard 5-field cron expression.
func (s *Sweep) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("schedule reorder sweep %q: %w", schedule, err)
	}
	s.cron.Start()
	s.log.Info("reorder sweep scheduled", "schedule", schedule)
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Sweep) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("reorder sweep stopped")
}

func (s *Sweep) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.RunOnce(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "reorder sweep failed", "notified", n, "error", err)
		return
	}
	s.log.InfoContext(ctx, "reorder sweep finished", "notified", n)
}

// RunOnce notifies every item needing reorder and returns how many were handed
// off. A failing item is logged and skipped.
func (s *Sweep) RunOnce(ctx context.Context) (int, error) {
	items, err := s.items.ListNeedingReorder(ctx)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, item := range items {
		if err := s.notifier.NotifyReorder(ctx, item.ID, TriggerSweep); err != nil {
			s.log.WarnContext(ctx, "reorder sweep: notify failed", "item_id", item.ID, "error", err)
			continue
		}
		notified++
	}
	return notified, nil
}
