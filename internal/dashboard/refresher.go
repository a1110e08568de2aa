package dashboard

import (
	"context"
	"time"

	"github.com/ryazanov/inkstudio/internal/models"
	"go.uber.org/zap"
)

// Refresher periodically re-loads the order list so the dashboard follows
// server-side status changes without user action.
type Refresher struct {
	list     *OrderList
	interval time.Duration
	logger   *zap.Logger

	// OnRefresh, when set, receives the refreshed order list after each tick
	OnRefresh func(orders []models.Order)
}

// NewRefresher creates new Refresher instance
func NewRefresher(list *OrderList, interval time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{
		list:     list,
		interval: interval,
		logger:   logger,
	}
}

// Run re-loads orders on every tick until the context is done
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("order refresher is done")
			return
		case <-ticker.C:
			orders := r.list.LoadOrders(ctx)
			if r.OnRefresh != nil {
				r.OnRefresh(orders)
			}
		}
	}
}
