package workers

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Workers is an aggregate that holds a collection of Worker instances
// and allows running all of them together via a single Run call.
type Workers struct {
	// workers is the list of Worker instances managed by this aggregate.
	workers []Worker
}

// NewWorkers constructs the background worker bundle: currently just the
// token sweeper that evicts session rows idle past the token TTL.
func NewWorkers(storages *store.Storages, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewTokenSweeper(storages.TokenRepository, cfg.TokenSweepInterval, utils.SystemClock{}, log),
		},
	}
}

// Run starts all registered workers sequentially by calling Run on each
// one.
//
// Workers are executed in the order they were added. Long-running workers
// spawn goroutines in their own Run implementations, so this call returns
// promptly.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
