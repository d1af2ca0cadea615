package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// TokenSweeper periodically deletes session rows whose last_active sits at
// or past the token idle timeout. The validation path already rejects such
// rows, so the sweep only reclaims storage — it can never evict a live
// session.
type TokenSweeper struct {
	tokens   store.TokenRepository
	interval time.Duration
	clock    utils.Clock
	logger   *logger.Logger
}

// NewTokenSweeper constructs a [TokenSweeper] that runs every interval.
func NewTokenSweeper(tokens store.TokenRepository, interval time.Duration, clock utils.Clock, logger *logger.Logger) *TokenSweeper {
	return &TokenSweeper{
		tokens:   tokens,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

// Run implements [Worker]. It starts the sweep loop in its own goroutine
// and returns immediately; the loop lives for the rest of the process.
func (s *TokenSweeper) Run() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			s.Sweep(context.Background())
		}
	}()
}

// Sweep performs one eviction pass: every row idle for at least the token
// TTL is deleted.
func (s *TokenSweeper) Sweep(ctx context.Context) {
	cutoff := s.clock.Now() - service.TokenIdleSeconds

	removed, err := s.tokens.DeleteIdleBefore(ctx, cutoff)
	if err != nil {
		s.logger.Err(err).Str("func", "*TokenSweeper.Sweep").Msg("idle token sweep failed")
		return
	}

	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("swept idle tokens")
	}
}
