package auth

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RecoverySweeper periodically clears expired password recovery tokens so
// stale tokens do not linger on user documents.
type RecoverySweeper struct {
	repo   UserRepository
	logger *zap.Logger
}

func NewRecoverySweeper(repo UserRepository, logger *zap.Logger) *RecoverySweeper {
	return &RecoverySweeper{repo: repo, logger: logger}
}

// StartSweeper runs the background sweep every ten minutes for the lifetime
// of the process.
func (s *RecoverySweeper) StartSweeper(lc fx.Lifecycle) {
	ticker := time.NewTicker(10 * time.Minute)
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.Info("starting recovery token sweeper")
			go func() {
				sweepCtx := context.Background()
				for {
					select {
					case <-ticker.C:
						cleared, err := s.repo.ClearExpiredResetTokens(sweepCtx)
						if err != nil {
							s.logger.Error("recovery token sweep failed", zap.Error(err))
							continue
						}
						if cleared > 0 {
							s.logger.Info("cleared expired recovery tokens", zap.Int64("count", cleared))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("stopping recovery token sweeper")
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
