package session

import (
	"context"
	"curasync-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ExpiredSessionPurger is a session store that keeps expired entries until
// asked to drop them. Redis expires keys by itself and does not need one.
type ExpiredSessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) int
}

// Sweeper periodically purges expired sessions from an in-process store.
type Sweeper struct {
	log    *zap.Logger
	spec   string
	purger ExpiredSessionPurger
	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewSweeper(purger ExpiredSessionPurger, spec string, logger *zap.Logger) *Sweeper {
	return &Sweeper{log: logger, spec: spec, purger: purger}
}

// Start schedules the sweep on spec, falling back to once a minute when the
// spec does not parse.
func (s *Sweeper) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	c := cron.New()
	_, err := c.AddFunc(s.spec, func() { s.runOnce(runCtx) })
	if err != nil {
		s.log.Warn("Sweeper.Start invalid cron spec, falling back to default",
			zap.String("spec", s.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(constvars.DefaultSessionSweepCronSpec, func() { s.runOnce(runCtx) })
	}
	c.Start()
	s.cron = c
}

// Stop cancels the run context and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	purged := s.purger.PurgeExpiredSessions(ctx)
	if purged > 0 {
		s.log.Info("Sweeper purged expired sessions", zap.Int(constvars.LoggingPurgedCountKey, purged))
	}
}
