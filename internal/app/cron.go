package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/pkg/logger"
)

// TokenPurger drops revocation entries whose token already expired.
type TokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Cron schedules the background jobs. The returned scheduler is started.
func Cron(p TokenPurger, cfg *config.Config, l logger.Interface) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(cfg.Schedule.RevokedTokensPurge, purgeRevokedTokens(p, l))
	if err != nil {
		return nil, fmt.Errorf("cron - add revoked tokens purge: %w", err)
	}

	c.Start()

	return c, nil
}

func purgeRevokedTokens(p TokenPurger, l logger.Interface) func() {
	return func() {
		ctx := context.WithoutCancel(context.Background())

		n, err := p.PurgeExpired(ctx)
		if err != nil {
			l.Error("Cron job - PurgeExpired failed: %v", err)

			return
		}

		l.Info("Cron job - PurgeExpired removed %d revoked tokens", n)
	}
}
