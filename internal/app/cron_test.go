package app

import (
	"context"
	"errors"
	"testing"

	"github.com/savioruz/geoapi/config"
	"github.com/savioruz/geoapi/internal/domains/auth/mock"
	log "github.com/savioruz/geoapi/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCron(t *testing.T) {
	t.Run("error: invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := &config.Config{Schedule: config.Schedule{RevokedTokensPurge: "not a schedule"}}

		c, err := Cron(mock.NewMockAuthService(ctrl), cfg, log.NewMockInterface(ctrl))

		assert.Nil(t, c)
		assert.Error(t, err)
	})

	t.Run("success: schedule registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := &config.Config{Schedule: config.Schedule{RevokedTokensPurge: "@hourly"}}

		c, err := Cron(mock.NewMockAuthService(ctrl), cfg, log.NewMockInterface(ctrl))

		require.NoError(t, err)
		t.Cleanup(func() { c.Stop() })
		assert.Len(t, c.Entries(), 1)
	})
}

func TestPurgeRevokedTokens(t *testing.T) {
	t.Run("logs the purged count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockAuthService(ctrl)
		l := log.NewMockInterface(ctrl)

		svc.EXPECT().PurgeExpired(gomock.Any()).Return(int64(3), nil)
		l.EXPECT().Info("Cron job - PurgeExpired removed %d revoked tokens", int64(3))

		purgeRevokedTokens(svc, l)()
	})

	t.Run("logs the failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockAuthService(ctrl)
		l := log.NewMockInterface(ctrl)

		svc.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
			assert.NoError(t, ctx.Err())

			return 0, errors.New("db down")
		})
		l.EXPECT().Error("Cron job - PurgeExpired failed: %v", gomock.Any())

		purgeRevokedTokens(svc, l)()
	})
}
