package bootstrap

import (
	"context"
	"testing"

	"go-healthcare-records/config"
	"go-healthcare-records/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevel(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	log := setupLogger(config.LogConfig{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = setupLogger(config.LogConfig{Level: "chatty"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewSessionRepositoryMemory(t *testing.T) {
	repo, client, err := newSessionRepository(context.Background(), testConfig(), nullLogger())
	require.NoError(t, err)
	assert.NotNil(t, repo)
	assert.Nil(t, client)
}

func TestNewSessionRepositoryRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Session.Store = config.SessionStoreRedis
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: mr.Port()}

	repo, client, err := newSessionRepository(ctx, cfg, nullLogger())
	require.NoError(t, err)
	require.NotNil(t, client)
	defer client.Close()

	created, err := repo.Create(ctx, "s1", entity.Identity{ID: "doc1", Role: entity.RoleDoctor}, 0)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, mr.Exists("session:s1"))
}

func TestNewSessionRepositoryRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Session.Store = config.SessionStoreRedis
	cfg.Redis = config.RedisConfig{Host: mr.Host(), Port: mr.Port()}
	mr.Close()

	_, _, err := newSessionRepository(context.Background(), cfg, nullLogger())
	assert.Error(t, err)
}

func nullLogger() *logrus.Logger {
	log, _ := test.NewNullLogger()
	return log
}
