package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("fails without BOT_TOKEN", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BOT_TOKEN")
	})

	t.Run("parses admin list", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("BOT_ADMIN_IDS", "100, 200,,junk,300")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []int64{100, 200, 300}, cfg.Bot.AdminIDs)
	})

	t.Run("session ttl default", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("BOT_SESSION_TTL_MIN", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cfg.Bot.SessionTTL)
	})

	t.Run("production requires a db password", func(t *testing.T) {
		t.Setenv("BOT_TOKEN", "123:abc")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")
	})
}

func TestIsAdmin(t *testing.T) {
	cfg := BotConfig{AdminIDs: []int64{100, 200}}
	assert.True(t, cfg.IsAdmin(100))
	assert.True(t, cfg.IsAdmin(200))
	assert.False(t, cfg.IsAdmin(300))
	assert.False(t, (&BotConfig{}).IsAdmin(100))
}
