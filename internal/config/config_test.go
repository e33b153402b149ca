package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "9091", conf.SocketPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Game.TTL)
	})

	t.Run("Reads game settings", func(t *testing.T) {
		// Given: a config with custom players and the bot holding O
		path := writeConfig(t, `
storage: memory
game:
  ttl: 30m
  player-1-name: Alice
  player-2-name: Bob
  bot-name: HAL
  bot-mark: O
`)

		// When: it is loaded
		conf, err := Load(path)
		require.NoError(t, err)

		// Then: the board options reflect it
		opts := conf.Game.BoardOptions()
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, 30*time.Minute, conf.Game.TTL)
		assert.Equal(t, entity.Player{Name: "Alice", Mark: entity.PlayerX}, opts.Player1)
		assert.Equal(t, entity.Player{Name: "Bob", Mark: entity.PlayerO}, opts.Player2)
		assert.Equal(t, entity.Player{Name: "HAL", Mark: entity.PlayerO}, opts.Bot)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: mongo\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage")
	})

	t.Run("Rejects an invalid bot mark", func(t *testing.T) {
		path := writeConfig(t, "game:\n  bot-mark: Z\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
