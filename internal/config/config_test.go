package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: engine and redis defaults apply
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
		assert.Equal(t, 2, conf.Engine.Depth)
		assert.False(t, conf.Engine.Pruning)
		assert.False(t, conf.Engine.Debug)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, int64(100), conf.Redis.StatsLimit)

		first, computer, err := conf.Engine.Players()
		require.NoError(t, err)
		assert.Equal(t, othello.Black, first)
		assert.Equal(t, othello.White, computer)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		path := writeConfig(t, "engine:\n  depth: 5\n  pruning: true\n  computer: black\n")

		conf := MustLoad(path)

		assert.Equal(t, 5, conf.Engine.Depth)
		assert.True(t, conf.Engine.Pruning)

		_, computer, err := conf.Engine.Players()
		require.NoError(t, err)
		assert.Equal(t, othello.Black, computer)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})

	t.Run("Invalid depth panics", func(t *testing.T) {
		path := writeConfig(t, "engine:\n  depth: -1\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Unknown computer colour", func(t *testing.T) {
		conf := &Config{Engine: Engine{Depth: 2, Computer: "red", First: "black"}}

		require.ErrorIs(t, conf.Validate(), othello.ErrUnknownPlayer)
	})

	t.Run("Unknown first mover", func(t *testing.T) {
		conf := &Config{Engine: Engine{Depth: 2, Computer: "white", First: "green"}}

		require.ErrorIs(t, conf.Validate(), othello.ErrUnknownPlayer)
	})

	t.Run("Non-positive depth", func(t *testing.T) {
		conf := &Config{Engine: Engine{Depth: -1, Computer: "white", First: "black"}}

		require.ErrorIs(t, conf.Validate(), apperror.ErrInvalidDepth)
	})
}

func TestEngine_Players(t *testing.T) {
	t.Run("Parses both colours", func(t *testing.T) {
		engine := &Engine{First: "w", Computer: "Black"}

		first, computer, err := engine.Players()

		require.NoError(t, err)
		assert.Equal(t, othello.White, first)
		assert.Equal(t, othello.Black, computer)
	})

	t.Run("Unvalidated colour is reported", func(t *testing.T) {
		// Given: an engine section that never went through Validate
		engine := &Engine{First: "black"}

		// When: resolving the players
		_, _, err := engine.Players()

		// Then: the empty computer colour is an error, not a zero Player
		require.ErrorIs(t, err, othello.ErrUnknownPlayer)
	})
}
