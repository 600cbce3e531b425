package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
user = "appointments"
password = "secret"
dbname = "appointments"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "info"

[directory]
url = "http://localhost:1337/api"
token = "test-token"
timeout = 5
max_redirects = 3

[booking]
pending_blocks_slot = true
`

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t, 8083, cfg.Server.HTTPPort)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, "http://localhost:1337/api", cfg.Directory.URL)
		assert.True(t, cfg.Booking.PendingBlocksSlot)
	})

	t.Run("dsn", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfig))
		require.NoError(t, err)

		assert.Equal(t,
			"host=localhost port=5432 user=appointments password=secret dbname=appointments sslmode=disable",
			cfg.Database.DSN())
	})

	t.Run("directory timeout defaults", func(t *testing.T) {
		content := `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "appointments"

[directory]
url = "http://localhost:1337/api"
`
		cfg, err := Load(writeConfig(t, content))
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Directory.Timeout)
	})

	t.Run("missing directory url", func(t *testing.T) {
		content := `
[server]
http_port = 8083

[database]
host = "localhost"
dbname = "appointments"
`
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err)
	})

	t.Run("missing port", func(t *testing.T) {
		_, err := Load(writeConfig(t, `[database]
host = "localhost"
dbname = "appointments"`))
		assert.Error(t, err)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		assert.Error(t, err)
	})
}
