package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  port: "9090"
  jwt_signing_key: secret
  allowed_cors_domains: [http://a.test]
postgres:
  host: localhost
  port: "5432"
  user: hunt
  password: hunt
  db: hunts
redis:
  url: redis://localhost:6379/0
`)
	t.Setenv("POSTGRES_HOST", "db.internal")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, "development", conf.API.Environment)
	assert.Equal(t, []string{"http://a.test"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "db.internal", conf.Postgres.Host)
	assert.Equal(t, "disable", conf.Postgres.SSLMode)
	assert.Equal(t, 30*time.Second, conf.Redis.SummaryTTL)
	assert.True(t, conf.Worker.Enabled)
	assert.Equal(t, "@every 1m", conf.Worker.SweepCron)
	assert.Contains(t, conf.Postgres.DSN(), "host=db.internal")
}

func TestLoadRequiresSigningKey(t *testing.T) {
	path := writeConfig(t, `
api:
  port: "9090"
postgres:
  host: localhost
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "jwt_signing_key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
