package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"logistics/cmd"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "http://pedidos:8080", cfg.OrdersServiceURL)
	assert.Equal(t, "http://autenticador:8080", cfg.AuthServiceURL)
	assert.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "@every 30s", cfg.ProbeSchedule)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, log.INFO, cfg.EchoLogLevel())
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "routes")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("ORDERS_SERVICE_URL", "http://orders.local")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.GatewayTimeout)
	assert.Equal(t, "http://orders.local", cfg.OrdersServiceURL)
	assert.Equal(t, log.DEBUG, cfg.EchoLogLevel())
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=routes")
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROBE_SCHEDULE=@every 5m\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PROBE_SCHEDULE") })

	cfg, err := cmd.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "@every 5m", cfg.ProbeSchedule)
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("ROUTES_TIMEZONE", "Mars/Olympus")
	t.Setenv("GATEWAY_TIMEOUT", "0s")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROUTES_TIMEZONE")
	assert.Contains(t, err.Error(), "GATEWAY_TIMEOUT")
}

func TestConfig_DSN(t *testing.T) {
	t.Run("database url wins", func(t *testing.T) {
		cfg := cmd.Config{DatabaseURL: "postgres://u:p@h:5432/d", DBHost: "ignored"}

		assert.Equal(t, "postgres://u:p@h:5432/d", cfg.DSN())
	})

	t.Run("built from parts", func(t *testing.T) {
		cfg := cmd.Config{
			DBHost: "h", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "d", DBSslMode: "disable",
		}

		assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", cfg.DSN())
	})
}

func TestSetupLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logistics.log")
	logger, closer := cmd.SetupLogger(cmd.Config{LogLevel: "info", LogFormat: "text", LogFile: path})

	logger.Info("route created", "route_code", "ROU-0001")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "route_code=ROU-0001")
}
