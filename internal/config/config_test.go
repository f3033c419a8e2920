package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3018", cfg.AppPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 60*time.Second, cfg.CacheTTL)
	assert.Equal(t, int64(1000), cfg.EarnAmount)
	assert.Zero(t, cfg.EarnCooldown)
	assert.True(t, decimal.RequireFromString("0.6").Equal(cfg.SellBackRate))
	assert.False(t, cfg.CatalogAdminOnly)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	t.Setenv("GAME_EARN_COOLDOWN", "30s")
	t.Setenv("SELL_BACK_RATE", "0.5")
	t.Setenv("CATALOG_ADMIN_ONLY", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DSN())
	assert.Equal(t, 30*time.Second, cfg.EarnCooldown)
	assert.True(t, decimal.RequireFromString("0.5").Equal(cfg.SellBackRate))
	assert.True(t, cfg.CatalogAdminOnly)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("SELL_BACK_RATE", "1.5")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{DBDriver: DriverMySQL, DBUser: "u", DBPassword: "p", DBHost: "db", DBName: "rpg"}
	assert.Equal(t, "u:p@tcp(db:3306)/rpg?parseTime=true", cfg.DSN())

	cfg.DBDriver = DriverPostgres
	cfg.DBPort = "6543"
	assert.Equal(t, "host=db user=u password=p dbname=rpg port=6543 sslmode=disable TimeZone=UTC", cfg.DSN())
}
