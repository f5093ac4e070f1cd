package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-equipos/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SECRET_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.NotEmpty(t, cfg.Session.Secret, "en desarrollo se usa un secreto fijo")
	assert.Equal(t, config.DefaultAdminPassword, cfg.Seed.AdminPassword)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "15")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cr3t", cfg.Session.Secret)
	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.Session.TTLMinutes)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_ProduccionSinSecretFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ProduccionConAdminPorDefectoFalla(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SECRET_KEY", "s3cr3t")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD", config.DefaultAdminPassword)
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("ADMIN_PASSWORD", "otra-clave-segura")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "otra-clave-segura", cfg.Seed.AdminPassword)
}

func TestValidate_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{
		DB:      config.DBConfig{Driver: "sqlite"},
		Session: config.SessionConfig{Secret: "x", TTLMinutes: 10},
	}
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}
