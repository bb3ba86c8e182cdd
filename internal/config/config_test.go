package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("JWT_TTL", "24h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TTL)
	assert.Equal(t, "pt-BR", cfg.TMDB.Language)
	assert.Equal(t, "0 3 * * *", cfg.Jobs.MovieSyncCron)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := Load()
	assert.ErrorContains(t, err, "load config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *AppConfig) {}},
		{name: "zero ttl", mutate: func(c *AppConfig) { c.Auth.TTL = 0 }, wantErr: true},
		{name: "negative pool", mutate: func(c *AppConfig) { c.Database.MaxIdleConns = -1 }, wantErr: true},
		{name: "no tmdb pages", mutate: func(c *AppConfig) { c.TMDB.PagesPerList = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &AppConfig{
				Auth: AuthConfig{Secret: "x", TTL: time.Hour},
				TMDB: TMDBConfig{PagesPerList: 1},
			}
			tt.mutate(c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestLocation(t *testing.T) {
	c := &AppConfig{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, c.Location())

	c.Timezone = "Local"
	assert.Equal(t, time.Local, c.Location())
}
