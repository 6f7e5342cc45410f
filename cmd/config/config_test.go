package config_test

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/e-voting/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_EXPIRATION", "")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionExpTime)
	assert.Equal(t, "votingapp.com", cfg.Payment.EmailDomain)
	assert.False(t, cfg.Audit.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("PAYMENT_ATTEMPT_EXPIRATION", "5m")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Payment.AttemptExpiration)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: 3306, User: "voter", Password: "secret", Name: "votes",
	}}

	assert.Equal(t, "voter:secret@tcp(db:3306)/votes?parseTime=true&loc=UTC&multiStatements=true&clientFoundRows=true", cfg.GetDSN())
}

func TestConfig_GetDSN_CountsMatchedRows(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: 3306, User: "voter", Password: "secret", Name: "votes",
	}}

	parsed, err := mysql.ParseDSN(cfg.GetDSN())
	require.NoError(t, err)
	assert.True(t, parsed.ClientFoundRows)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "votes", parsed.DBName)
}
