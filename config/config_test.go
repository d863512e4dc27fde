package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "mobile_money", cfg.Database.DBName)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.LockTimeout)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.Equal(t, 5, cfg.Ledger.ReferenceRetries)
	assert.Equal(t, int64(10_000), cfg.Ledger.CardDepositMinCents)
	assert.Equal(t, int64(5_000_000), cfg.Ledger.CardDepositMaxCents)
	assert.Equal(t, int64(2_500_000), cfg.Ledger.AgentWithdrawalMaxCents)

	assert.Equal(t, int64(100), cfg.Fees.TransferBasisPoints)
	assert.Equal(t, int64(50), cfg.Fees.BillPaymentBasisPoints)
	assert.Equal(t, int64(500), cfg.Fees.TopUpFlatCents)
	assert.Equal(t, int64(250), cfg.Fees.CardDepositBasisPoints)
	assert.Equal(t, int64(1000), cfg.Fees.CardDepositFlatCents)
	assert.Equal(t, int64(2500), cfg.Fees.AgentWithdrawalCents)

	assert.Equal(t, 5, cfg.Pin.MaxAttempts)
	assert.Equal(t, 30*time.Minute, cfg.Pin.Lockout)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
database:
  host: "db.example.com"
  port: 5433
  user: "ledger"
  password: "secret123"
  dbname: "ledgerdb"
fees:
  transfer_basis_points: 150
  topup_flat_cents: 700
pin:
  max_attempts: 3
  lockout: "15m"
`)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, int64(150), cfg.Fees.TransferBasisPoints)
	assert.Equal(t, int64(700), cfg.Fees.TopUpFlatCents)
	// Unset keys keep defaults.
	assert.Equal(t, int64(50), cfg.Fees.BillPaymentBasisPoints)
	assert.Equal(t, 3, cfg.Pin.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Pin.Lockout)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MML_DATABASE_HOST", "env-db-host")
	t.Setenv("MML_FEES_AGENT_WITHDRAWAL_CENTS", "3000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-db-host", cfg.Database.Host)
	assert.Equal(t, int64(3000), cfg.Fees.AgentWithdrawalCents)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "localhost", Port: 5432,
		User: "u", Password: "p", DBName: "wallets", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/wallets?sslmode=disable", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
