package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Fees     FeeConfig      `mapstructure:"fees"`
	Pin      PinConfig      `mapstructure:"pin"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
	// AdminKey gates the /admin routes via the X-Admin-Key header.
	// Empty disables admin endpoints entirely.
	AdminKey string `mapstructure:"admin_key"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LedgerConfig holds engine-level settings.
type LedgerConfig struct {
	// FeeWalletOwner is the owner id of the system revenue wallet that
	// collects all fees. Must reference an existing wallet.
	FeeWalletOwner string `mapstructure:"fee_wallet_owner"`
	// ReferenceRetries bounds uniqueness retries before the generator
	// gives up with REF_001.
	ReferenceRetries int `mapstructure:"reference_retries"`
	// Amount bounds for externally constrained flows, in cents.
	CardDepositMinCents     int64 `mapstructure:"card_deposit_min_cents"`
	CardDepositMaxCents     int64 `mapstructure:"card_deposit_max_cents"`
	AgentWithdrawalMinCents int64 `mapstructure:"agent_withdrawal_min_cents"`
	AgentWithdrawalMaxCents int64 `mapstructure:"agent_withdrawal_max_cents"`
}

// FeeConfig is the injected fee schedule. Percentages are basis points
// (100 bp = 1%); flat amounts are cents.
type FeeConfig struct {
	TransferBasisPoints    int64 `mapstructure:"transfer_basis_points"`
	BillPaymentBasisPoints int64 `mapstructure:"bill_payment_basis_points"`
	TopUpFlatCents         int64 `mapstructure:"topup_flat_cents"`
	CardDepositBasisPoints int64 `mapstructure:"card_deposit_basis_points"`
	CardDepositFlatCents   int64 `mapstructure:"card_deposit_flat_cents"`
	AgentWithdrawalCents   int64 `mapstructure:"agent_withdrawal_cents"`
}

// PinConfig drives the PIN guard lockout policy.
type PinConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	Lockout     time.Duration `mapstructure:"lockout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MML_ (Mobile Money Ledger).
// Nested keys use underscore: MML_DATABASE_HOST, MML_FEES_TOPUP_FLAT_CENTS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.admin_key", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "mobile_money")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.lock_timeout", "5s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ledger.fee_wallet_owner", "")
	v.SetDefault("ledger.reference_retries", 5)
	v.SetDefault("ledger.card_deposit_min_cents", 10_000)      // 100.00 HTG
	v.SetDefault("ledger.card_deposit_max_cents", 5_000_000)   // 50,000.00 HTG
	v.SetDefault("ledger.agent_withdrawal_min_cents", 10_000)  // 100.00 HTG
	v.SetDefault("ledger.agent_withdrawal_max_cents", 2_500_000)
	v.SetDefault("fees.transfer_basis_points", 100)     // 1%
	v.SetDefault("fees.bill_payment_basis_points", 50)  // 0.5%
	v.SetDefault("fees.topup_flat_cents", 500)          // 5.00 HTG
	v.SetDefault("fees.card_deposit_basis_points", 250) // 2.5%
	v.SetDefault("fees.card_deposit_flat_cents", 1000)  // 10.00 HTG
	v.SetDefault("fees.agent_withdrawal_cents", 2500)   // 25.00 HTG
	v.SetDefault("pin.max_attempts", 5)
	v.SetDefault("pin.lockout", "30m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MML_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MML")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
