package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	Log           LogConfig
	HTTP          HTTPConfig
	Ledger        LedgerConfig
	Notifications NotificationsConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// DatabaseConfig holds database connection settings. Driver selects
// postgres (the deployment default) or sqlite for a single-file local
// install.
type DatabaseConfig struct {
	Driver          string // postgres, sqlite
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Path            string // sqlite file path
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // in minutes
	ConnMaxIdleTime int // in minutes
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// LedgerConfig holds the chart-of-accounts policy constants: the root
// payable account id for each partner kind. The ids match the seeded
// chart.
type LedgerConfig struct {
	SupplierRootAccountID        int
	ClearingAgentRootAccountID   int
	TrackingCompanyRootAccountID int
	InsurerRootAccountID         int
	BrokerRootAccountID          int
}

// NotificationPolicyConfig is the due-window for one reminder category
type NotificationPolicyConfig struct {
	LookaheadDays  int
	LowerBoundDays int
}

// NotificationsConfig holds per-category reminder windows
type NotificationsConfig struct {
	ETA         NotificationPolicyConfig
	Installment NotificationPolicyConfig
	Recurring   NotificationPolicyConfig
}

// Load loads configuration from a YAML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with DEALEROPS_ prefix (e.g., DEALEROPS_DATABASE_PASSWORD)
// 2. config.yaml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("DEALEROPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("database.driver"),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.dbname"),
			SSLMode:         v.GetString("database.sslmode"),
			Path:            v.GetString("database.path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),
			ConnMaxIdleTime: v.GetInt("database.conn_max_idle_time"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Ledger: LedgerConfig{
			SupplierRootAccountID:        v.GetInt("ledger.supplier_root_account_id"),
			ClearingAgentRootAccountID:   v.GetInt("ledger.clearing_agent_root_account_id"),
			TrackingCompanyRootAccountID: v.GetInt("ledger.tracking_company_root_account_id"),
			InsurerRootAccountID:         v.GetInt("ledger.insurer_root_account_id"),
			BrokerRootAccountID:          v.GetInt("ledger.broker_root_account_id"),
		},
		Notifications: NotificationsConfig{
			ETA: NotificationPolicyConfig{
				LookaheadDays:  v.GetInt("notifications.eta_lookahead_days"),
				LowerBoundDays: v.GetInt("notifications.eta_lower_bound_days"),
			},
			Installment: NotificationPolicyConfig{
				LookaheadDays:  v.GetInt("notifications.installment_lookahead_days"),
				LowerBoundDays: v.GetInt("notifications.installment_lower_bound_days"),
			},
			Recurring: NotificationPolicyConfig{
				LookaheadDays:  v.GetInt("notifications.recurring_lookahead_days"),
				LowerBoundDays: v.GetInt("notifications.recurring_lower_bound_days"),
			},
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "dealerops-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "postgres"
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = "dealerops"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "dealerops.db"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 60
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 30
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}

	// Root payable account ids in the seeded chart
	if cfg.Ledger.SupplierRootAccountID == 0 {
		cfg.Ledger.SupplierRootAccountID = 11
	}
	if cfg.Ledger.ClearingAgentRootAccountID == 0 {
		cfg.Ledger.ClearingAgentRootAccountID = 14
	}
	if cfg.Ledger.TrackingCompanyRootAccountID == 0 {
		cfg.Ledger.TrackingCompanyRootAccountID = 15
	}
	if cfg.Ledger.InsurerRootAccountID == 0 {
		cfg.Ledger.InsurerRootAccountID = 16
	}
	if cfg.Ledger.BrokerRootAccountID == 0 {
		cfg.Ledger.BrokerRootAccountID = 17
	}
	// Reminder windows default to 0..5 days per category
	if cfg.Notifications.ETA.LookaheadDays == 0 {
		cfg.Notifications.ETA.LookaheadDays = 5
	}
	if cfg.Notifications.Installment.LookaheadDays == 0 {
		cfg.Notifications.Installment.LookaheadDays = 5
	}
	if cfg.Notifications.Recurring.LookaheadDays == 0 {
		cfg.Notifications.Recurring.LookaheadDays = 5
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}

	if c.App.Env == "production" {
		if c.Database.Driver == "postgres" && c.Database.Password == "" {
			return fmt.Errorf("database.password is required in production")
		}
		if c.Database.Driver == "postgres" && c.Database.SSLMode == "disable" {
			return fmt.Errorf("database.sslmode cannot be 'disable' in production")
		}
	}

	for _, p := range []NotificationPolicyConfig{c.Notifications.ETA, c.Notifications.Installment, c.Notifications.Recurring} {
		if p.LookaheadDays < p.LowerBoundDays {
			return fmt.Errorf("notification lookahead (%d) cannot be below its lower bound (%d)",
				p.LookaheadDays, p.LowerBoundDays)
		}
	}

	return nil
}

// DSN returns the postgres connection string with properly escaped values
func (d *DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
