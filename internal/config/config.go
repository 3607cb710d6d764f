package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the application.
type Config struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Review    Review         `mapstructure:"review"`
	Reminder  Reminder       `mapstructure:"reminder"`
	Mailer    Mailer         `mapstructure:"mailer"`
	Mandrill  Mandrill       `mapstructure:"mandrill"`
	SMTP      SMTP           `mapstructure:"smtp"`
	Dandomain Dandomain      `mapstructure:"dandomain"`
	Webhook   Webhook        `mapstructure:"webhook"`
	Scheduler Scheduler      `mapstructure:"scheduler"`
	Retry     retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds the SQLite file location.
type Database struct {
	Path string `mapstructure:"path"`
}

// Review controls first-send timing.
type Review struct {
	DelayDays int `mapstructure:"delay_days"` // days between order event and first mail
}

// Reminder holds the follow-up window and rollout allow-list.
type Reminder struct {
	MinDays          float64  `mapstructure:"min_days"`
	MaxDays          float64  `mapstructure:"max_days"`
	AllowlistEnabled bool     `mapstructure:"allowlist_enabled"`
	Allowlist        []string `mapstructure:"allowlist"`
}

// Mailer holds channel selection and template settings.
type Mailer struct {
	Enabled        bool   `mapstructure:"enabled"`
	Channel        string `mapstructure:"channel"` // mandrill or smtp
	FromEmail      string `mapstructure:"from_email"`
	FromName       string `mapstructure:"from_name"`
	Subject        string `mapstructure:"subject"`
	TemplatePath   string `mapstructure:"template_path"`
	GoogleURL      string `mapstructure:"google_url"`
	PricerunnerURL string `mapstructure:"pricerunner_url"`
	TrustpilotURL  string `mapstructure:"trustpilot_url"`
}

// Mandrill holds the transactional API key.
type Mandrill struct {
	APIKey string `mapstructure:"api_key"`
}

// SMTP holds configuration for the fallback SMTP channel.
type SMTP struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// Dandomain holds the webshop API access configuration.
type Dandomain struct {
	ShopID        string `mapstructure:"shop_id"`
	GraphQLURL    string `mapstructure:"graphql_url"`
	OAuthURL      string `mapstructure:"oauth_url"`
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	WebhookSecret string `mapstructure:"webhook_secret"`

	// VerifyWebhooks turns on HMAC checking of incoming webhooks. The shop
	// does not sign its webhooks today, so this stays off by default.
	VerifyWebhooks bool `mapstructure:"verify_webhooks"`

	// Debug exposes the token and order probe routes.
	Debug bool `mapstructure:"debug"`
}

// Webhook holds the raw payload archive location.
type Webhook struct {
	LogDir         string `mapstructure:"log_dir"`
	FallbackLogDir string `mapstructure:"fallback_log_dir"`
}

// Scheduler holds the poll interval.
type Scheduler struct {
	Interval time.Duration `mapstructure:"interval"`
}

// EffectiveGraphQLURL returns the explicit GraphQL endpoint, or the one
// derived from the shop id.
func (d Dandomain) EffectiveGraphQLURL() string {
	if d.GraphQLURL != "" {
		return d.GraphQLURL
	}
	if d.ShopID != "" {
		return fmt.Sprintf("https://%s.mywebshop.io/api/graphql", d.ShopID)
	}
	return ""
}

// EffectiveOAuthURL returns the explicit token endpoint, or the one derived
// from the shop id.
func (d Dandomain) EffectiveOAuthURL() string {
	if d.OAuthURL != "" {
		return d.OAuthURL
	}
	if d.ShopID != "" {
		return fmt.Sprintf("https://%s.mywebshop.io/auth/oauth/token", d.ShopID)
	}
	return ""
}

// mustBindEnv binds critical environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"server.http_port": "PORT",
		"database.path":    "SQLITE_PATH",

		"review.delay_days": "REVIEW_DELAY_DAYS",

		"reminder.min_days":          "REVIEW_REMINDER_MIN_DAYS",
		"reminder.max_days":          "REVIEW_REMINDER_MAX_DAYS",
		"reminder.allowlist":         "REVIEW_REMINDER_ALLOWLIST",
		"reminder.allowlist_enabled": "REVIEW_REMINDER_ALLOWLIST_ENABLED",

		"mailer.enabled":         "MAILER_ENABLED",
		"mailer.channel":         "MAILER_CHANNEL",
		"mailer.from_email":      "FROM_EMAIL",
		"mailer.from_name":       "FROM_NAME",
		"mailer.google_url":      "GOOGLE_URL",
		"mailer.pricerunner_url": "PRICERUNNER_URL",
		"mailer.trustpilot_url":  "TRUSTPILOT_URL",

		"mandrill.api_key": "MANDRILL_API_KEY",

		"smtp.host":     "SMTP_HOST",
		"smtp.port":     "SMTP_PORT",
		"smtp.username": "SMTP_USER",
		"smtp.password": "SMTP_PASS",
		"smtp.from":     "SMTP_FROM",

		"dandomain.shop_id":        "DANDOMAIN_SHOP_ID",
		"dandomain.graphql_url":    "DANDOMAIN_GRAPHQL_URL",
		"dandomain.oauth_url":      "DANDOMAIN_OAUTH_URL",
		"dandomain.client_id":      "DANDOMAIN_CLIENT_ID",
		"dandomain.client_secret":  "DANDOMAIN_CLIENT_SECRET",
		"dandomain.webhook_secret": "DANDOMAIN_TOKEN",

		"webhook.log_dir": "WEBHOOK_LOG_DIR",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

func setDefaults() {
	viper.SetDefault("server.http_port", ":8080")
	viper.SetDefault("database.path", "./data/review-mails.sqlite")
	viper.SetDefault("review.delay_days", 14)
	viper.SetDefault("reminder.min_days", 7)
	viper.SetDefault("reminder.max_days", 14)
	viper.SetDefault("reminder.allowlist_enabled", true)
	viper.SetDefault("mailer.channel", "mandrill")
	viper.SetDefault("mailer.template_path", "./templates/review.html")
	viper.SetDefault("webhook.log_dir", "/data/webhook-logs")
	viper.SetDefault("webhook.fallback_log_dir", "./data/webhook-logs")
	viper.SetDefault("scheduler.interval", time.Minute)
	viper.SetDefault("retry.attempts", 3)
	viper.SetDefault("retry.delay", 100*time.Millisecond)
	viper.SetDefault("retry.backoff", 2)
}

// Must loads and validates the configuration from file and environment
// variables.
//
// It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults plus environment are enough to run without a file.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			zlog.Logger.Panic().Err(err).Msg("failed to read config")
		}
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
