package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	Timezone    string

	DBType            string
	DBPath            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	InvoiceNumberTemplate string
	DocumentDir           string
	SnowflakeNode         int64

	LogLevel  string
	LogFormat string

	OtelEnabled       bool
	OtelEndpoint      string
	OtelProtocol      string
	OtelSamplingRatio float64
	MetricsEnabled    bool

	// ConfigFile is the file viper read, empty when running on env and defaults only.
	ConfigFile string
}

const envPrefix = "GLASSWORKS"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "glassworks")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.timezone", "Asia/Kolkata")
	v.SetDefault("http.addr", "127.0.0.1:8080")

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "glassworks.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "glassworks")
	v.SetDefault("database.user", "glassworks")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_idle_conn", 2)
	v.SetDefault("database.max_open_conn", 4)
	v.SetDefault("database.conn_max_lifetime", 300)

	v.SetDefault("invoice.number_template", "GTI-{SEQ5}")
	v.SetDefault("invoice.document_dir", "documents")
	v.SetDefault("snowflake.node", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "localhost:4317")
	v.SetDefault("otel.protocol", "grpc")
	v.SetDefault("otel.sampling_ratio", 1.0)
	v.SetDefault("metrics.enabled", true)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("glassworks")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.glassworks")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// Load reads .env, the optional glassworks.yaml and GLASSWORKS_* environment variables.
func Load() (Config, error) {
	cfg, _, err := loadWithViper()
	return cfg, err
}

func loadWithViper() (Config, *viper.Viper, error) {
	_ = godotenv.Load()

	v := newViper()
	if err := readConfigFile(v); err != nil {
		return Config{}, nil, err
	}
	cfg, err := fromViper(v)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, v, nil
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName:     strings.TrimSpace(v.GetString("app.name")),
		AppVersion:  strings.TrimSpace(v.GetString("app.version")),
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("app.environment"))),
		HTTPAddr:    strings.TrimSpace(v.GetString("http.addr")),
		Timezone:    strings.TrimSpace(v.GetString("app.timezone")),

		DBType:            strings.ToLower(strings.TrimSpace(v.GetString("database.type"))),
		DBPath:            strings.TrimSpace(v.GetString("database.path")),
		DBHost:            v.GetString("database.host"),
		DBPort:            v.GetString("database.port"),
		DBName:            v.GetString("database.name"),
		DBUser:            v.GetString("database.user"),
		DBPassword:        v.GetString("database.password"),
		DBSSLMode:         v.GetString("database.sslmode"),
		DBMaxIdleConn:     v.GetInt("database.max_idle_conn"),
		DBMaxOpenConn:     v.GetInt("database.max_open_conn"),
		DBConnMaxLifetime: v.GetInt("database.conn_max_lifetime"),

		InvoiceNumberTemplate: strings.TrimSpace(v.GetString("invoice.number_template")),
		DocumentDir:           strings.TrimSpace(v.GetString("invoice.document_dir")),
		SnowflakeNode:         v.GetInt64("snowflake.node"),

		LogLevel:  strings.ToLower(strings.TrimSpace(v.GetString("log.level"))),
		LogFormat: strings.ToLower(strings.TrimSpace(v.GetString("log.format"))),

		OtelEnabled:       v.GetBool("otel.enabled"),
		OtelEndpoint:      strings.TrimSpace(v.GetString("otel.endpoint")),
		OtelProtocol:      strings.ToLower(strings.TrimSpace(v.GetString("otel.protocol"))),
		OtelSamplingRatio: v.GetFloat64("otel.sampling_ratio"),
		MetricsEnabled:    v.GetBool("metrics.enabled"),

		ConfigFile: v.ConfigFileUsed(),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBType {
	case "sqlite", "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database.type %q", c.DBType)
	}
	if c.InvoiceNumberTemplate == "" {
		return errors.New("invoice.number_template cannot be empty")
	}
	if !strings.Contains(c.InvoiceNumberTemplate, "{SEQ") {
		return errors.New("invoice.number_template must contain a {SEQ} token")
	}
	if c.SnowflakeNode < 0 || c.SnowflakeNode > 1023 {
		return fmt.Errorf("snowflake.node %d out of range", c.SnowflakeNode)
	}
	return nil
}

// IsDevelopment reports whether the app runs in a local or test environment.
func (c Config) IsDevelopment() bool {
	switch c.Environment {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
