package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingAPIKey     = errors.New("mailchimp api key is not configured")
	ErrInvalidAPIKey     = errors.New("mailchimp api key has no data center suffix")
	ErrMissingAudienceID = errors.New("mailchimp audience id is not configured")
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Mailchimp Mailchimp `mapstructure:",squash"`
	Admin     Admin     `mapstructure:",squash"`
	Cache     Cache     `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type Mailchimp struct {
	APIKey             string        `mapstructure:"mailchimp_api_key"`
	AudienceID         string        `mapstructure:"mailchimp_audience_id"`
	BaseURL            string        `mapstructure:"mailchimp_base_url"`
	Timeout            time.Duration `mapstructure:"mailchimp_timeout"`
	ArchiveCount       int           `mapstructure:"mailchimp_archive_count"`
	ReportCount        int           `mapstructure:"mailchimp_report_count"`
	GrowthHistoryCount int           `mapstructure:"mailchimp_growth_history_count"`
}

type Admin struct {
	Password    string        `mapstructure:"admin_dashboard_password"`
	TokenSecret string        `mapstructure:"admin_token_secret"`
	TokenTTL    time.Duration `mapstructure:"admin_token_ttl"`
}

type Cache struct {
	Driver        string        `mapstructure:"cache_driver"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	MetricsTTL    time.Duration `mapstructure:"cache_metrics_ttl"`
	ArchiveTTL    time.Duration `mapstructure:"cache_archive_ttl"`
}

// DataCenter extrai o data center da API key (`xxxx-us1` → `us1`)
func (m Mailchimp) DataCenter() (string, error) {
	if m.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	parts := strings.Split(m.APIKey, "-")
	if len(parts) < 2 || parts[1] == "" {
		return "", ErrInvalidAPIKey
	}

	return parts[1], nil
}

// APIURL retorna a URL base da API, respeitando MAILCHIMP_BASE_URL quando informado
func (m Mailchimp) APIURL() (string, error) {
	dc, err := m.DataCenter()
	if err != nil {
		return "", err
	}

	if m.BaseURL != "" {
		return strings.TrimRight(m.BaseURL, "/"), nil
	}

	return fmt.Sprintf("https://%s.api.mailchimp.com/3.0", dc), nil
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("READ_HEADER_TIMEOUT", 2*time.Second)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 15*time.Second)

	viper.SetDefault("MAILCHIMP_API_KEY", "")
	viper.SetDefault("MAILCHIMP_AUDIENCE_ID", "")
	viper.SetDefault("MAILCHIMP_BASE_URL", "")
	viper.SetDefault("MAILCHIMP_TIMEOUT", 30*time.Second)
	viper.SetDefault("MAILCHIMP_ARCHIVE_COUNT", 50)
	viper.SetDefault("MAILCHIMP_REPORT_COUNT", 1000)
	viper.SetDefault("MAILCHIMP_GROWTH_HISTORY_COUNT", 30)

	viper.SetDefault("ADMIN_DASHBOARD_PASSWORD", "")
	viper.SetDefault("ADMIN_TOKEN_SECRET", "")
	viper.SetDefault("ADMIN_TOKEN_TTL", 12*time.Hour)

	// Janelas de revalidação das leituras do Mailchimp
	viper.SetDefault("CACHE_DRIVER", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_METRICS_TTL", 5*time.Minute)
	viper.SetDefault("CACHE_ARCHIVE_TTL", time.Hour)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using process environment: ", err)
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	for i, origin := range config.Server.AllowedOrigins {
		config.Server.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// Warnings lista problemas de configuração que não impedem o servidor de subir,
// mas que farão as rotas dependentes responderem com erro de configuração
func (c *Config) Warnings() []string {
	var warnings []string

	if _, err := c.Mailchimp.DataCenter(); err != nil {
		warnings = append(warnings, err.Error())
	}

	if c.Mailchimp.AudienceID == "" {
		warnings = append(warnings, ErrMissingAudienceID.Error())
	}

	if c.Admin.Password == "" {
		warnings = append(warnings, "admin dashboard password is not configured")
	}

	return warnings
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
