package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
}

type ExternalConfig struct {
	MapsBaseURL  string
	MapsAPIKey   string
	TollsBaseURL string
	TollsAPIKey  string
	Timeout      time.Duration
}

type CalculationConfig struct {
	WorkHours         float64
	QuoteValidityDays int
	SessionTTL        time.Duration
}

type StorageConfig struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

type UploadConfig struct {
	MaxPDFBytes int64
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	External    ExternalConfig
	Calculation CalculationConfig
	Storage     StorageConfig
	Upload      UploadConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:        v.GetString("HTTP_HOST"),
			Port:        v.GetInt("HTTP_PORT"),
			CORSOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		External: ExternalConfig{
			MapsBaseURL:  v.GetString("MAPS_BASE_URL"),
			MapsAPIKey:   v.GetString("MAPS_API_KEY"),
			TollsBaseURL: v.GetString("TOLLS_BASE_URL"),
			TollsAPIKey:  v.GetString("TOLLS_API_KEY"),
			Timeout:      v.GetDuration("EXTERNAL_TIMEOUT"),
		},
		Calculation: CalculationConfig{
			WorkHours:         v.GetFloat64("CALC_WORK_HOURS"),
			QuoteValidityDays: v.GetInt("QUOTE_VALIDITY_DAYS"),
			SessionTTL:        v.GetDuration("QUOTE_SESSION_TTL"),
		},
		Storage: StorageConfig{
			Bucket:    v.GetString("STORAGE_BUCKET"),
			Endpoint:  v.GetString("STORAGE_ENDPOINT"),
			Region:    v.GetString("STORAGE_REGION"),
			AccessKey: v.GetString("STORAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STORAGE_SECRET_KEY"),
		},
		Upload: UploadConfig{
			MaxPDFBytes: v.GetInt64("UPLOAD_MAX_PDF_BYTES"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if len(cfg.HTTP.CORSOrigins) == 0 {
		cfg.HTTP.CORSOrigins = []string{"*"}
	}
	if cfg.External.MapsBaseURL == "" {
		cfg.External.MapsBaseURL = "https://maps.googleapis.com/maps/api"
	}
	if cfg.External.Timeout <= 0 {
		cfg.External.Timeout = 8 * time.Second
	}
	if cfg.Calculation.WorkHours <= 0 {
		cfg.Calculation.WorkHours = 2
	}
	if cfg.Calculation.QuoteValidityDays <= 0 {
		cfg.Calculation.QuoteValidityDays = 15
	}
	if cfg.Calculation.SessionTTL <= 0 {
		cfg.Calculation.SessionTTL = 12 * time.Hour
	}
	if cfg.Storage.Region == "" {
		cfg.Storage.Region = "us-east-1"
	}
	if cfg.Upload.MaxPDFBytes <= 0 {
		cfg.Upload.MaxPDFBytes = 10 << 20
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
