package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Storage  Storage
	Gemini   Gemini
	OCR      OCR
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	MaxUploadMB    int64
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Storage struct {
	Driver    string // "fs" or "oss"
	MediaRoot string
	OSS       OSS
}

type OSS struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	SecurityToken string
	Bucket        string
	Prefix        string
}

type Gemini struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type OCR struct {
	Provider        string // "vision", "gemini" or "tesseract"
	CredentialsFile string
	Languages       []string
	MaxDimension    int
	Timeout         time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Server.MaxUploadMB = viper.GetInt64("MAX_UPLOAD_MB")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	if config.Database.Driver == "" {
		// Local development falls back to SQLite when no server is configured.
		if config.Database.Host == "" {
			config.Database.Driver = "sqlite"
		} else {
			config.Database.Driver = "postgres"
		}
	}

	config.Storage.Driver = viper.GetString("STORAGE_DRIVER")
	config.Storage.MediaRoot = viper.GetString("MEDIA_ROOT")
	config.Storage.OSS = OSS{
		Endpoint:      viper.GetString("OSS_ENDPOINT"),
		AccessKey:     viper.GetString("OSS_ACCESS_KEY"),
		SecretKey:     viper.GetString("OSS_SECRET_KEY"),
		SecurityToken: viper.GetString("OSS_SECURITY_TOKEN"),
		Bucket:        viper.GetString("OSS_BUCKET"),
		Prefix:        viper.GetString("OSS_PREFIX"),
	}

	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.Timeout = viper.GetDuration("LLM_TIMEOUT")

	config.OCR.Provider = strings.ToLower(viper.GetString("OCR_PROVIDER"))
	config.OCR.CredentialsFile = viper.GetString("GOOGLE_CREDENTIALS_FILE")
	config.OCR.Languages = splitList(viper.GetString("OCR_LANGUAGES"))
	config.OCR.MaxDimension = viper.GetInt("OCR_MAX_DIMENSION")
	config.OCR.Timeout = viper.GetDuration("OCR_TIMEOUT")

	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("MAX_UPLOAD_MB", 10)
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "scriptmark.db")
	viper.SetDefault("STORAGE_DRIVER", "fs")
	viper.SetDefault("MEDIA_ROOT", "./media")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LLM_TIMEOUT", "60s")
	viper.SetDefault("OCR_PROVIDER", "vision")
	viper.SetDefault("OCR_MAX_DIMENSION", 2400)
	viper.SetDefault("OCR_TIMEOUT", "30s")
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "***"
	}
	c.Database.Password = mask(c.Database.Password)
	c.Gemini.APIKey = mask(c.Gemini.APIKey)
	c.Storage.OSS.AccessKey = mask(c.Storage.OSS.AccessKey)
	c.Storage.OSS.SecretKey = mask(c.Storage.OSS.SecretKey)
	c.Storage.OSS.SecurityToken = mask(c.Storage.OSS.SecurityToken)
	return c
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
