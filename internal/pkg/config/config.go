package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials,
//   signing secret) and anything security sensitive
// - default: Values common across all environments (timeouts, limits, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Admin  AdminConfig
	SMTP   SMTPConfig
	Upload UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAgeSeconds    int      `envconfig:"CORS_MAX_AGE_SECONDS" default:"43200"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"168h"`
}

type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME" required:"true"`
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

type SMTPConfig struct {
	Host      string `envconfig:"SMTP_HOST" default:"localhost"`
	Port      int    `envconfig:"SMTP_PORT" default:"587"`
	User      string `envconfig:"SMTP_USER" default:""`
	Password  string `envconfig:"SMTP_PASS" default:""`
	FromName  string `envconfig:"FROM_NAME" default:"De La Cream Business Park"`
	FromEmail string `envconfig:"FROM_EMAIL" default:"info@delacream.co.ke"`
	// Inbox that receives contact form submissions.
	ContactEmail string `envconfig:"CONTACT_EMAIL" default:"info@delacream.co.ke"`
}

type UploadConfig struct {
	Dir          string `envconfig:"UPLOAD_DIR" default:"uploads/gallery"`
	MaxFileSize  int64  `envconfig:"MAX_FILE_SIZE" default:"5242880"` // 5 MiB
	MaxFileCount int    `envconfig:"MAX_FILE_COUNT" default:"10"`
}

func (s *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func LoadConfig() (Config, error) {
	// Missing .env is fine; real deployments configure the environment directly.
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAgeSeconds:    43200,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		SMTP: SMTPConfig{
			Host:         "localhost",
			Port:         2525,
			FromName:     "De La Cream Business Park",
			FromEmail:    "info@delacream.co.ke",
			ContactEmail: "info@delacream.co.ke",
		},
		Upload: UploadConfig{
			Dir:          "uploads/gallery",
			MaxFileSize:  5 * 1024 * 1024,
			MaxFileCount: 10,
		},
	}
}
