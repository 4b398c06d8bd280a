package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service. Values come from the
// environment; a .env file in the working directory is loaded first when
// present.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	QRCodeDir string `env:"QR_CODE_DIR" envDefault:"qr-codes"`

	SMTPHost  string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort  int    `env:"SMTP_PORT" envDefault:"25"`
	FromEmail string `env:"NOTIFY_FROM_EMAIL" envDefault:"noreply@relais.example"`

	SMSGatewayURL string `env:"SMS_GATEWAY_URL" envDefault:""`
	SMSSender     string `env:"SMS_SENDER" envDefault:"RELAIS"`

	ReminderThresholdDays int `env:"REMINDER_THRESHOLD_DAYS" envDefault:"7"`
}

// LoadConfig reads the configuration from the environment. A missing .env
// file is not an error; missing required variables are.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return config, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
