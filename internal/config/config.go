package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config reúne toda la configuración del servidor, cargada del entorno.
type Config struct {
	// Servidor
	Port        string `envconfig:"PORT" default:"8080"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	// Base de datos
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"hotel"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// Migraciones
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"false"`

	// SMTP para correos de confirmación. Si falta el host, el envío se omite.
	SMTPHost      string `envconfig:"SMTP_HOST" default:""`
	SMTPPort      int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser      string `envconfig:"SMTP_USER" default:""`
	SMTPPassword  string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFromName  string `envconfig:"SMTP_FROM_NAME" default:"Hotel"`
	SMTPFromEmail string `envconfig:"SMTP_FROM_EMAIL" default:""`
}

// LoadConfig lee el archivo .env si existe y procesa las variables de entorno.
func LoadConfig() (*Config, error) {
	// .env es opcional: en producción las variables llegan del entorno.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error al procesar configuración: %w", err)
	}
	return &cfg, nil
}

// GetDBConnString arma la cadena de conexión a PostgreSQL.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}
