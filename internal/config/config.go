package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config es la superficie completa de configuración de la aplicación.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Pet     PetConfig
	Notify  NotifyConfig
}

// ServerConfig agrupa las opciones del servidor HTTP.
type ServerConfig struct {
	Port string
}

// StorageConfig decide dónde viven las cartillas: Postgres si hay DSN,
// si no archivos JSON bajo DataDir.
type StorageConfig struct {
	DataDir string
	DBDSN   string
}

// PetConfig identifica a la mascota de esta cartilla (una sola).
type PetConfig struct {
	Name string
}

// NotifyConfig controla permisos y entrega de recordatorios.
type NotifyConfig struct {
	// PermissionGranted simula la política de permisos del host:
	// NOTIFY_PERMISSION=granted|denied (default granted).
	PermissionGranted bool

	// WebhookURL: si viene, las notificaciones se entregan por POST JSON.
	// Vacío => se entregan por el logger local.
	WebhookURL string

	// DispatchEvery es la cadencia del despachador (cron de 5 campos o
	// forma @every).
	DispatchEvery string
}

// Load lee variables de entorno (opcionalmente desde el archivo dado) y
// materializa la configuración.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Un .env ausente es aceptable: la config puede venir del entorno.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir: getenvWithDefault("DATA_DIR", "./data"),
			DBDSN:   os.Getenv("DB_DSN"),
		},
		Pet: PetConfig{
			Name: getenvWithDefault("PET_NAME", "Chewie"),
		},
		Notify: NotifyConfig{
			PermissionGranted: !strings.EqualFold(getenvWithDefault("NOTIFY_PERMISSION", "granted"), "denied"),
			WebhookURL:        os.Getenv("NOTIFY_WEBHOOK_URL"),
			DispatchEvery:     getenvWithDefault("DISPATCH_EVERY", "@every 1m"),
		},
	}

	return cfg, nil
}

func getenvWithDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
