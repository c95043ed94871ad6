package main

import (
	"log"
	"net/http"
	"time"

	"github.com/irma-m/cartilla/internal/adapters/notify/envperm"
	"github.com/irma-m/cartilla/internal/adapters/notify/lognotify"
	"github.com/irma-m/cartilla/internal/adapters/notify/webhook"
	mem "github.com/irma-m/cartilla/internal/adapters/storage/memory"
	"github.com/irma-m/cartilla/internal/config"
	"github.com/irma-m/cartilla/internal/domain/reminders"
	"github.com/irma-m/cartilla/internal/platform/logger"
	"github.com/irma-m/cartilla/internal/ports/notify"
	"github.com/irma-m/cartilla/internal/router"
	"github.com/irma-m/cartilla/internal/scheduler"
)

// @title Cartilla API
// @version 1.0
// @description Cartilla digital de mascota: medicamentos, baños, desparasitaciones y vacunas con recordatorios de próxima dosis.
// @BasePath /
func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.NewFromEnv()

	// Programador de recordatorios: registro en memoria + permiso por config.
	registry := mem.NewReminderRegistry()
	remSvc := reminders.NewService(registry, envperm.New(cfg.Notify.PermissionGranted), logg)

	var sender notify.Sender
	if cfg.Notify.WebhookURL != "" {
		sender, err = webhook.New(cfg.Notify.WebhookURL, 0)
		if err != nil {
			log.Fatalf("webhook sender error: %v", err)
		}
	} else {
		sender = lognotify.New(logg)
	}

	disp := scheduler.New(remSvc, sender, cfg.Notify.DispatchEvery, logg)
	if err := disp.Start(); err != nil {
		log.Fatalf("dispatcher error: %v", err)
	}
	defer disp.Stop()

	r := router.NewRouter(router.Options{
		Log:      logg,
		PetName:  cfg.Pet.Name,
		Notifier: remSvc,
		DBDSN:    cfg.Storage.DBDSN,
		DataDir:  cfg.Storage.DataDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logg.Info("starting server", map[string]any{"addr": srv.Addr, "pet": cfg.Pet.Name})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
