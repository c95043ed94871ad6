package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/irma-m/cartilla/docs"
	"github.com/irma-m/cartilla/internal/adapters/notify/envperm"
	"github.com/irma-m/cartilla/internal/adapters/storage/file"
	mem "github.com/irma-m/cartilla/internal/adapters/storage/memory"
	pg "github.com/irma-m/cartilla/internal/adapters/storage/postgres"
	"github.com/irma-m/cartilla/internal/domain/records"
	"github.com/irma-m/cartilla/internal/domain/reminders"
	"github.com/irma-m/cartilla/internal/platform/logger"
)

type Options struct {
	Log logger.Logger // puede ser nil (se crea desde env)

	PetName string

	// Opcional: si vienen, se usan tal cual (tests). Si no, el almacén se
	// elige por entorno: Postgres con DB_DSN, si no archivos en DataDir,
	// si no in-memory.
	Store    records.Store
	Notifier records.Notifier
	DB       *sql.DB
	DBDSN    string
	DataDir  string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	store := opts.Store
	if store == nil {
		store = pickStore(opts, log)
	}

	notifier := opts.Notifier
	if notifier == nil {
		// Por defecto: registro en memoria con permiso otorgado.
		notifier = reminders.NewService(mem.NewReminderRegistry(), envperm.New(true), log)
	}

	petName := opts.PetName
	if petName == "" {
		petName = "Chewie"
	}

	svc := records.NewService(store, notifier, log)
	records.RegisterRoutes(r, svc, petName)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

func pickStore(opts Options, log logger.Logger) records.Store {
	// Si no te pasan DB explícita, intenta por DSN (config o env)
	db := opts.DB
	if db == nil {
		dsn := opts.DBDSN
		if dsn == "" {
			dsn = os.Getenv("DB_DSN")
		}
		if dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to file store", map[string]any{
					"error": err.Error(),
				})
			}
		}
	}

	if db != nil {
		ls := pg.NewLedgerStore(db)
		if err := ls.EnsureSchema(context.Background()); err != nil {
			log.Error("ensure ledgers schema failed", map[string]any{"error": err.Error()})
		}
		return ls
	}

	if opts.DataDir != "" {
		fs, err := file.NewLedgerStore(opts.DataDir)
		if err == nil {
			return fs
		}
		log.Error("file store unavailable, using in-memory store", map[string]any{
			"error": err.Error(),
		})
	}

	return mem.NewLedgerStore()
}
