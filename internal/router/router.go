package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "medication-tracker/docs"
	mem "medication-tracker/internal/adapters/storage/memory"
	pg "medication-tracker/internal/adapters/storage/postgres"
	"medication-tracker/internal/adapters/storage/sqlite"
	"medication-tracker/internal/domain/medications"
	"medication-tracker/internal/domain/tracking"
	"medication-tracker/internal/domain/users"
	"medication-tracker/internal/middleware"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev: X-Debug-User-ID)
	TokenIssuer  auth.TokenIssuer  // nil => /auth/signup y /auth/login responden 500

	// Storage: DB (Postgres) tiene prioridad sobre SQLite; sin ninguno, in-memory.
	DB     *sql.DB
	SQLite *sqlite.Store

	AuthMode users.Mode

	// Adherencia
	Strict   bool
	Location *time.Location

	Logger logger.Logger
}

// Services expone los servicios ya cableados (lo reutiliza el CLI).
type Services struct {
	Users       *users.Service
	Medications *medications.Service
	Tracking    *tracking.Service
}

// NewServices elige los repos según opts y arma los servicios por módulo.
func NewServices(opts Options) Services {
	var (
		userRepo users.Repository
		medRepo  medications.Repository
		logRepo  interface {
			tracking.Repository
			medications.LogPurger
		}
	)

	switch {
	case opts.DB != nil:
		userRepo = pg.NewUsersRepo(opts.DB)
		medRepo = pg.NewMedicationsRepo(opts.DB)
		logRepo = pg.NewLogsRepo(opts.DB)
	case opts.SQLite != nil:
		userRepo = sqlite.NewUsersRepo(opts.SQLite)
		medRepo = sqlite.NewMedicationsRepo(opts.SQLite)
		logRepo = sqlite.NewLogsRepo(opts.SQLite)
	default:
		userRepo = mem.NewUserRepo()
		medRepo = mem.NewMedicationRepo()
		logRepo = mem.NewLogRepo()
	}

	lg := opts.Logger
	if lg == nil {
		lg = logger.Nop()
	}

	medsSvc := medications.NewService(medRepo, logRepo)

	return Services{
		Users:       users.NewService(userRepo, opts.AuthMode),
		Medications: medsSvc,
		Tracking: tracking.NewService(logRepo, medsSvc, tracking.Options{
			Strict:   opts.Strict,
			Location: opts.Location,
			Logger:   lg.With(logger.Fields{"component": "tracking"}),
		}),
	}
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, opts.Logger))
	r.Use(middleware.RequestLogger(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	svcs := NewServices(opts)

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users, opts.TokenIssuer)

	r.Route("/medications", func(mr chi.Router) {
		medications.RegisterRoutes(mr, svcs.Medications)
		tracking.RegisterRoutes(mr, svcs.Tracking)
	})

	return r
}
