package router

import (
	"net/http"

	mem "registration-form/internal/adapters/storage/memory"
	pg "registration-form/internal/adapters/storage/postgres"
	_ "registration-form/internal/docs"
	"registration-form/internal/domain/registrations"
	"registration-form/internal/domain/static"
	"registration-form/internal/middleware"
	"registration-form/internal/platform/config"
	"registration-form/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, reemplaza al repo elegido por Config (tests).
	Registrations registrations.Repository
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Registrations
	if repo == nil {
		if opts.Config.UseMemoryStore() {
			log.Warn("using in-memory registrations store", nil)
			repo = mem.NewRegistrationsRepo()
		} else {
			repo = pg.NewRegistrationsRepo(opts.Config.DatabaseURL)
		}
	}

	registrations.RegisterRoutes(r, registrations.NewService(repo), log)
	static.RegisterRoutes(r, opts.Config.StaticDir)

	return r
}
