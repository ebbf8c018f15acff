package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"quran-explorer/internal/handlers"
	"quran-explorer/internal/service"
)

// WelcomeMessage is returned from the root route.
const WelcomeMessage = "Welcome to the Quran Explorer API"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	SuraService  service.SuraService
	VerseService service.VerseService
	WordService  service.WordService
	DB           handlers.Pinger
	// Metrics is optional; a fresh registry is created when nil.
	Metrics *Metrics
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	metrics := deps.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(metrics.Middleware)

	suraHandler := handlers.NewSuraHandler(deps.SuraService)
	verseHandler := handlers.NewVerseHandler(deps.VerseService)
	wordHandler := handlers.NewWordHandler(deps.WordService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB))

		r.Route("/suras", func(r chi.Router) {
			r.Get("/", suraHandler.List)
			r.Get("/revelation-order", suraHandler.ListByRevelationOrder)
			r.Get("/revelation-place/{place}", suraHandler.ListByRevelationPlace)
			r.Get("/{number}", suraHandler.Get)
		})

		r.Route("/verses", func(r chi.Router) {
			r.Get("/", verseHandler.List)
			r.Get("/search", verseHandler.Search)
			r.Get("/sura/{suraNumber}", verseHandler.ListBySura)
			r.Get("/sura/{suraNumber}/aya/{ayaNumber}", verseHandler.Get)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/", wordHandler.List)
			r.Get("/root/{root}", wordHandler.ListByRoot)
			r.Get("/root/{root}/context", wordHandler.Occurrences)
		})
	})

	r.Method(http.MethodGet, "/read/{suraNumber}", handlers.NewReaderHandler(deps.SuraService, deps.VerseService))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"` + WelcomeMessage + `"}` + "\n"))
	})

	return r
}
