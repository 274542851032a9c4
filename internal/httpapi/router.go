package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(api *API) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", api.HandleCreateSession)
		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/question", api.HandleQuestion)
			r.Put("/selection", api.HandleSelect)
			r.Post("/submit", api.HandleSubmit)
		})
	})

	return r
}
