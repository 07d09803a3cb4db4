package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Get("/image/styles", h.imageStyles)
			r.Get("/voice/status", h.voiceStatus)
			r.Get("/health", h.health)
		})

		// routes behind bearer authentication
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)

			r.Get("/projects", h.listProjects)
			r.Post("/projects", h.createProject)
			r.Get("/projects/{id}", h.getProject)
			r.Put("/projects/{id}", h.updateProject)
			r.Delete("/projects/{id}", h.deleteProject)

			r.Post("/ai/generate", h.generate)
			r.Post("/ai/landing", h.generateLanding)
			r.Post("/ai/dashboard", h.generateDashboard)
			r.Post("/ai/improve", h.improve)
			r.Post("/ai/explain", h.explain)

			r.Post("/image/generate", h.generateImage)

			r.Post("/voice/tts", h.textToSpeech)
			r.Post("/voice/stt", h.speechToText)
			r.Get("/voice/voices", h.voices)
		})
	})

	return router
}
