package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acmenews/newschat/internal/handler/chat"
	"github.com/acmenews/newschat/internal/handler/contact"
	middlewarePkg "github.com/acmenews/newschat/internal/middleware"
	"github.com/acmenews/newschat/internal/service/agent"
	"github.com/acmenews/newschat/internal/service/session"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(agentSvc *agent.Service, sessions *session.Service, notifier contact.Notifier) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(agentSvc, sessions)
	contactHandler := contact.New(notifier)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	})

	return r
}
