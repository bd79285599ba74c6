package httpx

import (
	"log/slog"
	"net/http"

	"github.com/APVS-BRO/ai-careers-hub/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Chat    *service.ChatService
	Resume  *service.ResumeService
	Roadmap *service.RoadmapService
	History *service.HistoryService
	Users   *service.UserService
	Auth    AuthServiceInterface

	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. Agent and history routes
// attach session information when present; listing history and creating a
// user require a session.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	withSession := func(h http.Handler) http.Handler { return h }
	mustSession := withSession
	if services.Auth != nil {
		withSession = OptionalAuth(services.Auth)
		mustSession = RequireAuth(services.Auth)
	}

	registerAgentRoutes(mux, services, withSession)
	registerHistoryRoutes(mux, &HistoryHandlers{Svc: services.History}, withSession)
	mux.Handle("POST /api/user", mustSession(http.HandlerFunc(
		(&UserHandlers{Svc: services.Users}).Ensure)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			Users:        services.Users,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		registerAuthRoutes(mux, authHandlers)
	}

	return mux
}

func registerAgentRoutes(
	mux *http.ServeMux,
	services RouterServices,
	wrap func(http.Handler) http.Handler,
) {
	chat := &ChatHandlers{Svc: services.Chat}
	mux.Handle("POST /api/ai-career-chat-agent", wrap(http.HandlerFunc(chat.Ask)))
	mux.Handle("GET /api/ai-career-chat-agent", wrap(http.HandlerFunc(chat.RunStatus)))

	resume := &ResumeHandlers{Svc: services.Resume}
	mux.Handle("POST /api/ai-resume-analysis-agent", wrap(http.HandlerFunc(resume.Analyze)))
	mux.Handle("GET /api/ai-resume-analysis-agent", wrap(http.HandlerFunc(resume.RunStatus)))

	roadmap := &RoadmapHandlers{Svc: services.Roadmap}
	mux.Handle("POST /api/ai-roadmap-generator-agent", wrap(http.HandlerFunc(roadmap.Generate)))
	mux.Handle("GET /api/ai-roadmap-generator-agent", wrap(http.HandlerFunc(roadmap.RunStatus)))
}

func registerHistoryRoutes(
	mux *http.ServeMux,
	h *HistoryHandlers,
	wrap func(http.Handler) http.Handler,
) {
	mux.Handle("POST /api/history", wrap(http.HandlerFunc(h.Save)))
	mux.Handle("PUT /api/history", wrap(http.HandlerFunc(h.ReplaceContent)))
	mux.Handle("GET /api/history", wrap(http.HandlerFunc(h.Get)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}
