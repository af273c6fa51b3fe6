package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/sisunitech/careers-api/internal/domain/auth"
	"github.com/sisunitech/careers-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Applications *service.ApplicationService
	Positions    *service.JobPositionService
	Contacts     *service.ContactService
	Dashboard    *service.DashboardService
	Auth         AuthServiceInterface
	CookieDomain string

	// MaxResumeSizeMB caps multipart application submissions.
	MaxResumeSizeMB int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	maxResumeBytes := int64(services.MaxResumeSizeMB) << 20
	appHandlers := &ApplicationHandlers{Svc: services.Applications, MaxResumeBytes: maxResumeBytes}
	positionHandlers := &JobPositionHandlers{Svc: services.Positions}
	contactHandlers := &ContactHandlers{Svc: services.Contacts}
	dashboardHandlers := &DashboardHandlers{Svc: services.Dashboard}
	uploadHandlers := &UploadHandlers{Svc: services.Applications}

	registerApplicationRoutes(mux, appHandlers, services.Auth)
	registerPositionRoutes(mux, positionHandlers, services.Auth)
	registerContactRoutes(mux, contactHandlers, services.Auth)
	registerDashboardRoutes(mux, dashboardHandlers, services.Auth)
	registerUploadRoutes(mux, uploadHandlers, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{Svc: services.Auth, CookieDomain: services.CookieDomain}
		registerAuthRoutes(mux, authHandlers)
	}

	return mux
}

// adminOnly wraps a handler with the admin role requirement. Without an auth
// service there is no way to establish a role, so the route fails closed.
func adminOnly(auth AuthServiceInterface, h http.HandlerFunc) http.Handler {
	if auth == nil {
		return http.HandlerFunc(authUnavailable)
	}
	return RequireRole(auth, domainauth.RoleAdmin)(h)
}

// authOnly wraps a handler with the authentication requirement; per-record
// ownership checks stay in the handler. Fails closed without an auth service.
func authOnly(auth AuthServiceInterface, h http.HandlerFunc) http.Handler {
	if auth == nil {
		return http.HandlerFunc(authUnavailable)
	}
	return RequireAuth(auth)(h)
}

// authUnavailable rejects requests to guarded routes when no auth service is
// configured. Guarded data must never be served on the strength of a missing
// guard.
func authUnavailable(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusServiceUnavailable,
		ErrCode: "auth_unavailable",
		Err:     errors.New("authentication is not configured"),
	})
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers, auth AuthServiceInterface) {
	mux.HandleFunc("POST /api/applications", h.Create)
	mux.Handle("GET /api/applications", adminOnly(auth, h.List))
	mux.Handle("GET /api/applications/{id}", adminOnly(auth, h.GetByID))
	mux.Handle("GET /api/applications/by-email/{email}", authOnly(auth, h.ListByEmail))
	mux.Handle("PUT /api/applications/{id}", adminOnly(auth, h.UpdateStatus))
	mux.Handle("DELETE /api/applications/{id}", authOnly(auth, h.Delete))
}

func registerPositionRoutes(mux *http.ServeMux, h *JobPositionHandlers, auth AuthServiceInterface) {
	listHandler := http.Handler(http.HandlerFunc(h.List))
	if auth != nil {
		listHandler = OptionalAuth(auth)(listHandler)
	}
	mux.Handle("GET /api/positions", listHandler)
	mux.HandleFunc("GET /api/positions/{id}", h.GetByID)
	mux.Handle("POST /api/positions", adminOnly(auth, h.Create))
	mux.Handle("PUT /api/positions/{id}", adminOnly(auth, h.Update))
	mux.Handle("DELETE /api/positions/{id}", adminOnly(auth, h.Delete))
}

func registerContactRoutes(mux *http.ServeMux, h *ContactHandlers, auth AuthServiceInterface) {
	mux.HandleFunc("POST /api/contacts", h.Create)
	mux.Handle("GET /api/contacts", adminOnly(auth, h.List))
	mux.Handle("PUT /api/contacts/{id}", adminOnly(auth, h.UpdateStatus))
	mux.Handle("DELETE /api/contacts/{id}", adminOnly(auth, h.Delete))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /api/dashboard/stats", adminOnly(auth, h.Stats))
}

func registerUploadRoutes(mux *http.ServeMux, h *UploadHandlers, auth AuthServiceInterface) {
	mux.Handle("GET /uploads/resumes/{filename}", adminOnly(auth, h.GetResume))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.PasswordLogin)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("GET /api/auth/session", h.Session)
	mux.HandleFunc("GET /auth/login", h.SSOLogin)
	mux.HandleFunc("GET /auth/callback", h.SSOCallback)
	mux.HandleFunc("GET /auth/logout", h.SSOLogout)
}
