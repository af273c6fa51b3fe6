package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sisunitech/careers-api/internal/domain/model"
	"github.com/sisunitech/careers-api/internal/mocks"
	mockauth "github.com/sisunitech/careers-api/internal/mocks/auth"
	"github.com/sisunitech/careers-api/internal/ports"
	"github.com/sisunitech/careers-api/internal/service"
)

// routerFixture wires the full router with mock repositories and a real auth
// service so tests exercise route-level access control end to end.
type routerFixture struct {
	handler  http.Handler
	appRepo  *mocks.MockApplicationRepository
	jobRepo  *mocks.MockJobPositionRepository
	contacts *mocks.MockContactRepository
	auth     *service.AuthService
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	appRepo := mocks.NewMockApplicationRepository(ctrl)
	jobRepo := mocks.NewMockJobPositionRepository(ctrl)
	contactRepo := mocks.NewMockContactRepository(ctrl)
	resumes := mocks.NewMockResumeStore(ctrl)

	auth := service.NewAuthService(service.AuthServiceOptions{
		Passwords:  &mockauth.MockPasswordAuthenticator{},
		Sessions:   mockauth.NewMemorySessionStore(),
		Roles:      mockauth.EmailRoleMapper{AdminEmails: []string{"admin@sisuni.tech"}},
		SessionTTL: time.Hour,
	})

	applications := service.NewApplicationService(service.ApplicationServiceOptions{
		Applications: appRepo,
		Resumes:      resumes,
	})
	positions := service.NewJobPositionService(service.JobPositionServiceOptions{Jobs: jobRepo})
	contacts := service.NewContactService(service.ContactServiceOptions{Contacts: contactRepo})
	dashboard := service.NewDashboardService(service.DashboardServiceOptions{
		Applications: appRepo,
		Jobs:         jobRepo,
	})

	handler := NewRouter(RouterServices{
		Applications:    applications,
		Positions:       positions,
		Contacts:        contacts,
		Dashboard:       dashboard,
		Auth:            auth,
		MaxResumeSizeMB: 10,
	})

	return &routerFixture{
		handler:  handler,
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		contacts: contactRepo,
		auth:     auth,
	}
}

// loginAs mints a session through the auth service and returns its cookie.
func (f *routerFixture) loginAs(t *testing.T, email string) *http.Cookie {
	t.Helper()
	sess, err := f.auth.PasswordLogin(context.Background(), ports.Credentials{Email: email, Password: "x"})
	require.NoError(t, err)
	return &http.Cookie{Name: "session_id", Value: sess.ID}
}

func (f *routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func TestRouter_GuardedRoutesFailClosedWithoutAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	appRepo := mocks.NewMockApplicationRepository(ctrl)
	jobRepo := mocks.NewMockJobPositionRepository(ctrl)
	contactRepo := mocks.NewMockContactRepository(ctrl)
	resumes := mocks.NewMockResumeStore(ctrl)

	handler := NewRouter(RouterServices{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{
			Applications: appRepo,
			Resumes:      resumes,
		}),
		Positions: service.NewJobPositionService(service.JobPositionServiceOptions{Jobs: jobRepo}),
		Contacts:  service.NewContactService(service.ContactServiceOptions{Contacts: contactRepo}),
		Dashboard: service.NewDashboardService(service.DashboardServiceOptions{
			Applications: appRepo,
			Jobs:         jobRepo,
		}),
		Auth:            nil,
		MaxResumeSizeMB: 10,
	})

	guarded := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, "/api/applications/app-1"},
		{http.MethodGet, "/api/applications/by-email/jane@example.com"},
		{http.MethodPut, "/api/applications/app-1"},
		{http.MethodDelete, "/api/applications/app-1"},
		{http.MethodPost, "/api/positions"},
		{http.MethodPut, "/api/positions/job-1"},
		{http.MethodDelete, "/api/positions/job-1"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodPut, "/api/contacts/contact-1"},
		{http.MethodDelete, "/api/contacts/contact-1"},
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/uploads/resumes/whatever.pdf"},
	}
	for _, route := range guarded {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(route.method, route.target, nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s must fail closed", route.method, route.target)
	}

	// public routes keep working
	jobRepo.EXPECT().List(gomock.Any(), true).Return(nil, nil).Times(1)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/positions", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// login routes are not registered without an auth service
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicPositionList(t *testing.T) {
	f := newRouterFixture(t)

	f.jobRepo.EXPECT().List(gomock.Any(), true).Return(nil, nil).Times(1)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/positions", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PublicContactSubmission(t *testing.T) {
	f := newRouterFixture(t)

	f.contacts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.Contact{ID: "contact-1", Status: model.ContactStatusNew}, nil).
		Times(1)

	body := strings.NewReader(`{"name":"V","email":"v@example.com","subject":"s","message":"m"}`)
	w := f.do(httptest.NewRequest(http.MethodPost, "/api/contacts", body))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_ApplicationListRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	// anonymous
	w := f.do(httptest.NewRequest(http.MethodGet, "/api/applications", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// regular user
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.AddCookie(f.loginAs(t, "jane@example.com"))
	w = f.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin
	f.appRepo.EXPECT().List(gomock.Any()).Return(nil, nil).Times(1)
	req = httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.AddCookie(f.loginAs(t, "admin@sisuni.tech"))
	w = f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ByEmailRequiresAuthAndOwnership(t *testing.T) {
	f := newRouterFixture(t)

	// anonymous
	w := f.do(httptest.NewRequest(http.MethodGet, "/api/applications/by-email/jane@example.com", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// owner
	f.appRepo.EXPECT().
		ListByEmail(gomock.Any(), "jane@example.com").
		Return([]*model.Application{{ID: "app-1"}}, nil).
		Times(1)
	req := httptest.NewRequest(http.MethodGet, "/api/applications/by-email/jane@example.com", nil)
	req.AddCookie(f.loginAs(t, "jane@example.com"))
	w = f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)

	// another user
	req = httptest.NewRequest(http.MethodGet, "/api/applications/by-email/jane@example.com", nil)
	req.AddCookie(f.loginAs(t, "other@example.com"))
	w = f.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouter_PositionWriteRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	body := strings.NewReader(`{"title":"X","type":"full-time","description":"d"}`)
	w := f.do(httptest.NewRequest(http.MethodPost, "/api/positions", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.jobRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.JobPosition{ID: "job-1", IsActive: true}, nil).
		Times(1)
	body = strings.NewReader(`{"title":"X","type":"full-time","description":"d"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/positions", body)
	req.AddCookie(f.loginAs(t, "admin@sisuni.tech"))
	w = f.do(req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_StatusUpdateRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	body := strings.NewReader(`{"status":"reviewed"}`)
	w := f.do(httptest.NewRequest(http.MethodPut, "/api/applications/app-1", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.appRepo.EXPECT().
		UpdateStatus(gomock.Any(), "app-1", model.ApplicationStatusReviewed).
		Return(&model.Application{ID: "app-1", Status: model.ApplicationStatusReviewed}, nil).
		Times(1)
	body = strings.NewReader(`{"status":"reviewed"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/applications/app-1", body)
	req.AddCookie(f.loginAs(t, "admin@sisuni.tech"))
	w = f.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_BrowserLogoutRedirectsAndRevokes(t *testing.T) {
	f := newRouterFixture(t)

	cookie := f.loginAs(t, "jane@example.com")
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	req.AddCookie(cookie)
	w := f.do(req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// the revoked session no longer passes the auth gate
	req = httptest.NewRequest(http.MethodGet, "/api/applications/by-email/jane@example.com", nil)
	req.AddCookie(cookie)
	w = f.do(req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_DashboardRequiresAdmin(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_UploadsRequireAdmin(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(httptest.NewRequest(http.MethodGet, "/uploads/resumes/whatever.pdf", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
