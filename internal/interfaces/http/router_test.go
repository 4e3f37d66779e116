package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	appdashboard "github.com/jhoicas/gestion-pyme/internal/application/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	apphttp "github.com/jhoicas/gestion-pyme/internal/interfaces/http"
)

type memUsers struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrEmailExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUsers) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offset >= len(r.users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	return r.users[offset:end], nil
}

type stubStats struct{}

func (stubStats) IncomeBetween(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.RequireFromString("1234.5"), nil
}
func (stubStats) CountPendingInvoices(context.Context) (int, error)    { return 3, nil }
func (stubStats) CountActiveEmployees(context.Context) (int, error)    { return 12, nil }
func (stubStats) ComplianceProgress(context.Context) (int, int, error) { return 17, 20, nil }

type stubReport struct{}

func (stubReport) GenerateDashboardPDF(context.Context, *dto.DashboardView, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3\n"), nil
}

type testServer struct {
	app    *fiber.App
	authUC *auth.AuthUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	authUC := auth.NewAuthUseCase(&memUsers{}, auth.JWTConfig{Secret: testJWTSecret, TTL: testTTL, Issuer: testIssuer}, nil)
	app := apphttp.NewApp(apphttp.AppConfig{Name: "gestion-pyme-test"}, apphttp.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: appdashboard.NewDashboardUseCase(stubStats{}, stubReport{}),
		JWTSecret:   testJWTSecret,
	})
	return &testServer{app: app, authUC: authUC}
}

func (s *testServer) login(t *testing.T, role string) string {
	t.Helper()
	email := role + "@pyme.pe"
	_, err := s.authUC.CreateUser(context.Background(), dto.CreateUserRequest{
		Email: email, Password: "clave-segura-123", Name: "Usuario " + role, Role: role,
	})
	require.NoError(t, err)

	resp := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: "clave-segura-123"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Success)
	return "Bearer " + out.Token
}

func (s *testServer) do(t *testing.T, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/health", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	s := newTestServer(t)
	s.login(t, "admin")

	resp := s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@pyme.pe", Password: "otra-clave-123"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp)["code"])
}

func TestRouter_DashboardPorRol(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "contabilidad")

	resp := s.do(t, http.MethodGet, "/api/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.DashboardView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "contabilidad", view.Role)
	require.Len(t, view.Shortcuts, 2)
	assert.Equal(t, "Balance General", view.Shortcuts[0].Title)
	require.Len(t, view.Cards, 4)
	assert.Equal(t, "Facturas por Cobrar", view.Cards[1].Label)
	assert.Equal(t, "Requieren seguimiento", view.Cards[1].Status)
	assert.Equal(t, "85%", view.Cards[3].Value)
}

func TestRouter_DashboardSinToken(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/dashboard", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_DashboardRolDesconocidoVeAdmin(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/dashboard", tokenForRole(t, "gerente"), nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view dto.DashboardView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "admin", view.Role)
	assert.Len(t, view.Shortcuts, 7)
}

func TestRouter_ReportePDF(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/dashboard/report", tokenForRole(t, "rrhh"), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dashboard-rrhh-")
}

func TestRouter_UsuariosSoloAdmin(t *testing.T) {
	s := newTestServer(t)
	admin := s.login(t, "admin")

	resp := s.do(t, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Email: "nuevo@pyme.pe", Password: "clave-segura-123", Name: "Nuevo", Role: "supervisor",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/users", admin, dto.CreateUserRequest{
		Email: "otro@pyme.pe", Password: "clave-segura-123", Name: "Otro", Role: "gerente",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ROLE", decodeError(t, resp)["code"])

	list := s.do(t, http.MethodGet, "/api/users?limit=10", admin, nil)
	defer list.Body.Close()
	require.Equal(t, http.StatusOK, list.StatusCode)
	var page dto.ListResponse[dto.UserResponse]
	require.NoError(t, json.NewDecoder(list.Body).Decode(&page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 10, page.Page.Limit)

	forbidden := s.do(t, http.MethodGet, "/api/users", tokenForRole(t, "rrhh"), nil)
	defer forbidden.Body.Close()
	assert.Equal(t, http.StatusForbidden, forbidden.StatusCode)
}

func TestRouter_ModulosSegunAccesos(t *testing.T) {
	s := newTestServer(t)
	cases := []struct {
		role, path string
	}{
		{"contabilidad", "/api/employees"},
		{"rrhh", "/api/invoices"},
		{"supervisor", "/api/compliance"},
		{"contabilidad", "/api/time-entries"},
	}
	for _, tc := range cases {
		resp := s.do(t, http.MethodGet, tc.path, tokenForRole(t, tc.role), nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s en %s", tc.role, tc.path)
	}
}

func TestRouter_Me(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "supervisor")

	resp := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me dto.MeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "supervisor", me.Role)
	require.NotNil(t, me.User)
	assert.True(t, strings.HasPrefix(me.User.Email, "supervisor@"))
}

func TestRouter_RutaInexistente(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/no-existe", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp)["code"])
}
