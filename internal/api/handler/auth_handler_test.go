package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

type stubAuthService struct {
	registered *domain.User
	registerIn []string // email, password, fullName, role
	token      string
	err        error
}

func (s *stubAuthService) Register(_ context.Context, email, password, fullName, role string) (*domain.User, error) {
	s.registerIn = []string{email, password, fullName, role}
	if s.err != nil {
		return nil, s.err
	}
	return s.registered, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.registered, nil
}

func (s *stubAuthService) AdminLogin(_ context.Context, email, password string) (string, *domain.User, error) {
	return s.Login(nil, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registered: &domain.User{ID: "user_1", Email: "amy@example.com", Role: domain.RoleContributor}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/users",
		`{"email":"amy@example.com","password":"longenough","full_name":"Amy"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registerIn[0] != "amy@example.com" || svc.registerIn[2] != "Amy" {
		t.Fatalf("unexpected service input: %v", svc.registerIn)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if user.ID != "user_1" {
		t.Fatalf("unexpected user in response: %+v", user)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"missing email":  `{"password":"longenough"}`,
		"invalid email":  `{"email":"not-an-email","password":"longenough"}`,
		"short password": `{"email":"amy@example.com","password":"short"}`,
		"unknown role":   `{"email":"amy@example.com","password":"longenough","role":"superuser"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/users", body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		registered: &domain.User{ID: "user_1", Email: "amy@example.com"},
		token:      "signed-token",
	}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/token",
		`{"email":"amy@example.com","password":"longenough"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.AccessToken != "signed-token" || body.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", body)
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newTestContext(t, http.MethodPost, "/token",
		`{"email":"amy@example.com","password":"wrongpass"}`)

	// The central error handler owns the status mapping; the handler just
	// returns the domain error.
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
