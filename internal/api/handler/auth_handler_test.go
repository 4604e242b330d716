package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vendly/auction-api/internal/api"
	"github.com/vendly/auction-api/internal/api/handler"
	"github.com/vendly/auction-api/internal/core/domain"
	"github.com/vendly/auction-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn        func(ctx context.Context, identifier, password string) (string, error)
	authenticateFn func(ctx context.Context, tokenString string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	return s.authenticateFn(ctx, tokenString)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	return e
}

// perform runs a handler and routes any returned error through the central
// error handler, like the live server does.
func perform(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Email != "a@x.com" || in.Role != domain.RoleParticipant {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:           "6543210fedcba98765432100",
				Username:     in.Username,
				Email:        in.Email,
				PasswordHash: "$argon2id$secret-digest",
				Role:         in.Role,
				CreatedAt:    time.Now().UTC(),
				IsActive:     true,
			}, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","email":"a@x.com","password":"hunter2abc","role":"participant"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Register)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] == "" || resp["username"] != "alice" || resp["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["is_active"] != true {
		t.Fatalf("expected is_active true, got %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "argon2id") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrEmailAlreadyRegistered
		},
	}
	h := handler.NewAuthHandler(stub)

	body := strings.NewReader(`{"username":"alice","email":"a@x.com","password":"hunter2abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Register)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Register)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := handler.NewAuthHandler(stub)

	cases := []string{
		`{"username":"al","email":"a@x.com","password":"hunter2abc"}`,  // username too short
		`{"username":"alice","email":"nope","password":"hunter2abc"}`,  // bad email
		`{"username":"alice","email":"a@x.com","password":"short"}`,    // password too short
		`{"username":"alice","email":"a@x.com","password":"hunter2abc","role":"spectator"}`, // bad role
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		perform(e, c, h.Register)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, error) {
			if identifier != "a@x.com" || password != "hunter2abc" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return "token123", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	form := url.Values{}
	form.Set("username", "a@x.com")
	form.Set("password", "hunter2abc")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Login)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "token123" {
		t.Fatalf("expected access_token, got %+v", resp)
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("expected token_type bearer, got %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := handler.NewAuthHandler(stub)

	form := url.Values{}
	form.Set("username", "a@x.com")
	form.Set("password", "wrongpass1")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Login)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer header, got %q", rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, error) {
			return "", domain.ErrTooManyAttempts
		},
	}
	h := handler.NewAuthHandler(stub)

	form := url.Values{}
	form.Set("username", "a@x.com")
	form.Set("password", "hunter2abc")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Login)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := handler.NewAuthHandler(stub)

	form := url.Values{}
	form.Set("username", "a@x.com")
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	perform(e, c, h.Login)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
