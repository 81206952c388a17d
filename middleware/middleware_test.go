package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aust-acm/austoj/internal/service"
	"github.com/aust-acm/austoj/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, userID uuid.UUID, expiry time.Time, secret string) string {
	t.Helper()
	claims := service.UserCredentialClaims{
		UserID:   userID,
		UserName: "tester",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("cannot sign test token: %v", err)
	}
	return token
}

func request(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.KeyJwtSessionCookieName, Value: token})
	}
	return req
}

func TestJWTMiddlewareValidSession(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, testSecret)
	userID := uuid.New()

	var gotClaims service.UserCredentialClaims
	var called bool
	handler := middleware.JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, err := service.GetClaimsFromContext(r.Context())
		if err != nil {
			t.Errorf("handler cannot read claims: %v", err)
			return
		}
		gotClaims = claims
	})

	rec := httptest.NewRecorder()
	handler(rec, request(signedToken(t, userID, time.Now().Add(time.Hour), testSecret)))

	if !called {
		t.Fatal("handler was not called for a valid session")
	}
	if gotClaims.UserID != userID || gotClaims.UserName != "tester" {
		t.Errorf("claims did not survive the middleware: %+v", gotClaims)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, testSecret)

	cases := []struct {
		name  string
		token string
	}{
		{name: "no cookie", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "wrong secret", token: signedToken(t, uuid.New(), time.Now().Add(time.Hour), "other-secret")},
		{name: "expired token", token: signedToken(t, uuid.New(), time.Now().Add(-time.Hour), testSecret)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := middleware.JWTMiddleware(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run without a valid session")
			})
			rec := httptest.NewRecorder()
			handler(rec, request(tc.token))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}
