package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aust-acm/austoj/internal/service"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

/*
	context key types are used to avoid conflicts when sharing data via contexts
	visit https://vld.bg/articles/go-context-type/ for more info
*/

const (
	KeyJwtSessionCookieName = "jwt_session"
)

// JWTMiddleware resolves the session cookie into user credential claims and
// stores them in the request context. Requests without a valid session are
// rejected before the handler runs.
func JWTMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(KeyJwtSessionCookieName)
		if err != nil {
			respondNoLogin(w)
			return
		}

		var claims service.UserCredentialClaims
		token, err := jwt.ParseWithClaims(
			cookie.Value,
			&claims,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(os.Getenv(service.KeyJWTSecret)), nil
			},
		)
		if err != nil || !token.Valid {
			log.Warnf("rejected request with invalid session token, %v", err)
			respondNoLogin(w)
			return
		}

		ctx := context.WithValue(r.Context(), service.KeyCtxUserCredClaims, claims)
		next(w, r.WithContext(ctx))
	}
}

func respondNoLogin(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status": "NO_LOGIN", "message": "user not logged in"}`))
}
