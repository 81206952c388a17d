package api

import (
	"fmt"
	"net/http"

	"github.com/aust-acm/austoj/internal/service/auth_service"
	"github.com/aust-acm/austoj/middleware"
	log "github.com/sirupsen/logrus"
)

func (a *Api) HandlerLogin(w http.ResponseWriter, r *http.Request) {
	// extract user details for login
	var request auth_service.UserLoginRequest

	// decode from the json body
	if err := decodeJsonBody(r.Body, &request); err != nil {
		respondWithJson(w, http.StatusBadRequest, response{
			Status:  StatusParamError,
			Message: fmt.Sprintf("invalid request payload, %s", err.Error()),
		})
		return
	}

	// validate the user and gen a jwt token
	loginResponse, jwtToken, tokenExpiry, err := a.AuthServiceConfig.Login(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	// set jwt session cookie
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    jwtToken,
		Expires:  tokenExpiry,
		Path:     "/",                  // Important: Makes the cookie available across the entire site
		HttpOnly: true,                 // Crucial: Prevents JavaScript access
		Secure:   true,                 // Crucial: Only send over HTTPS
		SameSite: http.SameSiteLaxMode, // Recommended: Protects against CSRF
	}
	http.SetCookie(w, cookie)

	log.WithFields(log.Fields{
		"user_name": loginResponse.UserName,
	}).Info("logged in")

	respondOK(w, loginResponse)
}
