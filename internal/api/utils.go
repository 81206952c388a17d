package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aust-acm/austoj/internal/judge_errors"
	log "github.com/sirupsen/logrus"
)

func decodeJsonBody(body io.Reader, v any) error {
	return json.NewDecoder(body).Decode(v)
}

func respondWithJson(w http.ResponseWriter, httpStatus int, resp response) {
	bytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("unable to marshal response %v, %v", resp, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status": "INTERNAL_ERROR", "message": "internal service error. please try again later"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	w.Write(bytes)
}

func respondOK(w http.ResponseWriter, data any) {
	respondWithJson(w, http.StatusOK, response{
		Status: StatusOK,
		Data:   data,
	})
}

// handlerError translates a service error into the uniform envelope. Every
// failure leaves through here, nothing surfaces as an unstructured fault.
func handlerError(err error, w http.ResponseWriter) {
	var httpStatus int
	var status string
	message := err.Error()

	switch {
	case errors.Is(err, judge_errors.ErrNotAuthenticated):
		httpStatus, status = http.StatusUnauthorized, StatusNoLogin
	case errors.Is(err, judge_errors.ErrInvalidUserCredentials):
		httpStatus, status = http.StatusUnauthorized, StatusInvalidCredentials
	case errors.Is(err, judge_errors.ErrNoPrivilege):
		httpStatus, status = http.StatusForbidden, StatusNoPrivilege
	case errors.Is(err, judge_errors.ErrContestClosed):
		httpStatus, status = http.StatusForbidden, StatusOutOfWindow
	case errors.Is(err, judge_errors.ErrUnknownLanguage):
		httpStatus, status = http.StatusBadRequest, StatusUnknownLanguage
	case errors.Is(err, judge_errors.ErrUnAuthorized):
		httpStatus, status = http.StatusForbidden, StatusNoPrivilege
	case errors.Is(err, judge_errors.ErrNotFound):
		httpStatus, status = http.StatusNotFound, StatusNotFound
	case errors.Is(err, judge_errors.ErrInvalidRequest):
		httpStatus, status = http.StatusBadRequest, StatusParamError
	default:
		// never leak internals to the caller
		httpStatus, status = http.StatusInternalServerError, StatusInternalError
		message = judge_errors.ErrInternal.Error()
	}

	respondWithJson(w, httpStatus, response{
		Status:  status,
		Message: message,
	})
}
