package api

import "net/http"

func (a *Api) HandlerReadiness(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, response{
		Status:  StatusOK,
		Message: "ready",
	})
}
