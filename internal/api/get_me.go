package api

import (
	"net/http"
)

func (a *Api) HandlerGetMe(w http.ResponseWriter, r *http.Request) {
	user, err := a.UserServiceConfig.GetMe(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	respondOK(w, user)
}
