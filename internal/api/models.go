package api

import (
	"github.com/aust-acm/austoj/internal/service/auth_service"
	"github.com/aust-acm/austoj/internal/service/judge_service"
	"github.com/aust-acm/austoj/internal/service/solution_service"
	"github.com/aust-acm/austoj/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig     *auth_service.AuthService
	UserServiceConfig     *user_service.UserService
	JudgeServiceConfig    *judge_service.JudgeService
	SolutionServiceConfig *solution_service.SolutionService
}

// machine-checkable status codes carried by every response envelope
const (
	StatusOK                 = "OK"
	StatusNoLogin            = "NO_LOGIN"
	StatusInvalidCredentials = "INVALID_CREDENTIALS"
	StatusParamError         = "PARAM_ERROR"
	StatusNotFound           = "NOT_FOUND"
	StatusNoPrivilege        = "NO_PRIVILEGE"
	StatusOutOfWindow        = "OUT_OF_WINDOW"
	StatusUnknownLanguage    = "UNKNOWN_LANGUAGE"
	StatusInternalError      = "INTERNAL_ERROR"
)

// response is the uniform envelope of every endpoint. Failures differ from
// successes only in the status code and the absence of data.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type paginationData struct {
	Total    int64 `json:"total"`
	PageSize int32 `json:"page_size"`
	Rows     any   `json:"rows"`
}
