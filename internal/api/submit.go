package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aust-acm/austoj/internal/service/judge_service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerSubmit accepts a submission for the problem in the path and
// returns the id of the created judging job.
func (a *Api) HandlerSubmit(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.Atoi(chi.URLParam(r, "problem_id"))
	if err != nil {
		respondWithJson(w, http.StatusBadRequest, response{
			Status:  StatusParamError,
			Message: "invalid problem id, problem id must be an integer",
		})
		return
	}

	var request judge_service.SubmitRequest
	if err := decodeJsonBody(r.Body, &request); err != nil {
		respondWithJson(w, http.StatusBadRequest, response{
			Status:  StatusParamError,
			Message: fmt.Sprintf("invalid request payload, %s", err.Error()),
		})
		return
	}
	request.ProblemID = int32(problemID)

	solutionID, err := a.JudgeServiceConfig.Submit(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondOK(w, struct {
		SolutionID uuid.UUID `json:"solution_id"`
	}{SolutionID: solutionID})
}
