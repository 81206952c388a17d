package api

import (
	"net/http"
	"strconv"

	"github.com/aust-acm/austoj/internal/service/solution_service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerJudgeList returns one page of the caller's submission history.
func (a *Api) HandlerJudgeList(w http.ResponseWriter, r *http.Request) {
	request := solution_service.ListRequest{
		Search: r.URL.Query().Get("search"),
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			respondWithJson(w, http.StatusBadRequest, response{
				Status:  StatusParamError,
				Message: "invalid page, page must be an integer",
			})
			return
		}
		request.Page = int32(page)
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil {
			respondWithJson(w, http.StatusBadRequest, response{
				Status:  StatusParamError,
				Message: "invalid page_size, page_size must be an integer",
			})
			return
		}
		request.PageSize = int32(pageSize)
	}

	page, err := a.SolutionServiceConfig.ListOwned(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondOK(w, paginationData{
		Total:    page.Total,
		PageSize: page.PageSize,
		Rows:     page.Rows,
	})
}

// HandlerJudgeOne returns one of the caller's submissions in full.
func (a *Api) HandlerJudgeOne(w http.ResponseWriter, r *http.Request) {
	solutionID, err := uuid.Parse(chi.URLParam(r, "solution_id"))
	if err != nil {
		respondWithJson(w, http.StatusBadRequest, response{
			Status:  StatusParamError,
			Message: "invalid solution id",
		})
		return
	}

	solution, err := a.SolutionServiceConfig.GetOwned(r.Context(), solutionID)
	if err != nil {
		handlerError(err, w)
		return
	}

	respondOK(w, solution)
}
