package main

import (
	"github.com/aust-acm/austoj/middleware"
	"github.com/go-chi/chi/v5"
)

func NewV1Router() *chi.Mux {
	v1 := chi.NewRouter()

	// configure all endpoints
	v1.Get("/healthz", apiConfig.HandlerReadiness)

	// auth layer
	v1.Post("/auth/login", apiConfig.HandlerLogin)
	v1.Post("/auth/logout", apiConfig.HandlerLogout)
	v1.Get("/auth/me", middleware.JWTMiddleware(apiConfig.HandlerGetMe))

	// judge layer
	// submit a solution for judging
	v1.Post("/judge/problem/{problem_id}", middleware.JWTMiddleware(apiConfig.HandlerSubmit))
	// list own submissions
	v1.Get("/judge/list", middleware.JWTMiddleware(apiConfig.HandlerJudgeList))
	// view one own submission
	v1.Get("/judge/{solution_id}", middleware.JWTMiddleware(apiConfig.HandlerJudgeOne))

	return v1
}
