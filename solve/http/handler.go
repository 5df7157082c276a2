package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/mathsolve/backend/problem"
	"github.com/mathsolve/backend/solve"
)

type SolveHttpHandler struct {
	solveSrvc   *solve.SolveSrvc
	problemSrvc *problem.ProblemSrvc
}

func NewSolveHttpHandler(solveSrvc *solve.SolveSrvc, problemSrvc *problem.ProblemSrvc) *SolveHttpHandler {
	return &SolveHttpHandler{
		solveSrvc:   solveSrvc,
		problemSrvc: problemSrvc,
	}
}

func (h *SolveHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/problems/{problemId}/check-answer", h.CheckAnswer)
	r.Get("/problems/recommend", h.Recommend)
}
