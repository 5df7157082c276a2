package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/mathsolve/backend/problem"
)

type ProblemHttpHandler struct {
	problemSrvc *problem.ProblemSrvc
	UploadDir   string
}

func NewProblemHttpHandler(problemSrvc *problem.ProblemSrvc, uploadDir string) *ProblemHttpHandler {
	return &ProblemHttpHandler{
		problemSrvc: problemSrvc,
		UploadDir:   uploadDir,
	}
}

func (h *ProblemHttpHandler) RegisterRoutes(r chi.Router) {
	r.Get("/problems", h.List)
	r.Post("/problems", h.Create)
	r.Get("/problems/{problemId}", h.Get)
	r.Delete("/problems/{problemId}", h.Delete)
	r.Post("/problems/{problemId}/save", h.Save)
	r.Delete("/problems/{problemId}/save", h.Unsave)
	r.Get("/users/me/problems", h.MyProblems)
	r.Get("/users/me/solved", h.MySolved)
	r.Get("/users/me/saved", h.MySaved)
}
