package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/mathsolve/backend/user"
)

type UserHttpHandler struct {
	userSrvc  *user.UserSrvc
	JwtKey    []byte
	UploadDir string
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte, uploadDir string) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc:  userSrvc,
		JwtKey:    jwtKey,
		UploadDir: uploadDir,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users", h.Register)
	r.Post("/auth/login", h.Login)
	r.Get("/auth/whoami", h.WhoAmI)
	r.Patch("/users/me", h.UpdateMe)
	r.Post("/users/me/avatar", h.UploadAvatar)
	r.Get("/leaderboard", h.Leaderboard)
	r.Get("/admin/users", h.AdminListUsers)
	r.Delete("/admin/users/{userUuid}", h.AdminDeleteUser)
	r.Post("/admin/grant-admin", h.AdminGrantAdmin)
}
