package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/mathsolve/backend/conf"
	problemhttp "github.com/mathsolve/backend/problem/http"
	solvehttp "github.com/mathsolve/backend/solve/http"
	"github.com/mathsolve/backend/user/auth"
	userhttp "github.com/mathsolve/backend/user/http"
)

type HttpServer struct {
	config conf.Config
	router *chi.Mux
}

func NewHttpServer(
	config conf.Config,
	userHandler *userhttp.UserHttpHandler,
	problemHandler *problemhttp.ProblemHttpHandler,
	solveHandler *solvehttp.SolveHttpHandler,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("mathsolve", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	solveHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	problemHandler.RegisterRoutes(router)

	uploadDir := strings.TrimSuffix(config.UploadDir, "/")
	router.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(uploadDir))))

	return &HttpServer{
		config: config,
		router: router,
	}
}

func (s *HttpServer) Start() error {
	return http.ListenAndServe(s.config.Address, s.router)
}

// Router exposes the composed mux for tests.
func (s *HttpServer) Router() *chi.Mux {
	return s.router
}
