package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mathsolve/backend/conf"
	"github.com/mathsolve/backend/http"
	"github.com/mathsolve/backend/problem"
	problemhttp "github.com/mathsolve/backend/problem/http"
	"github.com/mathsolve/backend/solve"
	solvehttp "github.com/mathsolve/backend/solve/http"
	"github.com/mathsolve/backend/user"
	userhttp "github.com/mathsolve/backend/user/http"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	config, err := conf.Load("config.toml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userSrvc := user.NewUserSrvc(pool)
	problemSrvc := problem.NewProblemSrvc(pool)
	solveSrvc := solve.NewSolveSrvc(solve.NewPgSolveRepo(pool))

	httpServer := http.NewHttpServer(
		config,
		userhttp.NewUserHttpHandler(userSrvc, []byte(jwtKey), config.UploadDir),
		problemhttp.NewProblemHttpHandler(problemSrvc, config.UploadDir),
		solvehttp.NewSolveHttpHandler(solveSrvc, problemSrvc),
		[]byte(jwtKey),
	)

	log.Printf("Starting server on %s", config.Address)
	err = httpServer.Start()
	log.Printf("Server stopped with error: %v", err)
}
