package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mathsolve/backend/conf"
	"github.com/mathsolve/backend/user"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "mathsolve",
		Short: "Admin CLI tool for mathsolve",
	}

	var problemCmd = &cobra.Command{
		Use:   "problem",
		Short: "Export & import problems",
	}

	var out string
	var problemExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Dump all problems to a zstd-compressed JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			pool := connect()
			defer pool.Close()
			if err := exportProblems(context.Background(), pool, out); err != nil {
				log.Fatal(err)
			}
		},
	}
	problemExportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file path (required)")
	problemExportCmd.MarkFlagRequired("out")

	var src string
	var author string
	var problemImportCmd = &cobra.Command{
		Use:   "import",
		Short: "Load problems from a zstd-compressed JSON dump",
		Run: func(cmd *cobra.Command, args []string) {
			pool := connect()
			defer pool.Close()
			if err := importProblems(context.Background(), pool, src, author); err != nil {
				log.Fatal(err)
			}
		},
	}
	problemImportCmd.Flags().StringVarP(&src, "src", "s", "", "Source file path (required)")
	problemImportCmd.Flags().StringVarP(&author, "author", "a", "", "Username to attribute imported problems to (required)")
	problemImportCmd.MarkFlagRequired("src")
	problemImportCmd.MarkFlagRequired("author")

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var username string
	var userGrantAdminCmd = &cobra.Command{
		Use:   "grant-admin",
		Short: "Grant admin rights to a user",
		Run: func(cmd *cobra.Command, args []string) {
			pool := connect()
			defer pool.Close()
			userSrvc := user.NewUserSrvc(pool)
			if _, err := userSrvc.GrantAdmin(context.Background(), username); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("granted admin to %s\n", username)
		},
	}
	userGrantAdminCmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	userGrantAdminCmd.MarkFlagRequired("username")

	rootCmd.AddCommand(problemCmd)
	problemCmd.AddCommand(problemExportCmd)
	problemCmd.AddCommand(problemImportCmd)
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userGrantAdminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func connect() *pgxpool.Pool {
	_ = godotenv.Load()
	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	return pool
}
