package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/zstd"
	"github.com/mathsolve/backend/problem"
	"github.com/mathsolve/backend/user"
)

// dumpedProblem is the on-disk problem shape. Unlike the public API it
// carries the correct answer, which is why dumps are an admin-only
// concern.
type dumpedProblem struct {
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Tags          []string `json:"tags,omitempty"`
}

const exportPageSize = 500

func exportProblems(ctx context.Context, pool *pgxpool.Pool, out string) error {
	problemSrvc := problem.NewProblemSrvc(pool)

	var dump []dumpedProblem
	for offset := 0; ; offset += exportPageSize {
		page, err := problemSrvc.ListProblems(ctx, exportPageSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list problems: %w", err)
		}
		for _, p := range page {
			dump = append(dump, dumpedProblem{
				Type:          string(p.Type),
				Text:          p.Text,
				Options:       p.Options,
				CorrectAnswer: p.CorrectAnswer,
				Difficulty:    string(p.Difficulty),
				Tags:          p.Tags,
			})
		}
		if len(page) < exportPageSize {
			break
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	writer, err := zstd.NewWriter(file)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(writer).Encode(dump); err != nil {
		writer.Close()
		return fmt.Errorf("failed to encode dump: %w", err)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	log.Printf("exported %d problems to %s", len(dump), out)
	return nil
}

func importProblems(ctx context.Context, pool *pgxpool.Pool, src string, authorUsername string) error {
	userSrvc := user.NewUserSrvc(pool)
	author, err := userSrvc.GetUserByUsername(ctx, authorUsername)
	if err != nil {
		return fmt.Errorf("failed to resolve author %q: %w", authorUsername, err)
	}

	file, err := os.Open(src)
	if err != nil {
		return err
	}
	defer file.Close()

	reader, err := zstd.NewReader(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	var dump []dumpedProblem
	if err := json.NewDecoder(reader).Decode(&dump); err != nil {
		return fmt.Errorf("failed to decode dump: %w", err)
	}

	problemSrvc := problem.NewProblemSrvc(pool)
	imported := 0
	for _, d := range dump {
		_, err := problemSrvc.CreateProblem(ctx, problem.CreateProblemParams{
			AuthorUUID:    author.UUID,
			Type:          problem.ProblemType(d.Type),
			Text:          d.Text,
			Options:       d.Options,
			CorrectAnswer: d.CorrectAnswer,
			Difficulty:    problem.Difficulty(d.Difficulty),
			Tags:          d.Tags,
		})
		if err != nil {
			log.Printf("skipping problem %q: %v", d.Text, err)
			continue
		}
		imported++
	}

	log.Printf("imported %d of %d problems from %s", imported, len(dump), src)
	return nil
}
