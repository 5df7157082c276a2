package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/problem"
	"github.com/mathsolve/backend/upload"
)

// Create accepts a multipart form with the problem fields and an optional
// "image" file part. Options and tags may arrive either as a JSON array or
// as a comma-separated string, same as the web client sends them.
func (h *ProblemHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	err = r.ParseMultipartForm(upload.MaxImageBytes)
	if err != nil {
		errMsg := fmt.Sprintf("failed to parse multipart form: %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_parse_multipart_form")
		return
	}

	params := problem.CreateProblemParams{
		AuthorUUID:    callerUuid,
		Type:          problem.ProblemType(r.FormValue("type")),
		Text:          r.FormValue("text"),
		CorrectAnswer: r.FormValue("correctAnswer"),
		Difficulty:    problem.Difficulty(r.FormValue("difficulty")),
		Options:       parseStringList(r.FormValue("options")),
		Tags:          parseStringList(r.FormValue("tags")),
	}

	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(io.LimitReader(file, upload.MaxImageBytes+1))
		if err != nil {
			httpjson.HandleError(slog.Default(), w, err)
			return
		}
		uri, err := upload.SaveImage(h.UploadDir, content)
		if err != nil {
			httpjson.WriteErrorJson(w, err.Error(), http.StatusBadRequest, "invalid_image")
			return
		}
		params.Image = &uri
	}

	created, err := h.problemSrvc.CreateProblem(r.Context(), params)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toProblemJson(created))
}

// parseStringList accepts either a JSON array ("[\"a\",\"b\"]") or a
// comma-separated string ("a, b").
func parseStringList(raw string) []string {
	if raw == "" {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}
	return result
}
