package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mathsolve/backend/httpjson"
	"github.com/mathsolve/backend/upload"
	"github.com/mathsolve/backend/user"
)

const avatarMaxWidth = 256

func (h *UserHttpHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	callerUuid, err := callerUUID(r)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	err = r.ParseMultipartForm(upload.MaxImageBytes)
	if err != nil {
		errMsg := fmt.Sprintf("failed to parse multipart form (maybe the image is too large?): %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_parse_multipart_form")
		return
	}

	file, _, err := r.FormFile("profilePicture")
	if err != nil {
		errMsg := fmt.Sprintf("failed to get profile picture: %v", err)
		httpjson.WriteErrorJson(w, errMsg, http.StatusBadRequest, "failed_to_get_file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, upload.MaxImageBytes+1))
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	// avatars are stored as small jpeg thumbnails
	thumb, err := upload.Thumbnail(content, avatarMaxWidth)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	uri, err := upload.SaveImage(h.UploadDir, thumb)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	updated, err := h.userSrvc.UpdateUser(r.Context(), callerUuid, user.UpdateUserParams{
		ProfilePicture: &uri,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, toUserJson(updated))
}
