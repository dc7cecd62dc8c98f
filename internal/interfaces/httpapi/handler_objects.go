package httpapi

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

type uploadResponse struct {
	UploadURL  string    `json:"uploadURL"`
	ObjectPath string    `json:"objectPath"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type attachImageRequest struct {
	ImageURL string `json:"imageURL" validate:"required,url"`
}

type attachImageResponse struct {
	ObjectPath string `json:"objectPath"`
}

func (h *Handler) NewUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NewUpload")
	defer span.End()

	upload, err := h.mediaService.NewUpload(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "new upload failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, uploadResponse{
		UploadURL:  upload.UploadURL,
		ObjectPath: upload.ObjectPath,
		ExpiresAt:  upload.ExpiresAt,
	})
}

func (h *Handler) AttachImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AttachImage")
	defer span.End()

	var req attachImageRequest
	if err := h.decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	owner := ""
	if session, ok := sessionFromContext(ctx); ok {
		owner = session.Username
	}

	objectPath, err := h.mediaService.AttachImage(ctx, req.ImageURL, owner)
	if err != nil {
		h.logger.WarnContext(ctx, "attach image failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, attachImageResponse{ObjectPath: objectPath})
}

// ServeObject streams a stored object back to the client.
func (h *Handler) ServeObject(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ServeObject")
	defer span.End()

	objectPath := r.PathValue("objectPath")
	obj, err := h.mediaService.OpenObject(ctx, objectPath)
	if err != nil {
		h.logger.WarnContext(ctx, "serve object failed", "object_path", objectPath, "error", err)
		writeError(ctx, w, err)
		return
	}
	defer obj.Body.Close()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		// Headers are gone by now; all we can do is log the broken copy.
		h.logger.WarnContext(ctx, "object stream interrupted", "object_path", objectPath, "error", err)
	}
}
