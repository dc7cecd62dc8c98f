package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// ObjectUpload is a one-shot grant to PUT a single object.
type ObjectUpload struct {
	ObjectPath string
	UploadURL  string
	ExpiresAt  time.Time
}

// StoredObject is an opened stored object. The caller owns Body and
// must close it.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ObjectGateway is the object-store surface media operations need.
type ObjectGateway interface {
	NewUploadURL(ctx context.Context) (ObjectUpload, error)
	NormalizeObjectURL(raw string) string
	SetVisibility(ctx context.Context, objectPath, visibility, owner string) error
	Open(ctx context.Context, objectPath string) (StoredObject, error)
}

const visibilityPublicRead = "public-read"

type MediaService struct {
	objects ObjectGateway
}

func NewMediaService(objects ObjectGateway) *MediaService {
	return &MediaService{objects: objects}
}

func (s *MediaService) NewUpload(ctx context.Context) (ObjectUpload, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MediaService.NewUpload")
	defer span.End()

	upload, err := s.objects.NewUploadURL(ctx)
	if err != nil {
		return ObjectUpload{}, fmt.Errorf("new upload url: %w", err)
	}

	return upload, nil
}

// AttachImage turns a provider upload URL into the stable serving path
// and marks the object readable by everyone.
func (s *MediaService) AttachImage(ctx context.Context, imageURL, owner string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MediaService.AttachImage")
	defer span.End()

	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return "", NewValidationError(FieldError{Field: "imageURL", Message: "is required"})
	}

	normalized := s.objects.NormalizeObjectURL(imageURL)
	objectPath, ok := strings.CutPrefix(normalized, "/objects/")
	if !ok {
		// Foreign URLs pass through untouched and untagged.
		return normalized, nil
	}

	if err := s.objects.SetVisibility(ctx, objectPath, visibilityPublicRead, owner); err != nil {
		return "", fmt.Errorf("set object visibility: %w", err)
	}

	return normalized, nil
}

func (s *MediaService) OpenObject(ctx context.Context, objectPath string) (StoredObject, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MediaService.OpenObject")
	defer span.End()

	objectPath = strings.TrimSpace(strings.TrimPrefix(objectPath, "/"))
	if objectPath == "" {
		return StoredObject{}, fmt.Errorf("%w: object path is required", ErrInvalidInput)
	}

	obj, err := s.objects.Open(ctx, objectPath)
	if err != nil {
		return StoredObject{}, err
	}

	return obj, nil
}
