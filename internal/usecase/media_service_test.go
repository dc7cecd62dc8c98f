package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

type fakeObjectGateway struct {
	endpoint   string
	objects    map[string]string
	visibility map[string]string
	owners     map[string]string
}

func newFakeObjectGateway() *fakeObjectGateway {
	return &fakeObjectGateway{
		endpoint:   "https://storage.example.com/copa-media/",
		objects:    map[string]string{"uploads/banner.jpg": "image-bytes"},
		visibility: map[string]string{},
		owners:     map[string]string{},
	}
}

func (g *fakeObjectGateway) NewUploadURL(context.Context) (ObjectUpload, error) {
	return ObjectUpload{
		ObjectPath: "uploads/new-object",
		UploadURL:  g.endpoint + "uploads/new-object?signature=abc",
		ExpiresAt:  time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC),
	}, nil
}

func (g *fakeObjectGateway) NormalizeObjectURL(raw string) string {
	if path, ok := strings.CutPrefix(raw, g.endpoint); ok {
		path, _, _ = strings.Cut(path, "?")
		return "/objects/" + path
	}
	return raw
}

func (g *fakeObjectGateway) SetVisibility(_ context.Context, objectPath, visibility, owner string) error {
	if _, ok := g.objects[objectPath]; !ok {
		return ErrObjectNotFound
	}
	g.visibility[objectPath] = visibility
	g.owners[objectPath] = owner
	return nil
}

func (g *fakeObjectGateway) Open(_ context.Context, objectPath string) (StoredObject, error) {
	content, ok := g.objects[objectPath]
	if !ok {
		return StoredObject{}, ErrObjectNotFound
	}
	return StoredObject{
		Body:        io.NopCloser(strings.NewReader(content)),
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
	}, nil
}

func TestMediaService_AttachImage_NormalizesAndPublishes(t *testing.T) {
	gateway := newFakeObjectGateway()
	svc := NewMediaService(gateway)

	got, err := svc.AttachImage(t.Context(), gateway.endpoint+"uploads/banner.jpg?signature=abc", "admin")
	if err != nil {
		t.Fatalf("attach image: %v", err)
	}
	if got != "/objects/uploads/banner.jpg" {
		t.Fatalf("unexpected normalized url: %s", got)
	}
	if gateway.visibility["uploads/banner.jpg"] != visibilityPublicRead {
		t.Fatalf("object not made public: %+v", gateway.visibility)
	}
	if gateway.owners["uploads/banner.jpg"] != "admin" {
		t.Fatalf("owner not recorded: %+v", gateway.owners)
	}
}

func TestMediaService_AttachImage_ForeignURLPassesThrough(t *testing.T) {
	gateway := newFakeObjectGateway()
	svc := NewMediaService(gateway)

	got, err := svc.AttachImage(t.Context(), "https://cdn.example.org/logo.png", "admin")
	if err != nil {
		t.Fatalf("attach image: %v", err)
	}
	if got != "https://cdn.example.org/logo.png" {
		t.Fatalf("foreign url should pass through, got %s", got)
	}
	if len(gateway.visibility) != 0 {
		t.Fatalf("foreign urls must not be tagged: %+v", gateway.visibility)
	}
}

func TestMediaService_AttachImage_RequiresURL(t *testing.T) {
	svc := NewMediaService(newFakeObjectGateway())

	_, err := svc.AttachImage(t.Context(), "   ", "admin")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMediaService_OpenObject(t *testing.T) {
	svc := NewMediaService(newFakeObjectGateway())

	obj, err := svc.OpenObject(t.Context(), "/uploads/banner.jpg")
	if err != nil {
		t.Fatalf("open object: %v", err)
	}
	defer obj.Body.Close()

	if obj.ContentType != "image/jpeg" {
		t.Fatalf("unexpected content type: %s", obj.ContentType)
	}
	body, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "image-bytes" {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestMediaService_OpenObject_Missing(t *testing.T) {
	svc := NewMediaService(newFakeObjectGateway())

	_, err := svc.OpenObject(t.Context(), "uploads/gone.jpg")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}
