package objectstore

import (
	"strings"
	"testing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(ClientConfig{
		Endpoint:  "storage.example.com",
		AccessKey: "test-access",
		SecretKey: "test-secret",
		Bucket:    "copa-media",
		UseSSL:    true,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	return client
}

func TestClient_NormalizeObjectURL(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "provider upload URL",
			raw:  "https://storage.example.com/copa-media/uploads/banner.jpg",
			want: "/objects/uploads/banner.jpg",
		},
		{
			name: "provider URL with query",
			raw:  "https://storage.example.com/copa-media/uploads/logo.png?X-Amz-Signature=abc",
			want: "/objects/uploads/logo.png",
		},
		{
			name: "nested object path",
			raw:  "https://storage.example.com/copa-media/uploads/2026/team-badge.svg",
			want: "/objects/uploads/2026/team-badge.svg",
		},
		{
			name: "foreign host passes through",
			raw:  "https://cdn.example.org/copa-media/uploads/banner.jpg",
			want: "https://cdn.example.org/copa-media/uploads/banner.jpg",
		},
		{
			name: "matching host but different bucket",
			raw:  "https://storage.example.com/other-bucket/uploads/banner.jpg",
			want: "https://storage.example.com/other-bucket/uploads/banner.jpg",
		},
		{
			name: "bucket with no object path",
			raw:  "https://storage.example.com/copa-media/",
			want: "https://storage.example.com/copa-media/",
		},
		{
			name: "relative path passes through",
			raw:  "/objects/uploads/banner.jpg",
			want: "/objects/uploads/banner.jpg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := client.NormalizeObjectURL(tc.raw); got != tc.want {
				t.Fatalf("normalize %q: got=%q want=%q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestClient_NewUploadURL(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)

	upload, err := client.NewUploadURL(t.Context())
	if err != nil {
		t.Fatalf("new upload url: %v", err)
	}

	if !strings.HasPrefix(upload.ObjectPath, "uploads/") {
		t.Fatalf("object path missing uploads/ prefix: %s", upload.ObjectPath)
	}
	if !strings.Contains(upload.UploadURL, "storage.example.com/copa-media/"+upload.ObjectPath) {
		t.Fatalf("upload url does not target the reserved object: %s", upload.UploadURL)
	}
	if upload.ExpiresAt.IsZero() {
		t.Fatal("expected a non-zero expiry")
	}
}
