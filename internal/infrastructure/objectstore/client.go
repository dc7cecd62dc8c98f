package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/tags"

	"github.com/copa-nordeste/copa-api/internal/platform/id"
	"github.com/copa-nordeste/copa-api/internal/platform/logging"
	"github.com/copa-nordeste/copa-api/internal/platform/resilience"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

const (
	uploadPrefix     = "uploads/"
	uploadURLExpiry  = 15 * time.Minute
	publicPathPrefix = "/objects/"
)

type ClientConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Logger    *logging.Logger
	IDs       id.Generator
	Breaker   resilience.BreakerConfig
}

// Client wraps the object-store SDK behind the handful of operations the
// API needs: handing out presigned upload URLs, rewriting provider URLs
// to stable serving paths, tagging visibility, and streaming objects
// back out.
type Client struct {
	store     *minio.Client
	endpoint  string
	bucket    string
	logger    *logging.Logger
	ids       id.Generator
	breaker   *resilience.Breaker
	breakerOn bool
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, crerr.New("object store endpoint is required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, crerr.New("object store bucket is required")
	}

	store, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, crerr.Wrap(err, "connect object store")
	}

	ids := cfg.IDs
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &Client{
		store:     store,
		endpoint:  endpoint,
		bucket:    cfg.Bucket,
		logger:    logger,
		ids:       ids,
		breaker:   resilience.NewBreaker(cfg.Breaker),
		breakerOn: cfg.Breaker.Enabled,
	}, nil
}

// NewUploadURL reserves a fresh object name and returns a presigned PUT
// grant for it.
func (c *Client) NewUploadURL(ctx context.Context) (usecase.ObjectUpload, error) {
	objectID, err := c.ids.NewID()
	if err != nil {
		return usecase.ObjectUpload{}, crerr.Wrap(err, "generate object id")
	}
	objectPath := uploadPrefix + objectID
	expiresAt := time.Now().Add(uploadURLExpiry)

	var presigned *url.URL
	err = c.do(ctx, "presign upload", func() error {
		var inner error
		presigned, inner = c.store.PresignedPutObject(ctx, c.bucket, objectPath, uploadURLExpiry)
		return inner
	})
	if err != nil {
		return usecase.ObjectUpload{}, err
	}

	return usecase.ObjectUpload{
		ObjectPath: objectPath,
		UploadURL:  presigned.String(),
		ExpiresAt:  expiresAt,
	}, nil
}

// NormalizeObjectURL rewrites a provider upload URL into the stable
// serving path when the host and bucket match this client. Anything else
// passes through unchanged.
func (c *Client) NormalizeObjectURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.Host != c.endpoint {
		return raw
	}

	trimmed := strings.TrimPrefix(parsed.Path, "/")
	objectPath, ok := strings.CutPrefix(trimmed, c.bucket+"/")
	if !ok || objectPath == "" {
		return raw
	}

	return publicPathPrefix + objectPath
}

// SetVisibility tags the object with its access policy and owner.
func (c *Client) SetVisibility(ctx context.Context, objectPath, visibility, owner string) error {
	objectTags, err := tags.NewTags(map[string]string{
		"visibility": visibility,
		"owner":      owner,
	}, true)
	if err != nil {
		return crerr.Wrap(err, "build object tags")
	}

	return c.do(ctx, "tag object", func() error {
		return c.store.PutObjectTagging(ctx, c.bucket, objectPath, objectTags, minio.PutObjectTaggingOptions{})
	})
}

// Open streams a stored object. An unknown path maps to the not-found
// sentinel so the API can answer 404 instead of 500.
func (c *Client) Open(ctx context.Context, objectPath string) (usecase.StoredObject, error) {
	var info minio.ObjectInfo
	err := c.do(ctx, "stat object", func() error {
		var inner error
		info, inner = c.store.StatObject(ctx, c.bucket, objectPath, minio.StatObjectOptions{})
		return inner
	})
	if err != nil {
		if isNoSuchKey(err) {
			return usecase.StoredObject{}, fmt.Errorf("%w: %s", usecase.ErrObjectNotFound, objectPath)
		}
		return usecase.StoredObject{}, err
	}

	var body *minio.Object
	err = c.do(ctx, "get object", func() error {
		var inner error
		body, inner = c.store.GetObject(ctx, c.bucket, objectPath, minio.GetObjectOptions{})
		return inner
	})
	if err != nil {
		return usecase.StoredObject{}, err
	}

	return usecase.StoredObject{
		Body:        body,
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

// do runs a store call behind the circuit breaker. Not-found responses
// count as healthy; everything else trips the breaker.
func (c *Client) do(ctx context.Context, op string, call func() error) error {
	if c.breakerOn {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "object store breaker rejected request", "op", op, "state", c.breaker.State().String())
			return fmt.Errorf("%w: object store is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	err := call()
	if c.breakerOn {
		if err != nil && !isNoSuchKey(err) {
			c.breaker.MarkFailure()
		} else {
			c.breaker.MarkSuccess()
		}
	}
	if err != nil && !isNoSuchKey(err) {
		return crerr.Wrapf(err, "object store %s", op)
	}

	return err
}

func isNoSuchKey(err error) bool {
	if err == nil {
		return false
	}
	resp := minio.ToErrorResponse(crerr.UnwrapAll(err))
	return resp.Code == "NoSuchKey" || resp.StatusCode == 404
}
