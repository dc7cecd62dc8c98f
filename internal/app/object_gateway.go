package app

import (
	"context"
	"fmt"

	"github.com/copa-nordeste/copa-api/internal/config"
	"github.com/copa-nordeste/copa-api/internal/infrastructure/objectstore"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
	"github.com/copa-nordeste/copa-api/internal/platform/logging"
	"github.com/copa-nordeste/copa-api/internal/platform/resilience"
	"github.com/copa-nordeste/copa-api/internal/usecase"
)

func newObjectGateway(cfg config.Config, logger *logging.Logger, ids id.Generator) (usecase.ObjectGateway, error) {
	if !cfg.ObjectStoreEnabled {
		logger.Info("object store disabled", "reason", "OBJECT_STORE_ENABLED=false")
		return unconfiguredObjectGateway{}, nil
	}

	client, err := objectstore.NewClient(objectstore.ClientConfig{
		Endpoint:  cfg.ObjectStoreEndpoint,
		AccessKey: cfg.ObjectStoreAccessKey,
		SecretKey: cfg.ObjectStoreSecretKey,
		Bucket:    cfg.ObjectStoreBucket,
		UseSSL:    cfg.ObjectStoreUseSSL,
		Logger:    logger,
		IDs:       ids,
		Breaker: resilience.BreakerConfig{
			Enabled:  cfg.ObjectStoreCircuitEnabled,
			Failures: cfg.ObjectStoreCircuitFailures,
			Cooldown: cfg.ObjectStoreCircuitOpenTimeout,
			Probes:   cfg.ObjectStoreCircuitHalfOpenReq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build object store client: %w", err)
	}

	return client, nil
}

// unconfiguredObjectGateway answers every store operation with the
// unavailable sentinel so media endpoints degrade to 503 instead of
// panicking when no object store is configured.
type unconfiguredObjectGateway struct{}

func (unconfiguredObjectGateway) NewUploadURL(context.Context) (usecase.ObjectUpload, error) {
	return usecase.ObjectUpload{}, fmt.Errorf("%w: object store is not configured", usecase.ErrDependencyUnavailable)
}

func (unconfiguredObjectGateway) NormalizeObjectURL(raw string) string {
	return raw
}

func (unconfiguredObjectGateway) SetVisibility(context.Context, string, string, string) error {
	return fmt.Errorf("%w: object store is not configured", usecase.ErrDependencyUnavailable)
}

func (unconfiguredObjectGateway) Open(context.Context, string) (usecase.StoredObject, error) {
	return usecase.StoredObject{}, fmt.Errorf("%w: object store is not configured", usecase.ErrDependencyUnavailable)
}
