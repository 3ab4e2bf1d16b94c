package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/observability"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

const (
	fieldData         = "data"
	fieldPricingModel = "pricing_model"
	fieldUpdatedAt    = "updated_at"
	indexSuffix       = "index"
	pingTimeout       = 5 * time.Second
)

// OfferingStore keeps offerings in Redis. Each offering is a hash holding
// its JSON document and classification; a set indexes every stored id.
type OfferingStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewClient connects to Redis and checks the connection.
func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return client, nil
}

// NewOfferingStore creates a new Redis offering store.
func NewOfferingStore(client *redis.Client, keyPrefix string) *OfferingStore {
	return &OfferingStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *OfferingStore) key(id string) string {
	return s.keyPrefix + id
}

func (s *OfferingStore) indexKey() string {
	return s.keyPrefix + indexSuffix
}

// Get loads an offering by id.
func (s *OfferingStore) Get(ctx context.Context, id string) (*pricing.SupplierOffering, error) {
	logger := observability.FromContext(ctx)

	data, err := s.client.HGet(ctx, s.key(id), fieldData).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", domain.ErrOfferingNotFound, id)
	}
	if err != nil {
		logger.Error("offering lookup failed",
			observability.String("key", s.key(id)),
			observability.Error(err))
		return nil, fmt.Errorf("failed to load offering: %w", err)
	}

	var offering pricing.SupplierOffering
	if unmarshalErr := json.Unmarshal([]byte(data), &offering); unmarshalErr != nil {
		logger.Error("failed to unmarshal stored offering",
			observability.String("key", s.key(id)),
			observability.Error(unmarshalErr))
		return nil, fmt.Errorf("failed to unmarshal offering: %w", unmarshalErr)
	}

	return &offering, nil
}

// Save writes the offering document and indexes its id.
func (s *OfferingStore) Save(ctx context.Context, offering *pricing.SupplierOffering) error {
	if offering == nil {
		return errors.New("offering cannot be nil")
	}

	if offering.ID == "" {
		return errors.New("offering id cannot be empty")
	}

	logger := observability.FromContext(ctx)

	data, err := json.Marshal(offering)
	if err != nil {
		return fmt.Errorf("failed to marshal offering: %w", err)
	}

	pipe := s.client.TxPipeline()

	pipe.HSet(ctx, s.key(offering.ID),
		fieldData, string(data),
		fieldPricingModel, string(offering.PricingModel),
		fieldUpdatedAt, time.Now().Unix(),
	)
	pipe.SAdd(ctx, s.indexKey(), offering.ID)

	if _, execErr := pipe.Exec(ctx); execErr != nil {
		logger.Error("offering save failed",
			observability.String("key", s.key(offering.ID)),
			observability.Error(execErr))
		return fmt.Errorf("failed to save offering: %w", execErr)
	}

	logger.Debug("offering saved",
		observability.String("key", s.key(offering.ID)),
		observability.Int("data_size", len(data)))
	return nil
}

// List returns every indexed offering id in sorted order.
func (s *OfferingStore) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}
