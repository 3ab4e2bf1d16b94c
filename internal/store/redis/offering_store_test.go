package redis_test

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
	"github.com/Andydrums87/bookabash-sub001/internal/store/redis"
)

// newTestStore connects to the Redis at REDIS_ADDR under a throwaway prefix.
func newTestStore(t *testing.T) *redis.OfferingStore {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping redis store tests")
	}

	client, err := redis.NewClient(&config.RedisConfig{Addr: addr})
	require.NoError(t, err)

	prefix := "test:" + t.Name() + ":"
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		_ = client.Close()
	})

	return redis.NewOfferingStore(client, prefix)
}

func TestOfferingStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	offering := &pricing.SupplierOffering{
		ID:           "venue-1",
		Name:         "Village Hall",
		Category:     "Venue",
		PricingModel: pricing.ModelVenueComposite,
		Packages:     []pricing.Package{{ID: "room", Price: 300, WeekendPrice: 400}},
		Catering:     []pricing.CateringOffering{{ID: "buffet", PricePerHead: 8}},
	}

	require.NoError(t, store.Save(ctx, offering))

	retrieved, err := store.Get(ctx, "venue-1")
	require.NoError(t, err)
	require.Equal(t, offering, retrieved)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"venue-1"}, ids)
}

func TestOfferingStore_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrOfferingNotFound)
}

func TestOfferingStore_SaveValidation(t *testing.T) {
	store := redis.NewOfferingStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}), "x:")

	require.Error(t, store.Save(context.Background(), nil))
	require.Error(t, store.Save(context.Background(), &pricing.SupplierOffering{Name: "no id"}))
}
