package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	httpapi "github.com/Andydrums87/bookabash-sub001/internal/http"
	"github.com/Andydrums87/bookabash-sub001/internal/http/middleware"
	"github.com/Andydrums87/bookabash-sub001/internal/money"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

func newTestServer(t *testing.T) (http.Handler, *domain.InMemoryOfferingStore) {
	t.Helper()

	store := domain.NewInMemoryOfferingStore()
	require.NoError(t, store.Save(context.Background(), &pricing.SupplierOffering{
		ID:           "hall-1",
		Name:         "Community Hall",
		Category:     "Venue",
		PricingModel: pricing.ModelVenueComposite,
		Packages:     []pricing.Package{{ID: "room", Price: 300, WeekendPrice: 400}},
		Catering:     []pricing.CateringOffering{{ID: "buffet", PricePerHead: 8}},
		Addons:       []pricing.AddonOffering{{ID: "dj", Price: 25}},
	}))

	service := domain.NewQuoteService(store, nil)
	server := httpapi.NewServer(&config.ServerConfig{Port: 0}, httpapi.NewHandler(service), middleware.Trace())
	return server.Routes(), store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleQuote(t *testing.T) {
	h, _ := newTestServer(t)

	t.Run("stored offering", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{
			"offeringId": "hall-1",
			"party": {"date": "2026-10-20", "guestCount": 20},
			"selections": {"packageId": "room", "cateringId": "buffet", "cateringGuestCount": 20, "addonIds": ["dj"]}
		}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))

		var result pricing.PricingResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Equal(t, money.Amount(485), result.TotalPrice)
		require.Equal(t, money.Amount(460), result.PackagePrice)
		require.Equal(t, pricing.ModelVenueComposite, result.Classification.Model)
		require.False(t, result.HasEnhancedPricing)
	})

	t.Run("saturday premium", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{
			"offeringId": "hall-1",
			"party": {"date": "2026-10-17"},
			"selections": {"packageId": "room"}
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var result pricing.PricingResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Equal(t, money.Amount(400), result.TotalPrice)
		require.True(t, result.HasEnhancedPricing)
		require.Equal(t, []string{"weekend"}, result.PricingInfo.Premiums)
	})

	t.Run("inline offering", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{
			"offering": {"id": "bags", "name": "Bag Co", "category": "Party Bags", "packages": [{"id": "std", "price": 4.5}]},
			"selections": {"packageId": "std", "quantity": 10}
		}`)

		require.Equal(t, http.StatusOK, w.Code)

		var result pricing.PricingResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
		require.Equal(t, money.Amount(45), result.TotalPrice)
	})

	t.Run("unknown offering", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{"offeringId": "nope"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("no offering named", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{"party": {}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad party date", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{"offeringId": "hall-1", "party": {"date": "soon"}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/quotes", `{`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/v1/quotes", "")
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleOfferings(t *testing.T) {
	h, store := newTestServer(t)

	t.Run("ingest classifies and stores", func(t *testing.T) {
		body, err := json.Marshal(pricing.SupplierOffering{
			ID:       "deco-1",
			Name:     "Theme Decor",
			Category: "Tableware",
			Packages: []pricing.Package{{ID: "pack", Price: 2.5}},
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/offerings", bytes.NewReader(body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var stored pricing.SupplierOffering
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stored))
		require.Equal(t, pricing.ModelPerChildWithBuffer, stored.PricingModel)

		persisted, err := store.Get(context.Background(), "deco-1")
		require.NoError(t, err)
		require.Equal(t, pricing.ModelPerChildWithBuffer, persisted.PricingModel)
	})

	t.Run("invalid offering", func(t *testing.T) {
		w := do(t, h, http.MethodPost, "/v1/offerings", `{"category": "Cakes"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get stored offering", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/v1/offerings/hall-1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var offering pricing.SupplierOffering
		require.NoError(t, json.NewDecoder(w.Body).Decode(&offering))
		require.Equal(t, "Community Hall", offering.Name)
	})

	t.Run("get missing offering", func(t *testing.T) {
		w := do(t, h, http.MethodGet, "/v1/offerings/missing", "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	h, _ := newTestServer(t)

	w := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
