package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

func TestClassify_Inference(t *testing.T) {
	tests := []struct {
		name     string
		offering pricing.SupplierOffering
		model    pricing.Model
		variant  string
	}{
		{
			name:     "cake category is per unit",
			offering: pricing.SupplierOffering{Category: "Cakes"},
			model:    pricing.ModelLeadBasedPerUnit,
			variant:  "cake",
		},
		{
			name:     "function room is a venue",
			offering: pricing.SupplierOffering{Category: "Function Room"},
			model:    pricing.ModelVenueComposite,
			variant:  "venue",
		},
		{
			name:     "village hall is a venue",
			offering: pricing.SupplierOffering{Category: "Village Hall"},
			model:    pricing.ModelVenueComposite,
			variant:  "venue",
		},
		{
			name:     "halloween is not a hall",
			offering: pricing.SupplierOffering{Category: "Halloween Costumes"},
			model:    pricing.ModelLeadBasedFlat,
		},
		{
			name:     "lunchboxes are per child",
			offering: pricing.SupplierOffering{Category: "Lunchboxes"},
			model:    pricing.ModelPerChild,
			variant:  "catering",
		},
		{
			name:     "decorations round to packs",
			offering: pricing.SupplierOffering{Category: "Decorations"},
			model:    pricing.ModelPerChildWithBuffer,
			variant:  "decorations",
		},
		{
			name:     "tableware rounds to packs",
			offering: pricing.SupplierOffering{Category: "Tableware"},
			model:    pricing.ModelPerChildWithBuffer,
			variant:  "decorations",
		},
		{
			name:     "soft play is multi select",
			offering: pricing.SupplierOffering{Category: "Soft Play"},
			model:    pricing.ModelMultiSelect,
			variant:  "soft_play",
		},
		{
			name:     "face painting is hourly",
			offering: pricing.SupplierOffering{Category: "face-painting"},
			model:    pricing.ModelTimeBasedHourly,
			variant:  "face_painting",
		},
		{
			name:     "party bags are per unit",
			offering: pricing.SupplierOffering{Category: "Party Bags"},
			model:    pricing.ModelLeadBasedPerUnit,
			variant:  "party_bags",
		},
		{
			name:     "service type beats category",
			offering: pricing.SupplierOffering{ServiceType: "venue", Category: "Catering"},
			model:    pricing.ModelVenueComposite,
			variant:  "venue",
		},
		{
			name:     "category beats name",
			offering: pricing.SupplierOffering{Category: "Entertainment", Name: "Cake Smash Clown"},
			model:    pricing.ModelTimeBasedHourly,
			variant:  "entertainment",
		},
		{
			name:     "falls through to name and description",
			offering: pricing.SupplierOffering{Name: "Sparkle Co", Description: "Helium balloon arches"},
			model:    pricing.ModelLeadBasedPerUnit,
			variant:  "balloons",
		},
		{
			name:     "unknown text is flat",
			offering: pricing.SupplierOffering{Category: "Photography"},
			model:    pricing.ModelLeadBasedFlat,
		},
		{
			name:     "empty offering is flat",
			offering: pricing.SupplierOffering{},
			model:    pricing.ModelLeadBasedFlat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Classify(&tt.offering, "")
			require.Equal(t, tt.model, got.Model)
			require.Equal(t, tt.variant, got.Variant)
		})
	}
}

func TestClassify_Override(t *testing.T) {
	offering := &pricing.SupplierOffering{Category: "Cakes"}

	t.Run("model tag wins over category", func(t *testing.T) {
		got := pricing.Classify(offering, "venue_composite")
		require.Equal(t, pricing.ModelVenueComposite, got.Model)
	})

	t.Run("keyword override wins over category", func(t *testing.T) {
		got := pricing.Classify(offering, "catering")
		require.Equal(t, pricing.ModelPerChild, got.Model)
		require.Equal(t, "catering", got.Variant)
	})

	t.Run("unrecognised override does not fall back to inference", func(t *testing.T) {
		got := pricing.Classify(offering, "mystery")
		require.Equal(t, pricing.ModelLeadBasedFlat, got.Model)
	})

	t.Run("nil offering with no override", func(t *testing.T) {
		got := pricing.Classify(nil, "")
		require.Equal(t, pricing.ModelLeadBasedFlat, got.Model)
	})
}

func TestClassify_Flags(t *testing.T) {
	tests := []struct {
		model     pricing.Model
		leadBased bool
		timeBased bool
	}{
		{model: pricing.ModelLeadBasedFlat, leadBased: true},
		{model: pricing.ModelLeadBasedPerUnit, leadBased: true},
		{model: pricing.ModelPerChild, leadBased: true},
		{model: pricing.ModelPerChildWithBuffer, leadBased: true},
		{model: pricing.ModelTimeBasedHourly, timeBased: true},
		{model: pricing.ModelVenueComposite, timeBased: true},
		{model: pricing.ModelMultiSelect},
	}

	for _, tt := range tests {
		t.Run(string(tt.model), func(t *testing.T) {
			got := pricing.Classify(nil, string(tt.model))
			require.Equal(t, tt.model, got.Model)
			require.Equal(t, tt.leadBased, got.IsLeadBased)
			require.Equal(t, tt.timeBased, got.IsTimeBased)
		})
	}
}

func TestModel_Valid(t *testing.T) {
	for _, m := range pricing.Models() {
		require.True(t, m.Valid())
	}
	require.False(t, pricing.Model("per_minute").Valid())
}
