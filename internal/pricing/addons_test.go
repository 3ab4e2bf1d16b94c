package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andydrums87/bookabash-sub001/internal/money"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

func TestSumAddons(t *testing.T) {
	catalog := []pricing.AddonOffering{
		{ID: "juice", Price: 2, PriceType: "perChild"},
		{ID: "napkins", Price: 1.5, PriceType: "per_head"},
		{ID: "banner", Price: 12.99, PriceType: pricing.PriceTypeFlat},
	}

	tests := []struct {
		name     string
		selected []string
		model    pricing.Model
		quantity int
		expected money.Amount
	}{
		{
			name:     "per head multiplies under per child",
			selected: []string{"juice"},
			model:    pricing.ModelPerChild,
			quantity: 15,
			expected: 30,
		},
		{
			name:     "per head is flat under other models",
			selected: []string{"juice"},
			model:    pricing.ModelVenueComposite,
			quantity: 15,
			expected: 2,
		},
		{
			name:     "mixed per head and flat",
			selected: []string{"juice", "napkins", "banner"},
			model:    pricing.ModelPerChild,
			quantity: 12,
			expected: 54.99,
		},
		{
			name:     "unknown id contributes nothing",
			selected: []string{"unicorn"},
			model:    pricing.ModelPerChild,
			quantity: 10,
			expected: 0,
		},
		{
			name:     "unknown id alongside known ones",
			selected: []string{"unicorn", "banner"},
			model:    pricing.ModelLeadBasedFlat,
			quantity: 1,
			expected: 12.99,
		},
		{
			name:     "repeated id counted once",
			selected: []string{"banner", "banner"},
			model:    pricing.ModelLeadBasedFlat,
			quantity: 1,
			expected: 12.99,
		},
		{
			name:     "nothing selected",
			selected: nil,
			model:    pricing.ModelPerChild,
			quantity: 10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				got := pricing.SumAddons(catalog, tt.selected, tt.model, tt.quantity)
				require.Equal(t, tt.expected, got)
			})
		})
	}
}

func TestSumAddons_EmptyCatalog(t *testing.T) {
	require.Equal(t, money.Zero, pricing.SumAddons(nil, []string{"juice"}, pricing.ModelPerChild, 10))
}

func TestPriceType_IsPerHead(t *testing.T) {
	for _, pt := range []pricing.PriceType{"perChild", "per_child", "perHead", "PER_HEAD", "perPerson"} {
		require.True(t, pt.IsPerHead(), string(pt))
	}
	for _, pt := range []pricing.PriceType{"", "flat", "fixed", "perEvent"} {
		require.False(t, pt.IsPerHead(), string(pt))
	}
}
