package pricing

import (
	"github.com/Andydrums87/bookabash-sub001/internal/money"
)

// SumAddons totals the selected add-ons. Per-head add-ons are multiplied by
// quantity only under the per-child model; everything else is charged once.
// Ids missing from the catalog are skipped, as are repeated ids.
func SumAddons(catalog []AddonOffering, selectedIDs []string, model Model, quantity int) money.Amount {
	if len(selectedIDs) == 0 || len(catalog) == 0 {
		return money.Zero
	}

	byID := make(map[string]AddonOffering, len(catalog))
	for _, addon := range catalog {
		byID[addon.ID] = addon
	}

	seen := make(map[string]struct{}, len(selectedIDs))
	amounts := make([]money.Amount, 0, len(selectedIDs))

	for _, id := range selectedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		addon, ok := byID[id]
		if !ok {
			continue
		}

		price := money.UnitPrice(addon.Price)
		if addon.PriceType.IsPerHead() && model == ModelPerChild {
			amounts = append(amounts, price.Times(quantity))
			continue
		}
		amounts = append(amounts, price.Amount())
	}

	return money.Sum(amounts...)
}

// sumExtras totals the selected fixed extras, skipping unknown ids.
func sumExtras(catalog []ExtraOffering, selectedIDs []string) money.Amount {
	if len(selectedIDs) == 0 || len(catalog) == 0 {
		return money.Zero
	}

	seen := make(map[string]struct{}, len(selectedIDs))
	amounts := make([]money.Amount, 0, len(selectedIDs))

	for _, id := range selectedIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		for _, extra := range catalog {
			if extra.ID == id {
				amounts = append(amounts, money.FromFloat(extra.Price))
				break
			}
		}
	}

	return money.Sum(amounts...)
}
