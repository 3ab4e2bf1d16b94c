// Package pricing computes live booking prices for party supplier offerings.
//
// Everything here is a pure function of its arguments: no I/O, no logging,
// no retained state. CalculateFinalPrice is cheap enough to run on every
// form change and always returns a result; missing or stale inputs fall back
// to documented defaults instead of failing.
package pricing

import (
	"github.com/Andydrums87/bookabash-sub001/internal/money"
)

// CalculateFinalPrice classifies the offering, runs the matching model
// calculator and folds in add-ons, delivery and fixed extras. TotalPrice is
// always the rounded sum of the returned components.
func CalculateFinalPrice(offering *SupplierOffering, party PartyContext, sel Selections) PricingResult {
	if offering == nil || offering.malformed() {
		return zeroResult(classificationFor(ModelLeadBasedFlat, ""))
	}

	class := Classify(offering, string(offering.PricingModel))
	party = party.WithDefaults()

	pkg, ok := resolvePackage(offering, class.Model, sel)
	if !ok {
		return zeroResult(class)
	}

	calc, exists := calculators[class.Model]
	if !exists {
		calc = calculateLeadBasedFlat
	}

	out := calc(calcInput{
		offering: offering,
		pkg:      pkg,
		party:    party,
		sel:      sel,
	})

	addons := SumAddons(offering.Addons, sel.AddonIDs, class.Model, out.quantity)
	delivery := deliveryFee(offering, pkg, sel)
	extras := sumExtras(offering.Extras, sel.ExtraIDs)

	info := out.info
	return PricingResult{
		Classification:     class,
		PackagePrice:       out.packagePrice,
		AddonsTotalPrice:   addons,
		DeliveryFee:        delivery,
		ExtrasPrice:        extras,
		TotalPrice:         money.Sum(out.packagePrice, addons, delivery, extras),
		HasEnhancedPricing: out.enhanced,
		PricingInfo:        &info,
	}
}

// resolvePackage finds the selected package. The boolean is false when the
// customer still has to pick something, which yields a zero result.
func resolvePackage(offering *SupplierOffering, model Model, sel Selections) (*Package, bool) {
	if model == ModelMultiSelect {
		return nil, len(selectedItemIDs(sel)) > 0
	}

	if len(offering.Packages) == 0 {
		return nil, true
	}

	return offering.FindPackage(sel.PackageID)
}

// deliveryFee applies only to delivered orders from suppliers that deliver.
// A package-level fee overrides the offering fee.
func deliveryFee(offering *SupplierOffering, pkg *Package, sel Selections) money.Amount {
	if sel.Fulfillment != FulfillmentDelivery || !offering.OffersDelivery {
		return money.Zero
	}
	if pkg != nil && pkg.DeliveryFee != nil {
		return money.FromFloat(*pkg.DeliveryFee)
	}
	return money.FromFloat(offering.DeliveryFee)
}

func zeroResult(class Classification) PricingResult {
	return PricingResult{
		Classification:     class,
		PackagePrice:       money.Zero,
		AddonsTotalPrice:   money.Zero,
		TotalPrice:         money.Zero,
		HasEnhancedPricing: false,
	}
}
