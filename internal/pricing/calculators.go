package pricing

import (
	"slices"

	"github.com/Andydrums87/bookabash-sub001/internal/money"
)

const (
	// DefaultDurationHours is assumed when the party has no duration.
	DefaultDurationHours = 2.0
	// DefaultMinimumBookingHours applies to hourly offerings that declare none.
	DefaultMinimumBookingHours = 4.0
	// DefaultMinimumOrder is the smallest per-child catering order.
	DefaultMinimumOrder = 10

	premiumWeekend = "weekend"

	adjustmentMinimumHours = "minimum_hours"
	adjustmentMinimumOrder = "minimum_order"
	adjustmentPackRounding = "pack_rounding"
)

// DefaultPackSizes are the decoration pack sizes used when a package lists none.
func DefaultPackSizes() []int {
	return []int{8, 16, 24, 32, 40, 48}
}

// calcInput is the snapshot handed to a model calculator. pkg is nil when
// the offering has no packages at all.
type calcInput struct {
	offering *SupplierOffering
	pkg      *Package
	party    PartyContext
	sel      Selections
}

type calcOutput struct {
	packagePrice money.Amount
	// quantity is the head count add-ons are multiplied by.
	quantity int
	info     PricingInfo
	enhanced bool
}

type calculator func(in calcInput) calcOutput

//nolint:gochecknoglobals // dispatch table
var calculators = map[Model]calculator{
	ModelLeadBasedFlat:      calculateLeadBasedFlat,
	ModelLeadBasedPerUnit:   calculateLeadBasedPerUnit,
	ModelTimeBasedHourly:    calculateTimeBasedHourly,
	ModelPerChild:           calculatePerChild,
	ModelPerChildWithBuffer: calculatePerChildWithBuffer,
	ModelMultiSelect:        calculateMultiSelect,
	ModelVenueComposite:     calculateVenueComposite,
}

// unitPrice is the package price, or the offering base price without one.
func (in calcInput) unitPrice() money.UnitPrice {
	if in.pkg != nil {
		return money.UnitPrice(in.pkg.Price)
	}
	return money.UnitPrice(in.offering.BasePrice)
}

// premiumRate swaps in the weekend price when one applies.
func (in calcInput) premiumRate() (money.UnitPrice, bool) {
	nominal := in.unitPrice()
	if in.pkg == nil || in.pkg.WeekendPrice <= 0 || !in.party.IsWeekend() {
		return nominal, false
	}
	return money.UnitPrice(in.pkg.WeekendPrice), true
}

func calculateLeadBasedFlat(in calcInput) calcOutput {
	price := in.unitPrice().Amount()
	return calcOutput{
		packagePrice: price,
		quantity:     1,
		info: PricingInfo{
			OriginalPrice: price,
			FinalPrice:    price,
		},
	}
}

func calculateLeadBasedPerUnit(in calcInput) calcOutput {
	quantity := in.sel.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	price := in.unitPrice().Times(quantity)
	return calcOutput{
		packagePrice: price,
		quantity:     quantity,
		info: PricingInfo{
			OriginalPrice:  price,
			FinalPrice:     price,
			BilledQuantity: quantity,
		},
	}
}

func calculateTimeBasedHourly(in calcInput) calcOutput {
	rate, premium := in.premiumRate()
	nominal := in.unitPrice()

	out := calcOutput{quantity: 1, enhanced: premium}
	if premium {
		out.info.Premiums = append(out.info.Premiums, premiumWeekend)
	}

	if !in.offering.IsHourly() {
		out.packagePrice = rate.Amount()
		out.info.OriginalPrice = nominal.Amount()
		out.info.FinalPrice = out.packagePrice
		return out
	}

	hours, raised := billedHours(in.party.Duration, in.offering.minimumHours())
	if raised {
		out.info.Adjustments = append(out.info.Adjustments, adjustmentMinimumHours)
	}

	out.packagePrice = rate.TimesHours(hours)
	out.info.OriginalPrice = nominal.TimesHours(hours)
	out.info.FinalPrice = out.packagePrice
	out.info.BilledHours = hours
	return out
}

// billedHours never bills below the minimum booking.
func billedHours(duration, minimum float64) (float64, bool) {
	if duration < minimum {
		return minimum, true
	}
	return duration, false
}

func calculatePerChild(in calcInput) calcOutput {
	quantity := in.sel.Quantity
	if quantity <= 0 {
		quantity = in.party.GuestCount
	}

	var adjustments []string
	if minimum := in.offering.minimumOrder(); quantity < minimum {
		quantity = minimum
		adjustments = append(adjustments, adjustmentMinimumOrder)
	}

	price := in.unitPrice().Times(quantity)
	return calcOutput{
		packagePrice: price,
		quantity:     quantity,
		info: PricingInfo{
			OriginalPrice:  price,
			FinalPrice:     price,
			Adjustments:    adjustments,
			BilledQuantity: quantity,
		},
	}
}

// PackSize returns the smallest allowed pack size that covers guestCount,
// or the largest size when none does. An empty list uses DefaultPackSizes.
func PackSize(guestCount int, sizes []int) int {
	if len(sizes) == 0 {
		sizes = DefaultPackSizes()
	}

	sorted := slices.Clone(sizes)
	slices.Sort(sorted)

	for _, size := range sorted {
		if size >= guestCount {
			return size
		}
	}
	return sorted[len(sorted)-1]
}

func calculatePerChildWithBuffer(in calcInput) calcOutput {
	guests := in.party.GuestCount
	if guests <= 0 {
		guests = in.sel.Quantity
	}

	var sizes []int
	if in.pkg != nil {
		sizes = in.pkg.PackSizes
	}
	packSize := PackSize(guests, sizes)
	buffer := max(packSize-guests, 0)

	unit := in.unitPrice()
	price := unit.Times(packSize)

	info := PricingInfo{
		OriginalPrice:  unit.Times(guests),
		FinalPrice:     price,
		BilledQuantity: packSize,
		PackSize:       packSize,
		BufferCount:    buffer,
	}
	if packSize != guests {
		info.Adjustments = []string{adjustmentPackRounding}
	}

	return calcOutput{
		packagePrice: price,
		quantity:     packSize,
		info:         info,
	}
}

func calculateMultiSelect(in calcInput) calcOutput {
	ids := selectedItemIDs(in.sel)
	amounts := make([]money.Amount, 0, len(ids))

	for _, id := range ids {
		if item, ok := in.offering.FindPackage(id); ok {
			amounts = append(amounts, money.FromFloat(item.Price))
		}
	}

	price := money.Sum(amounts...)
	return calcOutput{
		packagePrice: price,
		quantity:     len(amounts),
		info: PricingInfo{
			OriginalPrice:  price,
			FinalPrice:     price,
			BilledQuantity: len(amounts),
		},
	}
}

// selectedItemIDs merges the single and multi package selections, dropping
// duplicates while keeping order.
func selectedItemIDs(sel Selections) []string {
	ids := make([]string, 0, len(sel.PackageIDs)+1)
	seen := make(map[string]struct{}, cap(ids))

	for _, id := range append(slices.Clone(sel.PackageIDs), sel.PackageID) {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func calculateVenueComposite(in calcInput) calcOutput {
	out := calcOutput{quantity: in.party.GuestCount}

	var room, nominalRoom money.Amount
	if in.pkg != nil {
		rate, premium := in.premiumRate()
		room = rate.Amount()
		nominalRoom = in.unitPrice().Amount()
		if premium {
			out.enhanced = true
			out.info.Premiums = append(out.info.Premiums, premiumWeekend)
		}
	} else {
		hours, raised := billedHours(in.party.Duration, in.offering.minimumHours())
		if raised {
			out.info.Adjustments = append(out.info.Adjustments, adjustmentMinimumHours)
		}
		room = in.unitPrice().TimesHours(hours)
		nominalRoom = room
		out.info.BilledHours = hours
	}

	catering := money.Zero
	if option, ok := in.offering.FindCatering(in.sel.CateringID); ok {
		guests := in.sel.CateringGuestCount
		if guests <= 0 {
			guests = in.party.GuestCount
		}
		if option.MinGuests > 0 && guests < option.MinGuests {
			guests = option.MinGuests
			out.info.Adjustments = append(out.info.Adjustments, adjustmentMinimumOrder)
		}
		catering = money.UnitPrice(option.PricePerHead).Times(guests)
		out.info.BilledQuantity = guests
		out.quantity = guests
	}

	out.packagePrice = money.Sum(room, catering)
	out.info.RoomPrice = room
	out.info.CateringPrice = catering
	out.info.OriginalPrice = money.Sum(nominalRoom, catering)
	out.info.FinalPrice = out.packagePrice
	return out
}
