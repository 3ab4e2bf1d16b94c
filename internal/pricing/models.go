package pricing

import (
	"strings"

	"github.com/Andydrums87/bookabash-sub001/internal/money"
)

// SupplierOffering is a supplier's sellable service as stored by the
// marketplace. The pricing core only reads it.
type SupplierOffering struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Description string `json:"description,omitempty"`

	// BasePrice is read per unit appropriate to the pricing model. It is the
	// fallback whenever the offering has no packages.
	BasePrice float64 `json:"basePrice,omitempty"`
	PriceUnit string  `json:"priceUnit,omitempty"`

	MinimumBookingHours float64 `json:"minimumBookingHours,omitempty"`
	MinimumOrder        int     `json:"minimumOrder,omitempty"`

	Packages []Package          `json:"packages,omitempty"`
	Addons   []AddonOffering    `json:"addons,omitempty"`
	Catering []CateringOffering `json:"catering,omitempty"`
	Extras   []ExtraOffering    `json:"extras,omitempty"`

	OffersDelivery bool    `json:"offersDelivery,omitempty"`
	OffersPickup   bool    `json:"offersPickup,omitempty"`
	DeliveryFee    float64 `json:"deliveryFee,omitempty"`

	// PricingModel is the authoritative classification. When set it wins
	// over anything inferred from the free-text fields.
	PricingModel Model `json:"pricingModel,omitempty"`
}

// IsHourly reports whether the offering is priced per hour.
func (o *SupplierOffering) IsHourly() bool {
	return strings.Contains(strings.ToLower(o.PriceUnit), "hour")
}

// FindPackage returns the package with the given id.
func (o *SupplierOffering) FindPackage(id string) (*Package, bool) {
	if id == "" {
		return nil, false
	}
	for i := range o.Packages {
		if o.Packages[i].ID == id {
			return &o.Packages[i], true
		}
	}
	return nil, false
}

// FindCatering returns the catering option with the given id.
func (o *SupplierOffering) FindCatering(id string) (*CateringOffering, bool) {
	if id == "" {
		return nil, false
	}
	for i := range o.Catering {
		if o.Catering[i].ID == id {
			return &o.Catering[i], true
		}
	}
	return nil, false
}

func (o *SupplierOffering) minimumHours() float64 {
	if o.MinimumBookingHours > 0 {
		return o.MinimumBookingHours
	}
	return DefaultMinimumBookingHours
}

func (o *SupplierOffering) minimumOrder() int {
	if o.MinimumOrder > 0 {
		return o.MinimumOrder
	}
	return DefaultMinimumOrder
}

// malformed reports an offering with nothing to price against: no id, no
// category text and no price anywhere.
func (o *SupplierOffering) malformed() bool {
	if o.ID != "" || o.Category != "" || o.ServiceType != "" || o.PricingModel != "" {
		return false
	}
	if o.BasePrice > 0 {
		return false
	}
	for _, p := range o.Packages {
		if p.Price > 0 {
			return false
		}
	}
	return true
}

// Package is one purchasable tier of an offering.
type Package struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	// WeekendPrice replaces Price on premium days. Zero means no premium.
	WeekendPrice float64 `json:"weekendPrice,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	PackSizes    []int   `json:"packSizes,omitempty"`
	MinGuests    int     `json:"minGuests,omitempty"`
	MaxGuests    int     `json:"maxGuests,omitempty"`

	// DeliveryFee overrides the offering-level fee when present.
	DeliveryFee *float64 `json:"deliveryFee,omitempty"`
}

// PriceType says how an add-on is charged.
type PriceType string

const (
	PriceTypeFlat    PriceType = "flat"
	PriceTypePerHead PriceType = "perHead"
)

// IsPerHead accepts the spellings found in supplier data.
func (t PriceType) IsPerHead() bool {
	switch strings.ToLower(strings.ReplaceAll(string(t), "_", "")) {
	case "perhead", "perchild", "perperson", "perguest":
		return true
	default:
		return false
	}
}

// AddonOffering is an optional extra the customer can toggle.
type AddonOffering struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	PriceType PriceType `json:"priceType,omitempty"`
}

// CateringOffering is a venue's optional food package, priced per head.
type CateringOffering struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PricePerHead float64 `json:"pricePerHead"`
	MinGuests    int     `json:"minGuests,omitempty"`
	MaxGuests    int     `json:"maxGuests,omitempty"`
}

// ExtraOffering is a fixed-price extra such as a box of cupcakes.
type ExtraOffering struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PartyContext carries the party parameters that affect price.
type PartyContext struct {
	Date       *Date   `json:"date,omitempty"`
	Duration   float64 `json:"duration,omitempty"`
	GuestCount int     `json:"guestCount,omitempty"`
}

// WithDefaults fills in the documented defaults for absent values.
func (p PartyContext) WithDefaults() PartyContext {
	if p.Duration <= 0 {
		p.Duration = DefaultDurationHours
	}
	if p.GuestCount < 0 {
		p.GuestCount = 0
	}
	return p
}

// IsWeekend reports whether the party falls on a premium day.
// Without a date there is no premium.
func (p PartyContext) IsWeekend() bool {
	if p.Date == nil {
		return false
	}
	return p.Date.IsPremiumDay()
}

// Fulfillment is how a lead-based order reaches the party.
type Fulfillment string

const (
	FulfillmentDelivery Fulfillment = "delivery"
	FulfillmentPickup   Fulfillment = "pickup"
)

// Selections is the customer's in-progress choice set.
type Selections struct {
	PackageID          string      `json:"packageId,omitempty"`
	PackageIDs         []string    `json:"packageIds,omitempty"`
	AddonIDs           []string    `json:"addonIds,omitempty"`
	ExtraIDs           []string    `json:"extraIds,omitempty"`
	Quantity           int         `json:"quantity,omitempty"`
	CateringID         string      `json:"cateringId,omitempty"`
	CateringGuestCount int         `json:"cateringGuestCount,omitempty"`
	Fulfillment        Fulfillment `json:"fulfillment,omitempty"`
}

// PricingInfo explains how the package price was reached.
type PricingInfo struct {
	OriginalPrice  money.Amount `json:"originalPrice"`
	FinalPrice     money.Amount `json:"finalPrice"`
	Premiums       []string     `json:"premiums,omitempty"`
	Adjustments    []string     `json:"adjustments,omitempty"`
	BilledHours    float64      `json:"billedHours,omitempty"`
	BilledQuantity int          `json:"billedQuantity,omitempty"`
	PackSize       int          `json:"packSize,omitempty"`
	BufferCount    int          `json:"bufferCount,omitempty"`
	RoomPrice      money.Amount `json:"roomPrice,omitempty"`
	CateringPrice  money.Amount `json:"cateringPrice,omitempty"`
}

// PricingResult is the single authoritative price breakdown.
type PricingResult struct {
	Classification     Classification `json:"classification"`
	PackagePrice       money.Amount   `json:"packagePrice"`
	AddonsTotalPrice   money.Amount   `json:"addonsTotalPrice"`
	DeliveryFee        money.Amount   `json:"deliveryFee,omitempty"`
	ExtrasPrice        money.Amount   `json:"extrasPrice,omitempty"`
	TotalPrice         money.Amount   `json:"totalPrice"`
	HasEnhancedPricing bool           `json:"hasEnhancedPricing"`
	PricingInfo        *PricingInfo   `json:"pricingInfo,omitempty"`
}

// IsZero reports whether there is nothing to charge yet.
func (r PricingResult) IsZero() bool {
	return r.TotalPrice.IsZero() && r.PricingInfo == nil
}
