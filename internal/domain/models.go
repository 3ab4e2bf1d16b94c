package domain

import (
	"errors"

	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

var (
	// ErrOfferingNotFound indicates no offering exists with the requested id.
	ErrOfferingNotFound = errors.New("offering not found")

	// ErrInvalidOffering indicates an offering failed ingestion checks.
	ErrInvalidOffering = errors.New("invalid offering")

	// ErrInvalidQuote indicates a quote request that names no offering, or two.
	ErrInvalidQuote = errors.New("invalid quote request")
)

// EventQuoteCalculated is published after every successful quote.
const EventQuoteCalculated = "quote.calculated"

// QuoteRequest asks for the live price of an offering. Exactly one of
// OfferingID and Offering must be set.
type QuoteRequest struct {
	OfferingID string                    `json:"offeringId,omitempty"`
	Offering   *pricing.SupplierOffering `json:"offering,omitempty"`
	Party      pricing.PartyContext      `json:"party"`
	Selections pricing.Selections        `json:"selections"`
}

// ReclassifyReport summarises a classification backfill.
type ReclassifyReport struct {
	Scanned  int                      `json:"scanned"`
	Updated  int                      `json:"updated"`
	Skipped  int                      `json:"skipped"`
	DryRun   bool                     `json:"dryRun"`
	Assigned map[string]pricing.Model `json:"assigned"`
}
