package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Andydrums87/bookabash-sub001/internal/observability"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

// QuoteService prices offerings for the booking flow and manages the
// offerings it prices.
type QuoteService struct {
	store  OfferingStore
	events EventPublisher
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(store OfferingStore, events EventPublisher) *QuoteService {
	return &QuoteService{
		store:  store,
		events: events,
	}
}

// Quote prices a stored or inline offering.
func (s *QuoteService) Quote(ctx context.Context, req *QuoteRequest) (pricing.PricingResult, error) {
	if req == nil {
		return pricing.PricingResult{}, errors.New("request cannot be nil")
	}

	switch {
	case req.OfferingID != "" && req.Offering != nil:
		return pricing.PricingResult{}, fmt.Errorf("%w: offeringId and offering are mutually exclusive", ErrInvalidQuote)
	case req.Offering != nil:
		return s.QuoteOffering(ctx, req.Offering, req.Party, req.Selections), nil
	case req.OfferingID == "":
		return pricing.PricingResult{}, fmt.Errorf("%w: offeringId or offering is required", ErrInvalidQuote)
	}

	offering, err := s.store.Get(ctx, req.OfferingID)
	if err != nil {
		return pricing.PricingResult{}, fmt.Errorf("failed to load offering: %w", err)
	}

	return s.QuoteOffering(ctx, offering, req.Party, req.Selections), nil
}

// QuoteOffering prices an offering the caller already holds.
func (s *QuoteService) QuoteOffering(
	ctx context.Context,
	offering *pricing.SupplierOffering,
	party pricing.PartyContext,
	sel pricing.Selections,
) pricing.PricingResult {
	result := pricing.CalculateFinalPrice(offering, party, sel)

	offeringID := ""
	if offering != nil {
		offeringID = offering.ID
	}
	ctx = observability.WithOfferingID(ctx, offeringID)
	ctx = observability.WithPricingModel(ctx, string(result.Classification.Model))

	logger := observability.FromContext(ctx)
	if result.IsZero() {
		logger.Debug("nothing to charge yet")
	} else {
		logger.Debug("quote calculated",
			observability.Float64("package_price", result.PackagePrice.Float64()),
			observability.Float64("addons_total", result.AddonsTotalPrice.Float64()),
			observability.Float64("total", result.TotalPrice.Float64()),
			observability.Bool("enhanced", result.HasEnhancedPricing))
	}

	if s.events != nil {
		s.events.Publish(ctx, EventQuoteCalculated, map[string]interface{}{
			"offering_id":   offeringID,
			"pricing_model": string(result.Classification.Model),
			"total":         result.TotalPrice.Float64(),
			"enhanced":      result.HasEnhancedPricing,
		})
	}

	return result
}

// Get returns a stored offering.
func (s *QuoteService) Get(ctx context.Context, id string) (*pricing.SupplierOffering, error) {
	if id == "" {
		return nil, errors.New("offering id cannot be empty")
	}

	offering, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load offering: %w", err)
	}
	return offering, nil
}

// Ingest validates an offering, classifies it once and stores it. The
// stored PricingModel is authoritative for every later quote.
func (s *QuoteService) Ingest(
	ctx context.Context,
	offering *pricing.SupplierOffering,
) (*pricing.SupplierOffering, error) {
	if err := validateOffering(offering); err != nil {
		return nil, err
	}

	stored := *offering
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	if stored.PricingModel == "" {
		stored.PricingModel = pricing.Classify(&stored, "").Model
	}

	ctx = observability.WithOfferingID(ctx, stored.ID)
	ctx = observability.WithPricingModel(ctx, string(stored.PricingModel))
	logger := observability.FromContext(ctx)

	if err := s.store.Save(ctx, &stored); err != nil {
		logger.Error("failed to store offering", observability.Error(err))
		return nil, fmt.Errorf("failed to store offering: %w", err)
	}

	logger.Info("offering ingested",
		observability.Int("packages", len(stored.Packages)),
		observability.Int("addons", len(stored.Addons)))

	return &stored, nil
}

// Reclassify backfills PricingModel on stored offerings using the keyword
// classifier. With force, offerings that already carry a tag are
// reclassified too. With dryRun nothing is written.
func (s *QuoteService) Reclassify(ctx context.Context, force, dryRun bool) (*ReclassifyReport, error) {
	logger := observability.FromContext(ctx)

	ids, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}

	report := &ReclassifyReport{
		DryRun:   dryRun,
		Assigned: make(map[string]pricing.Model),
	}

	for _, id := range ids {
		report.Scanned++

		offering, getErr := s.store.Get(ctx, id)
		if getErr != nil {
			return report, fmt.Errorf("failed to load offering %s: %w", id, getErr)
		}

		if offering.PricingModel != "" && !force {
			report.Skipped++
			continue
		}

		model := pricing.Classify(offering, "").Model
		if model == offering.PricingModel {
			report.Skipped++
			continue
		}

		report.Assigned[id] = model
		report.Updated++

		if dryRun {
			continue
		}

		offering.PricingModel = model
		if saveErr := s.store.Save(ctx, offering); saveErr != nil {
			return report, fmt.Errorf("failed to store offering %s: %w", id, saveErr)
		}
	}

	logger.Info("reclassification finished",
		observability.Int("scanned", report.Scanned),
		observability.Int("updated", report.Updated),
		observability.Int("skipped", report.Skipped),
		observability.Bool("dry_run", dryRun))

	return report, nil
}

func validateOffering(offering *pricing.SupplierOffering) error {
	if offering == nil {
		return fmt.Errorf("%w: offering cannot be nil", ErrInvalidOffering)
	}

	if strings.TrimSpace(offering.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidOffering)
	}

	if offering.PricingModel != "" && !offering.PricingModel.Valid() {
		return fmt.Errorf("%w: unknown pricing model %q", ErrInvalidOffering, offering.PricingModel)
	}

	if offering.BasePrice < 0 || offering.DeliveryFee < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidOffering)
	}

	seen := make(map[string]struct{}, len(offering.Packages))
	for _, pkg := range offering.Packages {
		if pkg.ID == "" {
			return fmt.Errorf("%w: package id is required", ErrInvalidOffering)
		}
		if _, dup := seen[pkg.ID]; dup {
			return fmt.Errorf("%w: duplicate package id %q", ErrInvalidOffering, pkg.ID)
		}
		seen[pkg.ID] = struct{}{}

		if pkg.Price < 0 || pkg.WeekendPrice < 0 {
			return fmt.Errorf("%w: package %q has a negative price", ErrInvalidOffering, pkg.ID)
		}
		for _, size := range pkg.PackSizes {
			if size <= 0 {
				return fmt.Errorf("%w: package %q has a non-positive pack size", ErrInvalidOffering, pkg.ID)
			}
		}
	}

	for _, addon := range offering.Addons {
		if addon.ID == "" || addon.Price < 0 {
			return fmt.Errorf("%w: add-ons need an id and a non-negative price", ErrInvalidOffering)
		}
	}

	return nil
}
