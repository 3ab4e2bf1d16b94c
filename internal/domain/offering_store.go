package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

// InMemoryOfferingStore stores offerings in memory.
type InMemoryOfferingStore struct {
	mu        sync.RWMutex
	offerings map[string]pricing.SupplierOffering
}

// NewInMemoryOfferingStore creates a new in-memory offering store.
func NewInMemoryOfferingStore() *InMemoryOfferingStore {
	return &InMemoryOfferingStore{
		mu:        sync.RWMutex{},
		offerings: make(map[string]pricing.SupplierOffering),
	}
}

// Get retrieves a copy of the offering.
func (s *InMemoryOfferingStore) Get(
	_ context.Context,
	id string,
) (*pricing.SupplierOffering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offering, exists := s.offerings[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrOfferingNotFound, id)
	}

	clone := cloneOffering(offering)
	return &clone, nil
}

// Save stores a copy of the offering.
func (s *InMemoryOfferingStore) Save(
	_ context.Context,
	offering *pricing.SupplierOffering,
) error {
	if offering == nil {
		return errors.New("offering cannot be nil")
	}

	if offering.ID == "" {
		return errors.New("offering id cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.offerings[offering.ID] = cloneOffering(*offering)
	return nil
}

// List returns stored ids in sorted order.
func (s *InMemoryOfferingStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.offerings))
	for id := range s.offerings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// cloneOffering copies the slices so callers never share backing arrays
// with the store.
func cloneOffering(o pricing.SupplierOffering) pricing.SupplierOffering {
	o.Packages = slices.Clone(o.Packages)
	for i := range o.Packages {
		o.Packages[i].PackSizes = slices.Clone(o.Packages[i].PackSizes)
	}
	o.Addons = slices.Clone(o.Addons)
	o.Catering = slices.Clone(o.Catering)
	o.Extras = slices.Clone(o.Extras)
	return o
}
