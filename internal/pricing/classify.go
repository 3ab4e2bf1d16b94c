package pricing

import (
	"strings"
	"unicode"
)

// Model is a pricing model tag.
type Model string

const (
	ModelLeadBasedFlat      Model = "lead_based_flat"
	ModelLeadBasedPerUnit   Model = "lead_based_per_unit"
	ModelTimeBasedHourly    Model = "time_based_hourly"
	ModelPerChild           Model = "per_child"
	ModelPerChildWithBuffer Model = "per_child_with_buffer"
	ModelMultiSelect        Model = "multi_select"
	ModelVenueComposite     Model = "venue_composite"
)

// Models lists every known tag.
func Models() []Model {
	return []Model{
		ModelLeadBasedFlat,
		ModelLeadBasedPerUnit,
		ModelTimeBasedHourly,
		ModelPerChild,
		ModelPerChildWithBuffer,
		ModelMultiSelect,
		ModelVenueComposite,
	}
}

// Valid reports whether m is a known tag.
func (m Model) Valid() bool {
	for _, known := range Models() {
		if m == known {
			return true
		}
	}
	return false
}

// Classification is the outcome of classifying an offering.
type Classification struct {
	Model       Model  `json:"model"`
	Variant     string `json:"variant,omitempty"`
	IsLeadBased bool   `json:"isLeadBased"`
	IsTimeBased bool   `json:"isTimeBased"`
}

type keywordRule struct {
	phrases []string
	model   Model
	variant string
}

// keywordRules is walked top to bottom; the first rule with a matching
// phrase wins. Venue and soft play sit above the food rules so that
// "venue with catering" stays a venue.
//
//nolint:gochecknoglobals // static lookup table
var keywordRules = []keywordRule{
	{phrases: []string{"venue", "hall", "function room", "party room"}, model: ModelVenueComposite, variant: "venue"},
	{phrases: []string{"soft play", "activities", "activity", "bouncy castle"}, model: ModelMultiSelect, variant: "soft_play"},
	{phrases: []string{"decoration", "decor", "tableware"}, model: ModelPerChildWithBuffer, variant: "decorations"},
	{phrases: []string{"catering", "lunchbox", "lunch box", "buffet"}, model: ModelPerChild, variant: "catering"},
	{phrases: []string{"cake", "cupcake"}, model: ModelLeadBasedPerUnit, variant: "cake"},
	{phrases: []string{"party bag", "goody bag"}, model: ModelLeadBasedPerUnit, variant: "party_bags"},
	{phrases: []string{"balloon"}, model: ModelLeadBasedPerUnit, variant: "balloons"},
	{phrases: []string{"sweet treat", "sweet", "candy"}, model: ModelLeadBasedPerUnit, variant: "sweet_treats"},
	{phrases: []string{"face painting", "face painter", "face paint"}, model: ModelTimeBasedHourly, variant: "face_painting"},
	{phrases: []string{"entertainment", "entertainer", "magician", "clown", "character"}, model: ModelTimeBasedHourly, variant: "entertainment"},
}

// Classify decides the pricing model for an offering. A non-empty override
// short-circuits inference: it may be a model tag or category text. With no
// override the serviceType, category, subcategory, name and description
// fields are tried in that order. Classify always returns a classification.
func Classify(offering *SupplierOffering, override string) Classification {
	if override != "" {
		return classifyOverride(override)
	}

	if offering == nil {
		return classificationFor(ModelLeadBasedFlat, "")
	}

	fields := []string{
		offering.ServiceType,
		offering.Category,
		offering.Subcategory,
		offering.Name + " " + offering.Description,
	}
	for _, field := range fields {
		if rule, ok := matchRule(field); ok {
			return classificationFor(rule.model, rule.variant)
		}
	}

	return classificationFor(ModelLeadBasedFlat, "")
}

func classifyOverride(override string) Classification {
	if m := Model(strings.ToLower(strings.TrimSpace(override))); m.Valid() {
		return classificationFor(m, "")
	}
	if rule, ok := matchRule(override); ok {
		return classificationFor(rule.model, rule.variant)
	}
	return classificationFor(ModelLeadBasedFlat, "")
}

func classificationFor(model Model, variant string) Classification {
	c := Classification{Model: model, Variant: variant}

	switch model {
	case ModelLeadBasedFlat, ModelLeadBasedPerUnit, ModelPerChild, ModelPerChildWithBuffer:
		c.IsLeadBased = true
	case ModelTimeBasedHourly, ModelVenueComposite:
		c.IsTimeBased = true
	case ModelMultiSelect:
	}

	return c
}

func matchRule(text string) (keywordRule, bool) {
	words := splitWords(text)
	if len(words) == 0 {
		return keywordRule{}, false
	}

	for _, rule := range keywordRules {
		for _, phrase := range rule.phrases {
			if containsPhrase(words, strings.Fields(phrase)) {
				return rule, true
			}
		}
	}
	return keywordRule{}, false
}

func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsPhrase matches whole words, allowing a plural on each word, so
// "cakes" matches "cake" but "halloween" does not match "hall".
func containsPhrase(words, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(words) {
		return false
	}

	for start := 0; start+len(phrase) <= len(words); start++ {
		matched := true
		for i, p := range phrase {
			if !wordMatches(words[start+i], p) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

func wordMatches(word, keyword string) bool {
	return word == keyword || word == keyword+"s" || word == keyword+"es"
}
