package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/pricing"
)

// Scenario is the quote input file: one offering and the form state to
// price it against.
type Scenario struct {
	Offering   pricing.SupplierOffering `json:"offering"`
	Party      pricing.PartyContext     `json:"party"`
	Selections pricing.Selections       `json:"selections"`
}

func newQuoteCmd() *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a scenario file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := loadScenario(file)
			if err != nil {
				return err
			}

			service := domain.NewQuoteService(domain.NewInMemoryOfferingStore(), nil)
			result := service.QuoteOffering(cmd.Context(), &scenario.Offering, scenario.Party, scenario.Selections)

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), result)
			case "text":
				return writeText(cmd.OutOrStdout(), &scenario.Offering, result)
			default:
				return fmt.Errorf("unknown format %q (want json or text)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario JSON file (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func loadScenario(path string) (*Scenario, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var scenario Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &scenario, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func writeText(w io.Writer, offering *pricing.SupplierOffering, result pricing.PricingResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", offering.Name, result.Classification.Model)
	if result.IsZero() {
		b.WriteString("  nothing to charge yet\n")
	} else {
		fmt.Fprintf(&b, "  package:  %s\n", result.PackagePrice)
		fmt.Fprintf(&b, "  add-ons:  %s\n", result.AddonsTotalPrice)
		if !result.DeliveryFee.IsZero() {
			fmt.Fprintf(&b, "  delivery: %s\n", result.DeliveryFee)
		}
		if !result.ExtrasPrice.IsZero() {
			fmt.Fprintf(&b, "  extras:   %s\n", result.ExtrasPrice)
		}
		if info := result.PricingInfo; info != nil {
			if len(info.Premiums) > 0 {
				fmt.Fprintf(&b, "  premiums: %s\n", strings.Join(info.Premiums, ", "))
			}
			if len(info.Adjustments) > 0 {
				fmt.Fprintf(&b, "  adjusted: %s\n", strings.Join(info.Adjustments, ", "))
			}
			if info.BufferCount > 0 {
				fmt.Fprintf(&b, "  buffer:   %d spare in a pack of %d\n", info.BufferCount, info.PackSize)
			}
		}
	}
	fmt.Fprintf(&b, "  total:    %s\n", result.TotalPrice)

	_, err := io.WriteString(w, b.String())
	return err
}
