// Package inspect prints the normalized payment record of a pacs.008 file
package inspect

import (
	"fmt"
	"io"

	"fjacquet/pacs2mt/cmd/common"
	"fjacquet/pacs2mt/cmd/root"
	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/fileutils"
	"fjacquet/pacs2mt/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format overrides inspect.format from the configuration when set.
var Format string

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the payment fields extracted from a pacs.008 file",
	Long: `Show the cleaned payment record extracted from a pacs.008 credit transfer,
before it is rendered as MT103. Output is YAML or CSV.`,
	RunE: inspectFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", "", "Output format: yaml or csv (default from configuration)")
}

func inspectFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if err := common.RequireInput(root.SharedFlags.Input); err != nil {
		return err
	}

	format := Format
	if format == "" {
		format = c.GetConfig().Inspect.Format
	}

	f, err := fileutils.OpenFile(root.SharedFlags.Input)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	payment, err := c.GetConverter().Normalize(common.CommandContext(cmd), f)
	if err != nil {
		return err
	}

	return Render(cmd.OutOrStdout(), payment, format)
}

// inspection is the YAML view of a payment: the record plus the amount read
// back as a decimal number.
type inspection struct {
	models.Payment `yaml:",inline"`
	AmountValue    string `yaml:"amount_value"`
}

// Render writes payment to w in the given format.
func Render(w io.Writer, payment models.Payment, format string) error {
	switch format {
	case config.InspectFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		view := inspection{Payment: payment, AmountValue: payment.AmountValue()}
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case config.InspectFormatCSV:
		rows := []models.PaymentRow{payment.ToRow()}
		if err := gocsv.Marshal(&rows, w); err != nil {
			return fmt.Errorf("failed to encode CSV: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (must be 'yaml' or 'csv')", format)
	}
}
