// Package convert handles the pacs.008 to MT103 conversion command
package convert

import (
	"fjacquet/pacs2mt/cmd/common"
	"fjacquet/pacs2mt/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a pacs.008 file to MT103",
	Long: `Convert an ISO 20022 pacs.008 credit transfer into the text block of a
SWIFT MT103 message. Without --output the message is printed.`,
	RunE: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	return common.ProcessFileWithError(
		common.CommandContext(cmd),
		c.GetConverter().WithOutput(cmd.OutOrStdout()),
		root.SharedFlags.Input,
		root.SharedFlags.Output,
		root.SharedFlags.Validate,
		root.Log,
	)
}
