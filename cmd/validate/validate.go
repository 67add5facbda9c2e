// Package validate handles the format validation command
package validate

import (
	"fmt"

	"fjacquet/pacs2mt/cmd/common"
	"fjacquet/pacs2mt/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a file is a pacs.008 credit transfer",
	Long:  `Check that an XML file is a pacs.008 FIToFICstmrCdtTrf message carrying a CdtTrfTxInf transaction.`,
	RunE:  validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if err := common.RequireInput(root.SharedFlags.Input); err != nil {
		return err
	}

	if err := common.ValidateFile(c.GetConverter(), root.SharedFlags.Input, root.Log); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid pacs.008 credit transfer\n", root.SharedFlags.Input)
	return err
}
