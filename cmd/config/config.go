// Package configcmd prints the effective configuration
package configcmd

import (
	"fjacquet/pacs2mt/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Print the configuration resulting from defaults, config.yaml and PACS2MT_ environment variables, as YAML.`,
	RunE:  configFunc,
}

func configFunc(cmd *cobra.Command, args []string) error {
	out, err := root.GetConfig().ToYAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
