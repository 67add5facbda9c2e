// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/pacs2mt/internal/config"
	"fjacquet/pacs2mt/internal/container"
	"fjacquet/pacs2mt/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Version is set at build time through -ldflags.
	Version = "dev"

	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any command runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pacs2mt",
		Short: "A CLI tool to convert ISO 20022 pacs.008 XML into SWIFT MT103 messages.",
		Long: `pacs2mt converts ISO 20022 pacs.008 FIToFICstmrCdtTrf credit transfers
into the text block (block 4) of a SWIFT MT103 message.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  initialize,
		PersistentPostRunE: shutdown,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.Version = Version
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input pacs.008 XML file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default: standard output)")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv(Log)

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// shutdown releases the container built by initialize.
func shutdown(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	return AppContainer.Close()
}

// GetContainer returns the application container or an error when the
// root command has not initialized it.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return AppContainer, nil
}

// GetConfig returns the loaded configuration, falling back to defaults.
func GetConfig() *config.Config {
	if AppConfig == nil {
		return config.DefaultConfig()
	}
	return AppConfig
}
