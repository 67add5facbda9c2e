package common

import (
	"context"

	"github.com/spf13/cobra"
)

// CommandContext returns the context of cmd, or a background context when
// the command was executed without one.
func CommandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
