// Package serve runs the HTTP conversion API
package serve

import (
	"os"
	"os/signal"
	"syscall"

	"fjacquet/pacs2mt/cmd/common"
	"fjacquet/pacs2mt/cmd/root"

	"github.com/spf13/cobra"
)

var (
	// Address overrides server.address when set.
	Address string
	// Port overrides server.port when set.
	Port int
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API over HTTP",
	Long: `Start an HTTP server exposing POST /api/convert and GET /healthz.
The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVar(&Address, "address", "", "Listen address (default from configuration)")
	Cmd.Flags().IntVarP(&Port, "port", "p", 0, "Listen port (default from configuration)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	serverCfg := c.GetConfig().Server
	if Address != "" {
		serverCfg.Address = Address
	}
	if Port != 0 {
		serverCfg.Port = Port
	}

	ctx, stop := signal.NotifyContext(common.CommandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.NewServer(serverCfg, root.Version).Run(ctx)
}
