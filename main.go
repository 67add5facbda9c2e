// Command pacs2mt converts ISO 20022 pacs.008 credit transfers into SWIFT
// MT103 text blocks.
package main

import (
	"context"
	"fmt"
	"os"

	configcmd "fjacquet/pacs2mt/cmd/config"
	"fjacquet/pacs2mt/cmd/convert"
	"fjacquet/pacs2mt/cmd/inspect"
	"fjacquet/pacs2mt/cmd/root"
	"fjacquet/pacs2mt/cmd/serve"
	"fjacquet/pacs2mt/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(inspect.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
