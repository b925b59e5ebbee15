// Package cli implements the productd command line.
package cli

import (
	"context"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
)

const configFlag = "config"

var configFlags = map[string]cobraflags.Flag{
	configFlag: &cobraflags.StringFlag{
		Name:  configFlag,
		Value: "",
		Usage: "Path to a YAML config file (environment variables take precedence)",
	},
}

// NewRootCommand builds the productd command tree
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "productd",
		Short:         "Product catalogue HTTP service",
		Long:          "productd serves create, read, update and delete operations over the product table.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInitDBCommand())
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}
