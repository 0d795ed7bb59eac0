// Package cli is the go-registry command line: serve a registry over HTTP,
// or print what a values file would register.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. version is injected via ldflags.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "go-registry",
		Short:         "Type- and name-keyed service registry",
		Long:          `go-registry builds a service registry from providers and a YAML values file and serves a read-only view of it over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newInspectCmd())
	return root
}

// Execute runs the root command against os.Args.
func Execute(version string) error {
	root := NewRootCmd(version)
	root.SetOut(os.Stdout)
	return root.Execute()
}
