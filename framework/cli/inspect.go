package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-registry/framework/logging"
	"github.com/km-arc/go-registry/framework/registry"
	"github.com/km-arc/go-registry/framework/values"
)

type inspectOptions struct {
	values string
	json   bool
}

// inspectEntry is one row of inspect output.
type inspectEntry struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the bindings a values file produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.values, "values", "", "YAML values file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output in JSON format")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}

func runInspect(cmd *cobra.Command, opts *inspectOptions) error {
	reg, err := values.Registry(opts.values, registry.WithLogger(logging.Discard()))
	if err != nil {
		return err
	}

	var entries []inspectEntry
	for _, name := range reg.Names() {
		for _, e := range reg.Entries(name) {
			entries = append(entries, inspectEntry{Name: name, Type: registry.TypeKey(e.Type), Value: e.Supplier()})
		}
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No bindings.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tVALUE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%v\n", e.Name, e.Type, e.Value)
	}
	return w.Flush()
}
