package main

import (
	"fmt"

	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/spf13/cobra"
)

// Types lists the type catalog.
var Types SubCommand

func init() {
	Types.Cmd = &cobra.Command{
		Use:   "types",
		Short: "List the type ids assigned to datatypes and language tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Types.Conf, func(e *env) error {
				table := newTable(cmd.OutOrStdout(), "id", "class", "kind", "name")
				for _, entry := range e.catalog.Entries() {
					kind, name := "datatype", entry.Datatype
					if entry.Language != "" {
						kind, name = "language", entry.Language
					}
					class := rdf.StorageClassOf(entry.ID).String()
					table.Append([]string{fmt.Sprintf("%#x", uint32(entry.ID)), class, kind, name})
				}
				return table.Render()
			})
		},
	}
	Types.EnvPrefix = "RDFTERM_TYPES"
}
