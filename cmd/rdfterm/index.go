package main

import (
	"fmt"
	"os"

	"github.com/aleksaelezovic/rdfterm/internal/index"
	"github.com/aleksaelezovic/rdfterm/internal/nquads"
	"github.com/aleksaelezovic/rdfterm/internal/rdfio"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Index manages the term index in --dir.
var Index SubCommand

func init() {
	Index.Cmd = &cobra.Command{
		Use:   "index",
		Short: "Maintain and query the term index",
	}
	Index.EnvPrefix = "RDFTERM_INDEX"

	put := &cobra.Command{
		Use:   "put TERM...",
		Short: "Add terms to the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(func(e *env, idx *index.TermIndex) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				n, err := idx.Insert(terms...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added %d of %d terms\n", n, len(terms))
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete TERM...",
		Short: "Remove terms from the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(func(e *env, idx *index.TermIndex) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				n, err := idx.Delete(terms...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %d of %d terms\n", n, len(terms))
				return nil
			})
		},
	}

	scan := &cobra.Command{
		Use:   "scan",
		Short: "List indexed terms in order",
		Long: `List indexed terms in order. --from and --to bound the range
inclusively. --group lists the terms whose type is compatible with
the given term instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(func(e *env, idx *index.TermIndex) error {
				it, err := openScan(cmd, e, idx)
				if err != nil {
					return err
				}
				defer it.Close()

				limit, _ := cmd.Flags().GetInt("limit")
				table := newTable(cmd.OutOrStdout(), "#", "term", "type", "value")
				n := 0
				for it.Next() {
					if limit > 0 && n == limit {
						break
					}
					n++
					t := it.Term()
					table.Append([]string{fmt.Sprint(n), e.catalog.Format(t), t.TypeID().String(), payloadString(t)})
				}
				if err := it.Err(); err != nil {
					return err
				}
				return table.Render()
			})
		},
	}
	scan.Flags().String("from", "", "Lower bound term.")
	scan.Flags().String("to", "", "Upper bound term.")
	scan.Flags().String("group", "", "List the compatibility group of this term.")
	scan.Flags().Int("limit", 0, "Stop after this many terms. 0 lists all.")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show index statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(func(e *env, idx *index.TermIndex) error {
				count, err := idx.Count()
				if err != nil {
					return err
				}
				lsm, vlog := e.storage.Size()
				hits, misses := idx.CacheMetrics()
				table := newTable(cmd.OutOrStdout(), "stat", "value")
				table.Append([]string{"terms", humanize.Comma(count)})
				table.Append([]string{"locale", idx.Locale()})
				table.Append([]string{"lsm size", humanize.Bytes(uint64(lsm))})
				table.Append([]string{"vlog size", humanize.Bytes(uint64(vlog))})
				table.Append([]string{"cache hits", humanize.Comma(int64(hits))})
				table.Append([]string{"cache misses", humanize.Comma(int64(misses))})
				table.Append([]string{"catalog entries", humanize.Comma(int64(len(e.catalog.Entries())))})
				return table.Render()
			})
		},
	}

	load := &cobra.Command{
		Use:   "load FILE...",
		Short: "Add every term of N-Triples or N-Quads files to the index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withIndex(func(e *env, idx *index.TermIndex) error {
				for _, name := range args {
					quads, err := loadFile(cmd, name, e)
					if err != nil {
						return err
					}
					var terms []*rdf.Term
					for _, q := range quads {
						terms = append(terms, q.Terms()...)
					}
					n, err := idx.Insert(terms...)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s statements, %s new terms\n",
						name, humanize.Comma(int64(len(quads))), humanize.Comma(int64(n)))
				}
				return nil
			})
		},
	}

	load.Flags().String("content_type", "",
		"Content type of the files. Guessed from the file extension when empty.")

	Index.Cmd.AddCommand(put, del, load, scan, stats)
}

func withIndex(fn func(e *env, idx *index.TermIndex) error) error {
	return withEnv(Index.Conf, func(e *env) error {
		idx, err := e.termIndex()
		if err != nil {
			return err
		}
		return fn(e, idx)
	})
}

func openScan(cmd *cobra.Command, e *env, idx *index.TermIndex) (*index.TermIterator, error) {
	parse := func(name string) (*rdf.Term, error) {
		s, _ := cmd.Flags().GetString(name)
		if s == "" {
			return nil, nil
		}
		return e.catalog.ParseTerm(s)
	}
	group, err := parse("group")
	if err != nil {
		return nil, err
	}
	if group != nil {
		return idx.ScanGroup(group.TypeID())
	}
	lo, err := parse("from")
	if err != nil {
		return nil, err
	}
	hi, err := parse("to")
	if err != nil {
		return nil, err
	}
	return idx.Scan(lo, hi)
}

func loadFile(cmd *cobra.Command, name string, e *env) ([]nquads.Quad, error) {
	ct, _ := cmd.Flags().GetString("content_type")
	if ct == "" {
		var err error
		if ct, err = rdfio.ContentTypeForFile(name); err != nil {
			return nil, err
		}
	}
	parser, err := rdfio.NewParser(ct)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	defer f.Close()

	quads, err := parser.Parse(f, e.catalog)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", name)
	}
	return quads, nil
}
