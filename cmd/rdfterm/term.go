package main

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/aleksaelezovic/rdfterm/pkg/encoding"
	"github.com/aleksaelezovic/rdfterm/pkg/rdf"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Parse shows how terms are classified and what value they carry.
var Parse SubCommand

// Compare orders two terms.
var Compare SubCommand

// Sort prints terms in order.
var Sort SubCommand

// Hash prints term hashes.
var Hash SubCommand

// Encode prints encoded forms of terms.
var Encode SubCommand

// Decode reads wire encoded terms.
var Decode SubCommand

func init() {
	Parse.Cmd = &cobra.Command{
		Use:   "parse TERM...",
		Short: "Parse terms and show their type, storage class and value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Parse.Conf, func(e *env) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				table := newTable(cmd.OutOrStdout(), "term", "text form", "type", "class", "value")
				for _, t := range terms {
					table.Append([]string{
						e.catalog.Format(t),
						encoding.FormatText(t),
						t.TypeID().String(),
						t.StorageClass().String(),
						payloadString(t),
					})
				}
				return table.Render()
			})
		},
	}
	Parse.EnvPrefix = "RDFTERM_PARSE"

	Compare.Cmd = &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two terms under the index ordering",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Compare.Conf, func(e *env) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				a, b := terms[0], terms[1]
				c := e.ordering().Compare(a, b)
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s %s\n", e.catalog.Format(a), relation(c), e.catalog.Format(b))
				fmt.Fprintf(out, "compatible: %s\n", yesNo(rdf.Compatible(a.TypeID(), b.TypeID())))
				fmt.Fprintf(out, "same hash:  %s\n", yesNo(rdf.Hash(a) == rdf.Hash(b)))
				return nil
			})
		},
	}
	Compare.EnvPrefix = "RDFTERM_COMPARE"

	Sort.Cmd = &cobra.Command{
		Use:   "sort TERM...",
		Short: "Print terms in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Sort.Conf, func(e *env) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				order := e.ordering()
				sort.SliceStable(terms, func(i, j int) bool { return order.Less(terms[i], terms[j]) })
				if Sort.Conf.GetBool("reverse") {
					for i, j := 0, len(terms)-1; i < j; i, j = i+1, j-1 {
						terms[i], terms[j] = terms[j], terms[i]
					}
				}
				for _, t := range terms {
					fmt.Fprintln(cmd.OutOrStdout(), e.catalog.Format(t))
				}
				return nil
			})
		},
	}
	Sort.Cmd.Flags().Bool("reverse", false, "Print in descending order.")
	Sort.EnvPrefix = "RDFTERM_SORT"

	Hash.Cmd = &cobra.Command{
		Use:   "hash TERM...",
		Short: "Print the hash and index key of terms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Hash.Conf, func(e *env) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				table := newTable(cmd.OutOrStdout(), "term", "hash", "key")
				for _, t := range terms {
					key := encoding.TermKey(t)
					table.Append([]string{e.catalog.Format(t), hashString(rdf.Hash(t)), hex.EncodeToString(key[:])})
				}
				return table.Render()
			})
		},
	}
	Hash.EnvPrefix = "RDFTERM_HASH"

	Encode.Cmd = &cobra.Command{
		Use:   "encode TERM...",
		Short: "Print terms in an encoded form",
		Long: `Print terms in an encoded form. --format selects
  text    the textual literal syntax 'text'^^hexid
  wire    the binary wire form, hex encoded
  record  the storage record, hex encoded
  sort    the sort key under --locale, hex encoded`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Encode.Conf, func(e *env) error {
				terms, err := e.terms(args, false)
				if err != nil {
					return err
				}
				format := Encode.Conf.GetString("format")
				enc := encoding.NewTermEncoder(Encode.Conf.GetString("locale"))
				for _, t := range terms {
					var line string
					switch format {
					case "text":
						line = encoding.FormatText(t)
					case "wire":
						line = hex.EncodeToString(encoding.MarshalBinary(t))
					case "record":
						line = hex.EncodeToString(enc.EncodeTerm(t))
					case "sort":
						line = hex.EncodeToString(enc.SortKey(t))
					default:
						return errors.Errorf("unknown format %q", format)
					}
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	}
	Encode.Cmd.Flags().String("format", "wire", "Output format: text, wire, record or sort.")
	Encode.EnvPrefix = "RDFTERM_ENCODE"

	Decode.Cmd = &cobra.Command{
		Use:   "decode HEX...",
		Short: "Decode hex encoded wire or record forms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(Decode.Conf, func(e *env) error {
				record := Decode.Conf.GetBool("record")
				for _, arg := range args {
					t, err := decodeHex(arg, record)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", encoding.FormatText(t), e.catalog.Format(t))
				}
				return nil
			})
		},
	}
	Decode.Cmd.Flags().Bool("record", false, "Input is a storage record instead of the wire form.")
	Decode.EnvPrefix = "RDFTERM_DECODE"
}

func decodeHex(s string, record bool) (*rdf.Term, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", s)
	}
	if record {
		return encoding.NewTermDecoder().DecodeTerm(data)
	}
	return encoding.UnmarshalBinary(data)
}
