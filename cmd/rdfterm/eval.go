package main

import (
	"fmt"

	"github.com/aleksaelezovic/rdfterm/pkg/sparql/evaluator"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Eval applies an operator to terms.
var Eval SubCommand

func init() {
	Eval.Cmd = &cobra.Command{
		Use:   "eval OPERATOR [TERM...]",
		Short: "Apply an expression operator to terms",
		Long: `Apply an expression operator to terms. OPERATOR is a name such as
add or langMatches, or a symbol such as + or <=. An argument of UNDEF
passes an unbound value. An absent result is reported with its reason.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if Eval.Conf.GetBool("list") {
				return listOperators(cmd)
			}
			if len(args) == 0 {
				return errors.New("missing operator")
			}
			op, err := evaluator.ParseOperator(args[0])
			if err != nil {
				return err
			}
			if n := len(args) - 1; n != op.Arity() {
				return errors.Errorf("%s takes %d arguments, got %d", op, op.Arity(), n)
			}
			return withEnv(Eval.Conf, func(e *env) error {
				operands, err := e.terms(args[1:], true)
				if err != nil {
					return err
				}
				result, err := evaluator.NewEvaluator(e.ordering()).Apply(op, operands...)
				out := cmd.OutOrStdout()
				if err != nil {
					fmt.Fprintf(out, "%s (%v)\n", color.YellowString("absent"), err)
					return nil
				}
				fmt.Fprintln(out, e.catalog.Format(result))
				return nil
			})
		},
	}
	Eval.Cmd.Flags().Bool("list", false, "List the operators and exit.")
	Eval.EnvPrefix = "RDFTERM_EVAL"
}

func listOperators(cmd *cobra.Command) error {
	table := newTable(cmd.OutOrStdout(), "operator", "arity")
	for _, op := range evaluator.Operators() {
		table.Append([]string{op.String(), fmt.Sprint(op.Arity())})
	}
	return table.Render()
}
