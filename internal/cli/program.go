package cli

import (
	"bufio"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/pkg/calc"
)

const programArgsUsage = " [file]"

func addFormatFlag(cmd *cobra.Command, sess *session) {
	cmd.Flags().StringVar(&sess.flags.format, "format", "", "diagnostic format: text, json")
}

func newRunCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run" + programArgsUsage,
		Short: "Evaluate a program and print each expression's value",
		Long: `Evaluate a calculator program. The value of every expression statement
is printed on its own line; let statements bind variables silently.

Examples:
  flexcalc run example.fx
  echo 'let x = 4; x * 2;' | flexcalc run`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := sess.readProgram(cmd, args)
			if err != nil {
				return err
			}

			start := time.Now()
			prog, err := calc.Compile(file, calc.WithLogger(sess.logger))
			if err != nil {
				return sess.fail(cmd, err)
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			results, execErr := calc.NewInterpreter(out).Exec(prog)
			if err := out.Flush(); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			if execErr != nil {
				return sess.fail(cmd, execErr)
			}

			sess.logger.Debug("evaluated",
				logging.FieldPath, file.Name(),
				logging.FieldStatements, len(prog),
				"results", len(results),
				logging.FieldDuration, time.Since(start),
			)
			return nil
		},
	}
	addFormatFlag(cmd, sess)
	return cmd
}

func newLexCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lex" + programArgsUsage,
		Short: "Print the tokens of a program",
		Long: `Tokenize a calculator program and print one token per line as
"<start>-<end>  <kind>  <text>", with positions as line:column.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := sess.readProgram(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := calc.Tokenize(file, calc.WithLogger(sess.logger))
			if err != nil {
				return sess.fail(cmd, err)
			}
			sess.logger.Debug("lexed", logging.FieldPath, file.Name(), logging.FieldTokens, len(tokens))

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, tok := range tokens {
				start, end := tok.Pos.Start, tok.Pos.End
				fmt.Fprintf(out, "%d:%d-%d:%d\t%s\t%s\n", start.Line, start.Col, end.Line, end.Col, tok.Value.Kind, tok.Value)
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("write tokens: %w", err)
			}
			return nil
		},
	}
	addFormatFlag(cmd, sess)
	return cmd
}

func newParseCommand(sess *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse" + programArgsUsage,
		Short: "Print the syntax tree of a program",
		Long: `Parse a calculator program and print each statement as an
s-expression, for example "(let a (+ 1 (* 2 3)))".`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := sess.readProgram(cmd, args)
			if err != nil {
				return err
			}

			prog, err := calc.Compile(file, calc.WithLogger(sess.logger))
			if err != nil {
				return sess.fail(cmd, err)
			}
			sess.logger.Debug("parsed", logging.FieldPath, file.Name(), logging.FieldStatements, len(prog))

			if _, err := fmt.Fprint(cmd.OutOrStdout(), prog.String()); err != nil {
				return fmt.Errorf("write tree: %w", err)
			}
			return nil
		},
	}
	addFormatFlag(cmd, sess)
	return cmd
}
