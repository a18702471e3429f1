package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/flexar/internal/logging"
	"github.com/yaklabco/flexar/internal/ui/pretty"
	"github.com/yaklabco/flexar/pkg/calc"
	"github.com/yaklabco/flexar/pkg/catalogdoc"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/fsutil"
)

// Error index formats.
const (
	indexText     = "text"
	indexJSON     = "json"
	indexMarkdown = "markdown"
	indexHTML     = "html"
)

type errorsFlags struct {
	format string
	output string
	title  string
}

// templateInfo represents a catalog entry in JSON output.
type templateInfo struct {
	Catalog  string `json:"catalog"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Args     int    `json:"args"`
	Doc      string `json:"doc,omitempty"`
}

// catalogs lists every catalog flexcalc can report from.
func catalogs() []*diag.Catalog {
	return []*diag.Catalog{diag.Builtin, calc.Errors}
}

func newErrorsCommand(sess *session) *cobra.Command {
	flags := &errorsFlags{}

	cmd := &cobra.Command{
		Use:   "errors [code]",
		Short: "List error codes or explain one",
		Long: `List every diagnostic flexcalc can report, or explain a single code.

Examples:
  flexcalc errors                                   # Table of all codes
  flexcalc errors E007                              # Explain one code
  flexcalc errors --format html --output errors.html`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return explainCode(cmd, sess, args[0])
			}
			return runErrors(cmd, sess, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", indexText, "output format: text, json, markdown, html")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write to a file instead of stdout")
	cmd.Flags().StringVar(&flags.title, "title", catalogdoc.DefaultTitle, "title of markdown and html output")

	return cmd
}

func runErrors(cmd *cobra.Command, sess *session, flags *errorsFlags) error {
	ctx := cmd.Context()
	colorEnabled := flags.output == "" && pretty.IsColorEnabled(string(sess.cfg.Color), cmd.OutOrStdout())

	var content []byte
	switch strings.ToLower(flags.format) {
	case indexText:
		content = []byte(pretty.NewStyles(colorEnabled).FormatCatalogTable(catalogs()...))
	case indexJSON:
		data, err := catalogJSON()
		if err != nil {
			return err
		}
		content = data
	case indexMarkdown:
		content = catalogdoc.New(flags.title).Markdown(catalogs()...)
	case indexHTML:
		data, err := catalogdoc.New(flags.title).HTML(ctx, catalogs()...)
		if err != nil {
			return err
		}
		content = data
	default:
		return usageErrorf("invalid format %q: must be text, json, markdown or html", flags.format)
	}

	if flags.output == "" {
		if _, err := cmd.OutOrStdout().Write(content); err != nil {
			return fmt.Errorf("write error index: %w", err)
		}
		return nil
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, content, fsutil.DefaultFileMode)
	if err != nil {
		return withExitCode(ExitIOError, err)
	}

	logger := logging.NewInteractive(cmd.OutOrStdout())
	if changed {
		logger.Info("wrote error index", logging.FieldOutput, flags.output)
	} else {
		logger.Info("error index is up to date", logging.FieldOutput, flags.output)
	}
	return nil
}

func catalogJSON() ([]byte, error) {
	var infos []templateInfo
	for _, catalog := range catalogs() {
		for _, tmpl := range catalog.Templates() {
			infos = append(infos, templateInfo{
				Catalog:  catalog.Name(),
				Code:     tmpl.Code,
				Category: tmpl.Category,
				Message:  tmpl.Placeholder(),
				Args:     tmpl.Arity() - 1,
				Doc:      tmpl.Doc,
			})
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// explainCode prints one template and its documentation.
func explainCode(cmd *cobra.Command, sess *session, code string) error {
	for _, catalog := range catalogs() {
		tmpl, ok := catalog.Get(strings.ToUpper(code))
		if !ok {
			continue
		}

		styles := pretty.NewStyles(pretty.IsColorEnabled(string(sess.cfg.Color), cmd.OutOrStdout()))

		var out strings.Builder
		fmt.Fprintf(&out, "%s [%s]: %s\n", tmpl.Code, tmpl.Category, styles.FormatTemplate(tmpl))
		if doc := strings.TrimSpace(tmpl.Doc); doc != "" {
			fmt.Fprintf(&out, "\n%s\n", doc)
		}
		if _, err := fmt.Fprint(cmd.OutOrStdout(), out.String()); err != nil {
			return fmt.Errorf("write explanation: %w", err)
		}
		return nil
	}
	return usageErrorf("unknown error code %q; run 'flexcalc errors' to list codes", code)
}
