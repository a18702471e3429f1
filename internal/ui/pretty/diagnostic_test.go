package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/internal/ui/pretty"
	"github.com/yaklabco/flexar/pkg/calc"
	"github.com/yaklabco/flexar/pkg/diag"
)

func TestFormatDiagnostic_PlainMatchesRender(t *testing.T) {
	t.Parallel()

	_, err := calc.Run("example.fx", "let total = (1 + 2;", nil)
	d, ok := diag.AsDiagnostic(err)
	require.True(t, ok)

	styles := pretty.NewStyles(false)
	assert.Equal(t, diag.Render(d), styles.FormatDiagnostic(d, 0))
	assert.Equal(t, diag.Renderer{LineLimit: 3}.Render(d), styles.FormatDiagnostic(d, 3))
}

func TestFormatLanguageHint(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t,
		"hint: main.fx looks like Go, not a calculator program\n",
		styles.FormatLanguageHint("main.fx", "Go"))
}

func TestFormatFileError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t,
		"a.fx: error: permission denied\n",
		styles.FormatFileError("a.fx", errors.New("permission denied")))
}

func TestFormatTemplate(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "variable `{0}` doesn't exist", styles.FormatTemplate(calc.ErrUnknownVariable))
	assert.Equal(t, "unexpected end of input", styles.FormatTemplate(diag.UnexpectedEOF))
}

func TestFormatCatalogTable(t *testing.T) {
	t.Parallel()

	catalog := diag.NewCatalog("demo",
		diag.Define("X1", "Cat", "found `", "`"),
		diag.Define("X22", "Other", "plain"),
	)

	want := "CODE  CATEGORY  MESSAGE\n" +
		"===========================\n" +
		"demo\n" +
		"X1    Cat       found `{0}`\n" +
		"X22   Other     plain\n" +
		"===========================\n"

	assert.Equal(t, want, pretty.NewStyles(false).FormatCatalogTable(catalog))
}

func TestFormatCatalogTable_Sections(t *testing.T) {
	t.Parallel()

	out := pretty.NewStyles(false).FormatCatalogTable(diag.Builtin, calc.Errors)

	assert.Contains(t, out, "flexar\n")
	assert.Contains(t, out, "flexcalc\n")
	assert.Contains(t, out, "LX001")
	assert.Contains(t, out, "RT001")
	assert.Contains(t, out, "variable `{0}` doesn't exist")
}
