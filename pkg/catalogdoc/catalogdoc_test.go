package catalogdoc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/calc"
	"github.com/yaklabco/flexar/pkg/catalogdoc"
	"github.com/yaklabco/flexar/pkg/diag"
)

func demoCatalog() *diag.Catalog {
	return diag.NewCatalog("demo",
		diag.Define("X001", "bad thing", "found `", "` here").WithDoc("Explains the bad thing."),
		diag.Define("X002", "pipe | category", "plain"),
	)
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	got := string(catalogdoc.New("").Markdown(demoCatalog()))

	want := "# Error index\n\n" +
		"| Code | Category | Message |\n" +
		"| --- | --- | --- |\n" +
		"| [X001](#x001) | bad thing | found `{0}` here |\n" +
		"| [X002](#x002) | pipe \\| category | plain |\n" +
		"\n## demo\n" +
		"\n### X001: bad thing {#x001}\n\n" +
		"> found `{0}` here\n" +
		"\nExplains the bad thing.\n" +
		"\n### X002: pipe | category {#x002}\n\n" +
		"> plain\n"
	assert.Equal(t, want, got)
}

func TestHTML(t *testing.T) {
	t.Parallel()

	page, err := catalogdoc.New("Calculator <errors>").HTML(context.Background(), demoCatalog())
	require.NoError(t, err)

	out := string(page)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>\n"))
	assert.Contains(t, out, "<title>Calculator &lt;errors&gt;</title>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<a href="#x001">X001</a>`)
	assert.Contains(t, out, `id="x001"`)
	assert.Contains(t, out, "<code>{0}</code>")
	assert.Contains(t, out, "<p>Explains the bad thing.</p>")
}

func TestHTML_Catalogs(t *testing.T) {
	t.Parallel()

	page, err := catalogdoc.New("").HTML(context.Background(), diag.Builtin, calc.Errors)
	require.NoError(t, err)

	out := string(page)
	for _, code := range []string{"lx001", "pa003", "e001", "e010", "rt001"} {
		assert.Contains(t, out, `id="`+code+`"`)
	}
	assert.Contains(t, out, "<pre><code>error[non-existent variable]")
}

func TestHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalogdoc.New("").HTML(ctx, demoCatalog())
	require.ErrorIs(t, err, context.Canceled)
}
