package calc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/calc"
	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/source"
)

const exampleProgram = `6 / 1 + 2 * 3;
(1 + 2) * 3 + 4 / 5 - -3;
--5;
1.2 * 4.29 / 36; // yoo even comments work :D
-12 + 34 / -3.4;
let a-value = 23 * 4;
a-value - 92;
`

func TestRun_ExampleProgram(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	results, err := calc.Run("example.fx", exampleProgram, &out)
	require.NoError(t, err)

	want := []float64{12, 12.8, 5, 1.2 * (4.29 / 36), -22, 0}
	require.Len(t, results, len(want))
	for idx := range want {
		assert.InDelta(t, want[idx], results[idx], 1e-9, "statement %d", idx)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(want))
}

func TestRun_Output(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, err := calc.Run("example.fx", "1 + 2;\nlet x = 4;\nx * 2;\n7 / 2;", &out)
	require.NoError(t, err)
	assert.Equal(t, "3\n8\n3.5\n", out.String())
}

func TestRun_RightAssociative(t *testing.T) {
	t.Parallel()

	results, err := calc.Run("example.fx", "10 - 4 - 3; 8 / 4 / 2;", nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 4}, results)
}

func TestRun_TrailingDashIsMinus(t *testing.T) {
	t.Parallel()

	results, err := calc.Run("example.fx", "let x = 5; x- 1; x-+1; x-(2); let x-1 = 7; x-1;", nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 3, 7}, results)
}

func TestRun_EmptyPrograms(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "\n\n", "// only a comment", "  // trailing\n"} {
		results, err := calc.Run("example.fx", text, nil)
		require.NoError(t, err, "%q", text)
		assert.Empty(t, results)
	}
}

func TestRun_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		code    string
		message string
		at      string
	}{
		{name: "unknown variable", input: "b * 2;", code: "RT001", message: "variable `b` doesn't exist", at: "example.fx:1:1"},
		{name: "unclosed parentheses", input: "(1 + 2;", code: "E007", message: "expected `)` to close parentheses", at: "example.fx:1:7"},
		{name: "unexpected character", input: "1 + $;", code: "E001", message: "character `$` is unexpected", at: "example.fx:1:5"},
		{name: "missing semicolon", input: "1 + 2", code: "E010", message: "expected `;` or operation, found `end of input`.", at: "example.fx:1:6"},
		{name: "missing assignment", input: "let x 5;", code: "E009", message: "expected `=`, found `5`.", at: "example.fx:1:7"},
		{name: "missing identifier", input: "let = 5;", code: "E008", message: "expected ident, found `=`.", at: "example.fx:1:5"},
		{name: "missing expression", input: "let a = ;", code: "E004", message: "expected expr, found `;`.", at: "example.fx:1:9"},
		{name: "missing operand", input: "-;", code: "E003", message: "expected number, found `;`.", at: "example.fx:1:2"},
		{name: "unexpected token", input: ") ;", code: "E006", message: "unexpected token `)`.", at: "example.fx:1:1"},
		{name: "empty parentheses", input: "();", code: "E004", message: "expected expr, found `)`.", at: "example.fx:1:2"},
		{name: "number overflow", input: "99999999999;", code: "LX003", message: "`99999999999` is not a valid number", at: "example.fx:1:1"},
		{name: "second statement", input: "1;\n2 2;", code: "E010", message: "expected `;` or operation, found `2`.", at: "example.fx:2:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := calc.Run("example.fx", tt.input, nil)
			require.Error(t, err)

			d, ok := diag.AsDiagnostic(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.at, d.Pos.String())
		})
	}
}

func TestRun_RenderedDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{
			input: "b * 2;",
			want: "error[non-existent variable]: variable `b` doesn't exist\n" +
				" --> example.fx:1:1\n" +
				"1 | b * 2;\n" +
				"  | ^ variable `b` doesn't exist\n" +
				" <--\n",
		},
		{
			input: "(1 + 2;",
			want: "error[unclosed parentheses]: expected `)` to close parentheses\n" +
				" --> example.fx:1:7\n" +
				"1 | (1 + 2;\n" +
				"  |       ^ expected `)` to close parentheses\n" +
				" <--\n",
		},
	}

	for _, tt := range tests {
		_, err := calc.Run("example.fx", tt.input, nil)
		d, ok := diag.AsDiagnostic(err)
		require.True(t, ok)
		assert.Equal(t, tt.want, diag.Render(d))
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "let binding", input: "let a-value = 1.5; // note\n", want: "let a-value = 1.5 ;"},
		{name: "minus between identifiers", input: "a - b", want: "a - b"},
		{name: "dash inside identifier", input: "x-1", want: "x-1"},
		{name: "dash before space", input: "x- 1", want: "x - 1"},
		{name: "dash before operator", input: "x-+1", want: "x - + 1"},
		{name: "dash at end of input", input: "x-", want: "x -"},
		{name: "division is not a comment", input: "6/2", want: "6 / 2"},
		{name: "keyword prefix", input: "letter", want: "letter"},
		{name: "operators", input: "(+-*/=;)", want: "( + - * / = ; )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := calc.Tokenize(source.NewFileContent("example.fx", tt.input))
			require.NoError(t, err)

			parts := make([]string, len(tokens))
			for idx, value := range lex.Values(tokens) {
				parts[idx] = value.String()
			}
			assert.Equal(t, tt.want, strings.Join(parts, " "))
		})
	}
}

func TestTokenize_Kinds(t *testing.T) {
	t.Parallel()

	tokens, err := calc.Tokenize(source.NewFileContent("example.fx", "let a = 1.5;"))
	require.NoError(t, err)

	kinds := make([]calc.Kind, len(tokens))
	for idx, tok := range tokens {
		kinds[idx] = tok.Value.Kind
	}
	assert.Equal(t, []calc.Kind{calc.Let, calc.Ident, calc.EQ, calc.Float, calc.Semi}, kinds)
	assert.Equal(t, "example.fx:1:9", tokens[3].Pos.Start.String())
	assert.Equal(t, "example.fx:1:11", tokens[3].Pos.End.String())
}

func TestCompile_Tree(t *testing.T) {
	t.Parallel()

	prog, err := calc.Compile(source.NewFileContent("example.fx",
		"6 / 1 + 2 * 3;\nlet a = -(1);\n--x;"))
	require.NoError(t, err)

	assert.Equal(t, "(+ (/ 6 1) (* 2 3))\n(let a (neg 1))\n(neg (neg x))\n", prog.String())
	require.Len(t, prog, 3)
	assert.Equal(t, "example.fx:2:1", prog[1].Pos.Start.String())
	assert.Equal(t, "example.fx:2:13", prog[1].Pos.End.String())
}

func TestInterpreter_KeepsVariables(t *testing.T) {
	t.Parallel()

	in := calc.NewInterpreter(nil)

	prog, err := calc.Compile(source.NewFileContent("a.fx", "let x = 2;"))
	require.NoError(t, err)
	_, err = in.Exec(prog)
	require.NoError(t, err)

	prog, err = calc.Compile(source.NewFileContent("b.fx", "x * 21;"))
	require.NoError(t, err)
	results, err := in.Exec(prog)
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, results)
	assert.Equal(t, map[string]float64{"x": 2}, in.Vars())
}

func TestErrorsCatalog(t *testing.T) {
	t.Parallel()

	var codes []string
	for _, tmpl := range calc.Errors.Templates() {
		codes = append(codes, tmpl.Code)
		assert.NotEmpty(t, tmpl.Doc, tmpl.Code)
	}
	assert.Equal(t, []string{
		"E001", "E002", "E003", "E004", "E005", "E006",
		"E007", "E008", "E009", "E010", "RT001",
	}, codes)
}

func BenchmarkCompile(b *testing.B) {
	file := source.NewFileContent("example.fx", strings.Repeat(exampleProgram, 50))

	b.ReportAllocs()
	for b.Loop() {
		if _, err := calc.Compile(file); err != nil {
			b.Fatal(err)
		}
	}
}
