package lex_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/diag"
	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/source"
)

type kind int

const (
	kSlash kind = iota
	kPlus
	kLParen
	kRParen
	kEE
	kEEE
	kEQ
	kDot
	kColon
	kStr
	kInt
	kFloat
)

type tok struct {
	kind kind
	text string
	num  float64
}

func lit(k kind) tok { return tok{kind: k} }

func testRules() []lex.Rule[tok] {
	return []lex.Rule[tok]{
		lex.Char('/', lit(kSlash)),
		lex.Char('+', lit(kPlus)),
		lex.Char('(', lit(kLParen)),
		lex.Char(')', lit(kRParen)),
		lex.Char('.', lit(kDot)),
		lex.Char(':', lit(kColon)),
		lex.Skip[tok](lex.OneOf(" \n\t")),
		lex.Literal("===", lit(kEEE)),
		lex.Literal("==", lit(kEE)),
		lex.Char('=', lit(kEQ)),
		lex.Detailed(lex.Is('"'), lexString),
		lex.Detailed(lex.OneOf("0123456789"), lexNumber),
	}
}

func lexString(m *lex.Match[tok]) error {
	m.Discard()
	for {
		cur, ok := m.Current()
		if !ok {
			return m.Fail(diag.UnterminatedLiteral, `"`)
		}
		if cur == '"' {
			m.Discard()
			return m.Emit(tok{kind: kStr, text: m.Text()})
		}
		m.Advance()
	}
}

func lexNumber(m *lex.Match[tok]) error {
	dot := false
	for {
		cur, ok := m.Current()
		if !ok {
			break
		}
		if cur == '.' {
			if dot {
				break
			}
			dot = true
		} else if cur < '0' || cur > '9' {
			break
		}
		m.Advance()
	}

	if dot {
		value, err := strconv.ParseFloat(m.Text(), 64)
		if err != nil {
			return m.FailAt(m.Position(), diag.InvalidNumber, m.Text())
		}
		return m.Emit(tok{kind: kFloat, num: value})
	}
	value, err := strconv.ParseUint(m.Text(), 10, 32)
	if err != nil {
		return m.FailAt(m.Position(), diag.InvalidNumber, m.Text())
	}
	return m.Emit(tok{kind: kInt, num: float64(value)})
}

func lexValues(t *testing.T, text string) []tok {
	t.Helper()
	tokens, err := lex.New(testRules()).Lex("example", text)
	require.NoError(t, err)
	return lex.Values(tokens)
}

func TestLexer_TokenStreams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{
			name:  "single characters",
			input: "+  /\n(  .:) /",
			want: []tok{
				lit(kPlus), lit(kSlash), lit(kLParen), lit(kDot),
				lit(kColon), lit(kRParen), lit(kSlash),
			},
		},
		{
			name:  "literal sequences by declaration order",
			input: "=  ==\n=:  ====.==   =====",
			want: []tok{
				lit(kEQ), lit(kEE), lit(kEQ), lit(kColon), lit(kEEE),
				lit(kEQ), lit(kDot), lit(kEE), lit(kEEE), lit(kEE),
			},
		},
		{
			name:  "string",
			input: "+  /\n:( \"hello world?\"). /",
			want: []tok{
				lit(kPlus), lit(kSlash), lit(kColon), lit(kLParen),
				{kind: kStr, text: "hello world?"},
				lit(kRParen), lit(kDot), lit(kSlash),
			},
		},
		{
			name:  "integer",
			input: "+  /\n:( 1234). /",
			want: []tok{
				lit(kPlus), lit(kSlash), lit(kColon), lit(kLParen),
				{kind: kInt, num: 1234},
				lit(kRParen), lit(kDot), lit(kSlash),
			},
		},
		{
			name:  "float",
			input: "( 12.34)",
			want:  []tok{lit(kLParen), {kind: kFloat, num: 12.34}, lit(kRParen)},
		},
		{
			name:  "second dot ends the numeral",
			input: "1.2.3",
			want:  []tok{{kind: kFloat, num: 1.2}, lit(kDot), {kind: kInt, num: 3}},
		},
		{
			name:  "string spanning lines keeps the newline",
			input: "\"a\nb\"",
			want:  []tok{{kind: kStr, text: "a\nb"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []tok{},
		},
		{
			name:  "trailing newline",
			input: "+\n",
			want:  []tok{lit(kPlus)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lexValues(t, tt.input))
		})
	}
}

func TestLexer_TokenSpans(t *testing.T) {
	t.Parallel()

	tokens, err := lex.New(testRules()).Lex("example", "( 1234)\n\"ab\" ==")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	spans := make([]string, len(tokens))
	for idx, token := range tokens {
		spans[idx] = token.Pos.Start.String() + "-" + token.Pos.End.String()
	}
	assert.Equal(t, []string{
		"example:1:1-example:1:1",
		"example:1:3-example:1:6",
		"example:1:7-example:1:7",
		"example:2:1-example:2:4",
		"example:2:6-example:2:7",
	}, spans)
}

func TestLexer_Diagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		code    string
		message string
		at      string
	}{
		{
			name:    "invalid character",
			input:   "+ $",
			code:    "LX001",
			message: "character `$` is not a valid character or symbol",
			at:      "example:1:3",
		},
		{
			name:    "unterminated string reports end of input",
			input:   "( \"abc",
			code:    "LX002",
			message: "expected `\"` to close literal",
			at:      "example:1:8",
		},
		{
			name:    "integer overflow",
			input:   "99999999999",
			code:    "LX003",
			message: "`99999999999` is not a valid number",
			at:      "example:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens, err := lex.New(testRules()).Lex("example", tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			d, ok := diag.AsDiagnostic(err)
			require.True(t, ok)
			assert.Equal(t, tt.code, d.Code)
			assert.Equal(t, tt.message, d.Message)
			assert.Equal(t, tt.at, d.Pos.String())
		})
	}
}

func TestLexer_NewlineIsMatchable(t *testing.T) {
	t.Parallel()

	lexer := lex.New([]lex.Rule[tok]{lex.Char('+', lit(kPlus))})

	_, err := lexer.Lex("example", "+")
	require.Error(t, err)

	d, ok := diag.AsDiagnostic(err)
	require.True(t, ok)
	assert.Equal(t, "character `\\n` is not a valid character or symbol", d.Message)
	assert.Equal(t, "example:1:2", d.Pos.String())

	newlines := 0
	counting := lex.New([]lex.Rule[tok]{
		lex.Char('+', lit(kPlus)),
		lex.Char('\n', lit(kDot)),
	})
	tokens, err := counting.Lex("example", "+\n\n+")
	require.NoError(t, err)
	for _, token := range tokens {
		if token.Value.kind == kDot {
			newlines++
		}
	}
	assert.Equal(t, 3, newlines)
}

func TestLexer_WithNoMatch(t *testing.T) {
	t.Parallel()

	custom := diag.Define("E001", "Lexer", "`", "` is an invalid character")
	lexer := lex.New(testRules(), lex.WithNoMatch(func(pos source.Position, char rune) *diag.Diagnostic {
		return custom.At(pos, string(char))
	}))

	_, err := lexer.Lex("example", "?")
	require.Error(t, err)
	assert.Equal(t, "example:1:1: Lexer[E001]: `?` is an invalid character", err.Error())
}

func TestLexer_DeclinedDetailedRuleFallsThrough(t *testing.T) {
	t.Parallel()

	lexer := lex.New([]lex.Rule[tok]{
		lex.Detailed(lex.Is('='), func(m *lex.Match[tok]) error {
			m.Advance()
			m.Advance()
			return nil
		}),
		lex.Char('=', lit(kEQ)),
		lex.Skip[tok](lex.Is('\n')),
	})

	tokens, err := lexer.Lex("example", "==")
	require.NoError(t, err)
	assert.Equal(t, []tok{lit(kEQ), lit(kEQ)}, lex.Values(tokens))
}

func TestLexer_DetailedSkip(t *testing.T) {
	t.Parallel()

	comment := lex.Detailed(lex.Is('#'), func(m *lex.Match[tok]) error {
		for {
			cur, ok := m.Current()
			if !ok || cur == '\n' {
				return m.Skip()
			}
			m.Advance()
		}
	})
	lexer := lex.New([]lex.Rule[tok]{comment, lex.Char('+', lit(kPlus)), lex.Skip[tok](lex.Is('\n'))})

	tokens, err := lexer.Lex("example", "# note\n+ # trailing")
	require.Error(t, err, "the space before the comment has no rule")

	tokens, err = lexer.Lex("example", "# note\n+# trailing")
	require.NoError(t, err)
	assert.Equal(t, []tok{lit(kPlus)}, lex.Values(tokens))
	assert.Equal(t, "example:2:1", tokens[0].Pos.String())
}

func TestLexer_AcceptWithoutConsumingPanics(t *testing.T) {
	t.Parallel()

	lexer := lex.New([]lex.Rule[tok]{
		lex.Detailed(lex.Is('x'), func(m *lex.Match[tok]) error {
			return m.Emit(lit(kDot))
		}),
	})

	defer func() {
		recovered := recover()
		_, ok := recovered.(*diag.InternalError)
		assert.True(t, ok, "expected *diag.InternalError, got %v", recovered)
	}()
	_, _ = lexer.Lex("example", "x")
}

func TestLexer_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := lex.New(testRules(), lex.WithLogger(logger)).Lex("example", "1 + 2")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "token")
	assert.Contains(t, buf.String(), "lexed")
}

func TestMatchCursor(t *testing.T) {
	t.Parallel()

	file := source.NewFileContent("f", "ab")
	parent := lex.NewMatchCursor(source.Start(file))

	child := parent.Spawn()
	next, ok := child.Advance()
	require.True(t, ok)
	assert.Equal(t, 'b', next)
	assert.Equal(t, 1, child.Consumed())

	peek, ok := child.Peek()
	require.True(t, ok)
	assert.Equal(t, '\n', peek)

	cur, _ := parent.Current()
	assert.Equal(t, 'a', cur, "child progress must not leak into the parent")

	parent.Commit(child)
	cur, _ = parent.Current()
	assert.Equal(t, 'b', cur)
	assert.Equal(t, "f:1:1", parent.Position().String())

	child = parent.Spawn()
	child.Advance()
	child.Advance()
	assert.True(t, child.AtEOF())
	_, ok = child.Advance()
	assert.False(t, ok)
	assert.Equal(t, 2, child.Consumed())
	assert.Equal(t, "f:1:2", child.Position().Start.String())
	assert.Equal(t, "f:1:3", child.Position().End.String())
}
