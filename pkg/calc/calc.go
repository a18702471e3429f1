package calc

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/flexar/pkg/lex"
	"github.com/yaklabco/flexar/pkg/parse"
	"github.com/yaklabco/flexar/pkg/source"
)

// Option configures the calculator pipeline.
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger traces lexing and parsing at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tokenize lexes a calculator source file.
func Tokenize(file *source.FileContent, opts ...Option) ([]lex.Token[Token], error) {
	o := collect(opts)
	var lexOpts []lex.Option
	if o.logger != nil {
		lexOpts = append(lexOpts, lex.WithLogger(o.logger))
	}
	return NewLexer(lexOpts...).Tokenize(file)
}

// Parse parses tokens into a program. Empty input is an empty program.
func Parse(tokens []lex.Token[Token], opts ...Option) (Program, error) {
	o := collect(opts)
	var parseOpts []parse.Option
	if o.logger != nil {
		parseOpts = append(parseOpts, parse.WithLogger(o.logger))
	}
	nodes, err := parse.All(rules().program, tokens, parseOpts...)
	if err != nil {
		return nil, err
	}
	return Program(nodes), nil
}

// Compile lexes and parses a source file.
func Compile(file *source.FileContent, opts ...Option) (Program, error) {
	tokens, err := Tokenize(file, opts...)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts...)
}

// Run compiles text and executes it, printing expression results to out.
func Run(name, text string, out io.Writer, opts ...Option) ([]float64, error) {
	prog, err := Compile(source.NewFileContent(name, text), opts...)
	if err != nil {
		return nil, err
	}
	return NewInterpreter(out).Exec(prog)
}
