package diag

// Categories used by the builtin catalog.
const (
	CategoryLexer  = "Lexer"
	CategoryParser = "Parser"
)

// Templates raised by the lexer and parser engines themselves.
//
//nolint:gochecknoglobals // Read-only catalog entries.
var (
	InvalidCharacter = Define("LX001", CategoryLexer,
		"character `", "` is not a valid character or symbol").
		WithDoc("Occurs when no lexer rule matches the current character.\n\n" +
			"```\n" +
			"error[Lexer]: character `$` is not a valid character or symbol\n" +
			" --> example:1:1\n" +
			"1 | $\n" +
			"  | ^ character `$` is not a valid character or symbol\n" +
			" <--\n" +
			"```\n")

	UnterminatedLiteral = Define("LX002", CategoryLexer,
		"expected `", "` to close literal").
		WithDoc("Occurs when a delimited literal reaches the end of input before its closing delimiter. " +
			"The report points at the end of input, not at the opening delimiter.")

	InvalidNumber = Define("LX003", CategoryLexer,
		"`", "` is not a valid number").
		WithDoc("Occurs when a numeric literal cannot be represented, for example because it overflows.")

	UnexpectedToken = Define("PA001", CategoryParser,
		"unexpected token `", "`").
		WithDoc("Occurs when no grammar alternative accepts the token and the rule defines no better report.")

	UnexpectedEOF = Define("PA002", CategoryParser,
		"unexpected end of input").
		WithDoc("Occurs when the input ends while a grammar rule still expects tokens.")

	TrailingInput = Define("PA003", CategoryParser,
		"expected end of input, found `", "`").
		WithDoc("Occurs when a complete parse leaves unconsumed tokens behind.")
)

// Builtin is the catalog of the toolkit's own diagnostics.
//
//nolint:gochecknoglobals // Read-only catalog.
var Builtin = NewCatalog("flexar",
	InvalidCharacter,
	UnterminatedLiteral,
	InvalidNumber,
	UnexpectedToken,
	UnexpectedEOF,
	TrailingInput,
)
