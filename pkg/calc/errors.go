package calc

import "github.com/yaklabco/flexar/pkg/diag"

// Diagnostics of the calculator language. The category is the short title
// shown in the report header.
//
//nolint:gochecknoglobals // Read-only catalog entries.
var (
	ErrUnexpectedCharacter = diag.Define("E001", "unexpected character",
		"character `", "` is unexpected").
		WithDoc("No token starts with this character.\n\n" +
			"```\n" +
			"error[unexpected character]: character `$` is unexpected\n" +
			" --> example.fx:1:5\n" +
			"1 | 1 + $;\n" +
			"  |     ^ character `$` is unexpected\n" +
			" <--\n" +
			"```\n")

	ErrUnclosedString = diag.Define("E002", "string not closed",
		"expected `\"` to close string").
		WithDoc("Reserved for string literals, which the calculator does not lex yet.")

	ErrExpectedNumber = diag.Define("E003", "expected number",
		"expected number, found `", "`.").
		WithDoc("A number, variable, sign or parenthesized expression was expected.")

	ErrExpectedExpr = diag.Define("E004", "expected an expr",
		"expected expr, found `", "`.").
		WithDoc("An expression was expected, for example after `=` or `(`.\n\n" +
			"```\n" +
			"error[expected an expr]: expected expr, found `;`.\n" +
			" --> example.fx:1:9\n" +
			"1 | let a = ;\n" +
			"  |         ^ expected expr, found `;`.\n" +
			" <--\n" +
			"```\n")

	ErrExpectedAddSub = diag.Define("E005", "expected `+` or `-` in binary operation",
		"expected `+` or `-`, found `", "`.").
		WithDoc("Reserved for grammars that require an additive operator.")

	ErrUnexpectedToken = diag.Define("E006", "unexpected token",
		"unexpected token `", "`.").
		WithDoc("The token cannot start a statement.")

	ErrUnclosedParen = diag.Define("E007", "unclosed parentheses",
		"expected `)` to close parentheses").
		WithDoc("A parenthesized expression is missing its closing parenthesis. " +
			"The report points where `)` was expected.\n\n" +
			"```\n" +
			"error[unclosed parentheses]: expected `)` to close parentheses\n" +
			" --> example.fx:1:7\n" +
			"1 | (1 + 2;\n" +
			"  |       ^ expected `)` to close parentheses\n" +
			" <--\n" +
			"```\n")

	ErrExpectedIdent = diag.Define("E008", "expected identifier in `let` statement",
		"expected ident, found `", "`.").
		WithDoc("`let` must be followed by a variable name.")

	ErrExpectedAssign = diag.Define("E009", "expected `=` in `let` statement",
		"expected `=`, found `", "`.").
		WithDoc("The variable name in a `let` statement must be followed by `=`.")

	ErrExpectedSemi = diag.Define("E010", "expected one of `;`, `+`, `-`, `/` or `*`.",
		"expected `;` or operation, found `", "`.").
		WithDoc("Every statement ends with `;`.")

	ErrUnknownVariable = diag.Define("RT001", "non-existent variable",
		"variable `", "` doesn't exist").
		WithDoc("A variable was read before any `let` statement assigned it.\n\n" +
			"```\n" +
			"error[non-existent variable]: variable `b` doesn't exist\n" +
			" --> example.fx:1:1\n" +
			"1 | b * 2;\n" +
			"  | ^ variable `b` doesn't exist\n" +
			" <--\n" +
			"```\n")
)

// Errors is the catalog of calculator diagnostics.
//
//nolint:gochecknoglobals // Read-only catalog.
var Errors = diag.NewCatalog("flexcalc",
	ErrUnexpectedCharacter,
	ErrUnclosedString,
	ErrExpectedNumber,
	ErrExpectedExpr,
	ErrExpectedAddSub,
	ErrUnexpectedToken,
	ErrUnclosedParen,
	ErrExpectedIdent,
	ErrExpectedAssign,
	ErrExpectedSemi,
	ErrUnknownVariable,
)
