package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/flexar/pkg/langdetect"
)

func TestGuess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{name: "calculator program", path: "a.fx", content: "let a = 1;\na * 2;", want: ""},
		{name: "calculator with comment", path: "a.fx", content: "1 / 2; // half", want: ""},
		{name: "empty", path: "a.fx", content: "  \n", want: ""},
		{name: "shebang sh", path: "a.fx", content: "#!/bin/sh\necho hi", want: "bash"},
		{name: "shebang python", path: "a.fx", content: "#!/usr/bin/env python3\nprint(1)", want: "python"},
		{name: "python extension", path: "script.py", content: "x = 1", want: "python"},
		{name: "go source", path: "main", content: "package main\n\nfunc main() {}", want: "go"},
		{name: "python source", path: "a.fx", content: "def f(x):\n    return x", want: "python"},
		{name: "html", path: "a.fx", content: "<!DOCTYPE html>\n<html></html>", want: "html"},
		{name: "json", path: "a.fx", content: `{"a": 1}`, want: "json"},
		{name: "sql", path: "a.fx", content: "select * from t;", want: "sql"},
		{name: "rust", path: "a.fx", content: "fn main() {\n    println!(\"hi\");\n}", want: "rust"},
		{name: "javascript", path: "a.fx", content: "const f = (x) => x * 2;", want: "javascript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, langdetect.Guess(tt.path, []byte(tt.content)))
		})
	}
}
