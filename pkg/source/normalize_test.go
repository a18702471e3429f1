package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/source"
)

func TestParseForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    source.Form
		wantErr bool
	}{
		{input: "", want: source.FormNone},
		{input: "none", want: source.FormNone},
		{input: "NFC", want: source.FormNFC},
		{input: " nfd ", want: source.FormNFD},
		{input: "nfkc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := source.ParseForm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown normalization form")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizedFileContent(t *testing.T) {
	t.Parallel()

	decomposed := "e\u0301x"

	file := source.NewNormalizedFileContent("a.fx", decomposed, source.FormNFC)
	assert.Equal(t, 2, file.LineLen(1))
	r, ok := file.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, '\u00e9', r)

	file = source.NewNormalizedFileContent("a.fx", "\u00e9x", source.FormNFD)
	assert.Equal(t, 3, file.LineLen(1))

	file = source.NewNormalizedFileContent("a.fx", decomposed, source.FormNone)
	assert.Equal(t, 3, file.LineLen(1))
}
