package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/flexar/pkg/config"
)

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    config.OutputFormat
		wantErr bool
	}{
		{input: "", want: config.FormatText},
		{input: "text", want: config.FormatText},
		{input: "JSON", want: config.FormatJSON},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		got, err := config.ParseOutputFormat(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}

func TestClone(t *testing.T) {
	t.Parallel()

	var nilConfig *config.Config
	assert.Nil(t, nilConfig.Clone())

	execute := true
	original := config.NewConfig()
	original.Check.Ignore = []string{"vendor/**"}
	original.Check.Execute = &execute

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.Equal(t, original, clone)

	clone.Check.Ignore[0] = "changed"
	clone.Check.Extensions[0] = ".calc"
	*clone.Check.Execute = false

	assert.Equal(t, "vendor/**", original.Check.Ignore[0])
	assert.Equal(t, ".fx", original.Check.Extensions[0])
	assert.True(t, original.Check.ShouldExecute())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
line_limit: 40
color: never
check:
  ignore: ["tmp/**"]
  execute: true
`))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.LineLimit)
	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, []string{"tmp/**"}, cfg.Check.Ignore)
	assert.True(t, cfg.Check.ShouldExecute())
	assert.Empty(t, cfg.Format)

	empty, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{}, empty)

	_, err = config.FromYAML([]byte("flavor: gfm\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte(`
line_limit = 30
normalize = "nfc"

[check]
jobs = 4
extensions = [".fx", ".calc"]
`))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.LineLimit)
	assert.Equal(t, "nfc", cfg.Normalize)
	assert.Equal(t, 4, cfg.Check.Jobs)
	assert.Equal(t, []string{".fx", ".calc"}, cfg.Check.Extensions)
	assert.Nil(t, cfg.Check.Execute)

	_, err = config.FromTOML([]byte("colour = \"never\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys: colour")
}

func TestDecode_ByExtension(t *testing.T) {
	t.Parallel()

	cfg, err := config.Decode("flexcalc.TOML", []byte(`format = "json"`))
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Format)

	cfg, err = config.Decode(".flexcalc.yml", []byte(`format: json`))
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Format)
}

func TestTOMLRoundTrip(t *testing.T) {
	t.Parallel()

	execute := true
	original := config.NewConfig()
	original.Check.Ignore = []string{"a/**"}
	original.Check.Execute = &execute

	tomlBytes, err := original.ToTOML()
	require.NoError(t, err)
	fromTOML, err := config.FromTOML(tomlBytes)
	require.NoError(t, err)
	assert.Equal(t, original, fromTOML)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	for _, format := range []config.TemplateFormat{config.TemplateYAML, config.TemplateTOML} {
		data, err := config.GenerateTemplate(format)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# flexcalc configuration\n")

		cfg, err := config.Decode("config."+string(format), data)
		require.NoError(t, err, format)

		want := config.NewConfig()
		execute := false
		want.Check.Execute = &execute
		assert.Equal(t, want, cfg, format)
	}

	_, err := config.GenerateTemplate("json")
	require.Error(t, err)
}
