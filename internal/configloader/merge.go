package configloader

import "github.com/yaklabco/flexar/pkg/config"

// merge combines two configurations, with override taking precedence:
//   - scalars overwrite when non-zero
//   - Check.Execute overwrites when set, so false can override true
//   - slices replace base entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.LineLimit != 0 {
		result.LineLimit = override.LineLimit
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Normalize != "" {
		result.Normalize = override.Normalize
	}

	if override.Check.Jobs != 0 {
		result.Check.Jobs = override.Check.Jobs
	}
	if override.Check.Execute != nil {
		execute := *override.Check.Execute
		result.Check.Execute = &execute
	}
	if override.Check.Extensions != nil {
		result.Check.Extensions = append([]string(nil), override.Check.Extensions...)
	}
	if override.Check.Ignore != nil {
		result.Check.Ignore = append([]string(nil), override.Check.Ignore...)
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, next := range configs[1:] {
		result = merge(result, next)
	}
	return result
}
