package blockgen

// GenerateOptions controls texture list generation.
type GenerateOptions struct {
	// CollectMissing checks every texture path and reports all missing ones
	// in a MissingTextureError instead of stopping at the first miss.
	CollectMissing bool
}

// FormatOptions controls header formatting.
type FormatOptions struct {
	// Guard is the include guard macro name (default is "BLOCK_h").
	Guard string
	// Indent is the indentation string for enum and struct members (default is two spaces).
	Indent string
	// Prefix is prepended to every block name to form its enumerator (default is "Block").
	Prefix string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// Root is used to resolve texture paths when file checks are enabled.
	// An empty root resolves against the working directory.
	Root string
	// DisableFileCheck disables filesystem existence checks for texture paths.
	DisableFileCheck bool
	// DisableNameCheck disables identifier validation of block names.
	DisableNameCheck bool
}

const (
	defaultGuard  = "BLOCK_h"
	defaultIndent = "  "
	defaultPrefix = "Block"
)

// normalize normalizes the GenerateOptions.
func (o *GenerateOptions) normalize() GenerateOptions {
	if o == nil {
		return GenerateOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Guard: defaultGuard, Indent: defaultIndent, Prefix: defaultPrefix}
	}

	out := *o
	if out.Guard == "" {
		out.Guard = defaultGuard
	}
	if out.Indent == "" {
		out.Indent = defaultIndent
	}
	if out.Prefix == "" {
		out.Prefix = defaultPrefix
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
