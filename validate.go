package blockgen

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes reported by Validate.
const (
	CodeReservedName      = "reserved_name"
	CodeDuplicateName     = "duplicate_name"
	CodeEmptyName         = "empty_name"
	CodeInvalidIdentifier = "invalid_identifier"
	CodeMissingResource   = "missing_resource"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" toml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" toml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" toml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" toml:"path,omitempty"` // Block name or texture path
}

// String formats the issue as a single line.
func (i Issue) String() string {
	s := string(i.Level) + ": " + i.Message
	if i.Path != "" {
		s += " (" + i.Path + ")"
	}
	return s
}

// HasErrors reports whether any issue is error level.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Level == IssueError {
			return true
		}
	}
	return false
}

// Validate lints a registry and returns issues. Unlike TextureList it never
// stops early, so every problem is reported.
func Validate(reg *Registry, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	seen := make(map[string]struct{}, reg.Len())
	for _, b := range reg.blocks() {
		if b.Name == "" {
			out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyName, Message: "empty block name"})
			continue
		}

		// An "Air" block would redeclare the implicit BlockAir enumerator.
		if b.Name == AirName {
			out = append(out, Issue{Level: IssueError, Code: CodeReservedName, Message: "block name is reserved", Path: b.Name})
		}

		if _, ok := seen[b.Name]; ok {
			out = append(out, Issue{Level: IssueError, Code: CodeDuplicateName, Message: "duplicate block name", Path: b.Name})
		}
		seen[b.Name] = struct{}{}

		if !vopt.DisableNameCheck && !isIdentFragment(b.Name) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeInvalidIdentifier, Message: "block name is not a C identifier fragment", Path: b.Name})
		}
	}

	if !vopt.DisableFileCheck {
		chk := FileChecker{Resolver: PathResolver{Root: vopt.Root}}
		for _, b := range reg.blocks() {
			for _, p := range TriplesFor(b).Paths() {
				if !chk.Exists(p) {
					out = append(out, Issue{Level: IssueError, Code: CodeMissingResource, Message: "texture file not found", Path: p})
				}
			}
		}
	}

	return out
}

// isIdentFragment reports whether s can follow a C identifier prefix.
func isIdentFragment(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return s != ""
}
