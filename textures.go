package blockgen

import "strings"

// TextureList checks every block texture and renders the BLOCK_TEXTURES
// macro body: quoted paths joined by ", ", one block triple per line,
// each line but the last ending in a continuation backslash.
//
// By default the first missing path aborts with ErrMissingTexture and no
// further paths are checked. An empty registry yields an empty list.
func TextureList(reg *Registry, chk Checker, opt *GenerateOptions) (string, error) {
	gopt := opt.normalize()
	blocks := reg.blocks()

	var (
		sb      strings.Builder
		missing []string
	)
	for i, b := range blocks {
		paths := TriplesFor(b).Paths()
		for j, p := range paths {
			if !chk.Exists(p) {
				if !gopt.CollectMissing {
					return "", ErrMissingTexture
				}
				missing = append(missing, p)
				continue
			}
			if len(missing) != 0 {
				continue
			}

			sb.WriteByte('"')
			sb.WriteString(p)
			sb.WriteByte('"')
			if j < len(paths)-1 {
				sb.WriteString(", ")
			}
		}

		// Continuation after every triple except the last.
		if i < len(blocks)-1 {
			sb.WriteString(", \\\n")
		} else {
			sb.WriteByte('\n')
		}
	}

	if len(missing) != 0 {
		return "", &MissingTextureError{Paths: missing}
	}

	return sb.String(), nil
}
