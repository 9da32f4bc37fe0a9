package blockgen

import (
	"path/filepath"
	"strings"
)

// Face names one side of a block that carries a texture.
type Face string

const (
	// FaceTop is the upward-facing side.
	FaceTop Face = "top"
	// FaceSide is any of the four lateral sides.
	FaceSide Face = "side"
	// FaceBottom is the downward-facing side.
	FaceBottom Face = "bottom"
)

// Faces lists faces in texture array order.
var Faces = [...]Face{FaceTop, FaceSide, FaceBottom}

const (
	textureDir = "textures"
	textureExt = ".png"
)

// TexturePath returns the slash-separated path of a block face texture,
// e.g. "textures/stone-top.png".
func TexturePath(name string, face Face) string {
	return textureDir + "/" + name + "-" + string(face) + textureExt
}

// TextureTriple holds the three texture paths of one block.
type TextureTriple struct {
	Top    string `json:"top" toml:"top"`       // Top face texture path
	Side   string `json:"side" toml:"side"`     // Side face texture path
	Bottom string `json:"bottom" toml:"bottom"` // Bottom face texture path
}

// TriplesFor returns the texture triple of b.
func TriplesFor(b Block) TextureTriple {
	return TextureTriple{
		Top:    TexturePath(b.Name, FaceTop),
		Side:   TexturePath(b.Name, FaceSide),
		Bottom: TexturePath(b.Name, FaceBottom),
	}
}

// Paths returns the triple in top, side, bottom order.
func (t TextureTriple) Paths() [3]string {
	return [3]string{t.Top, t.Side, t.Bottom}
}

// PathResolver resolves texture paths relative to Root.
type PathResolver struct {
	Root string
}

// ResolvePath resolves a raw slash-separated path against Root. Only '/'
// is treated as a separator; the rest of raw is kept byte for byte and
// not cleaned, so the resolved file is the one the header names.
func (r PathResolver) ResolvePath(raw string) string {
	if raw == "" {
		return ""
	}

	p := filepath.FromSlash(raw)
	if filepath.IsAbs(p) || r.Root == "" {
		return p
	}

	return strings.TrimSuffix(r.Root, string(filepath.Separator)) + string(filepath.Separator) + p
}
