package blockgen

// AirName is the implicit block at ordinal 0. It is never read from input.
const AirName = "Air"

// Block is a single named block type.
type Block struct {
	Name    string `json:"name" toml:"name"`       // Block name as read from the block list
	Ordinal int    `json:"ordinal" toml:"ordinal"` // Enumeration value, 1-based; 0 is Air
}

// Registry is the ordered set of blocks for one generation run.
// Order is significant: it fixes enumeration values and texture offsets.
type Registry struct {
	Blocks []Block `json:"blocks,omitempty" toml:"blocks,omitempty"` // Blocks in input order
}

// NewRegistry builds a Registry from names, assigning ordinals in order.
func NewRegistry(names ...string) *Registry {
	r := &Registry{Blocks: make([]Block, len(names))}
	for i, name := range names {
		r.Blocks[i] = Block{Name: name, Ordinal: i + 1}
	}

	return r
}

// Len returns the number of blocks, excluding Air.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Blocks)
}

// TextureCount returns the number of texture paths the registry requires.
func (r *Registry) TextureCount() int {
	return r.Len() * len(Faces)
}

// Names returns block names in order.
func (r *Registry) Names() []string {
	out := make([]string, 0, r.Len())
	for _, b := range r.blocks() {
		out = append(out, b.Name)
	}

	return out
}

func (r *Registry) blocks() []Block {
	if r == nil {
		return nil
	}

	return r.Blocks
}
