package blockgen

// Options bundles generation and formatting options.
type Options struct {
	Generate *GenerateOptions
	Format   *FormatOptions
}

// Generate checks every texture of reg through chk and, if all exist,
// renders the block header. It never touches the filesystem itself.
func Generate(reg *Registry, chk Checker, opt *Options) ([]byte, error) {
	if opt == nil {
		opt = &Options{}
	}

	textures, err := TextureList(reg, chk, opt.Generate)
	if err != nil {
		return nil, err
	}

	return Format(reg, textures, opt.Format)
}
