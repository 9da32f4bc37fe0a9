/*
Package blockgen compiles a block list into the C header consumed by the
voxel renderer.

Each line of the block list names one block. Every block needs three
textures, textures/<name>-top.png, textures/<name>-side.png and
textures/<name>-bottom.png. The header is produced only when all of them
exist; otherwise generation fails and nothing is written.

Reader example:

	reg, err := blockgen.DecodeFile("blocks.txt")
	if err != nil {
		// handle error
	}

Generator example:

	chk := blockgen.FileChecker{Resolver: blockgen.PathResolver{Root: "."}}
	out, err := blockgen.Generate(reg, chk, nil)
	if errors.Is(err, blockgen.ErrMissingTexture) {
		// some texture is missing
	}

Writer example:

	textures, err := blockgen.TextureList(reg, chk, nil)
	if err != nil {
		// handle error
	}
	if err := blockgen.EncodeFile("src/block.h", reg, textures, nil); err != nil {
		// handle error
	}

Validator example:

	issues := blockgen.Validate(reg, &blockgen.ValidateOptions{Root: "."})
	if blockgen.HasErrors(issues) {
		// handle validation issues
	}

Tests can replace the filesystem with a CheckerFunc:

	chk := blockgen.CheckerFunc(func(path string) bool { return true })
*/
package blockgen
