package blockgen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Encode writes the block header to writer.
// textures must be the output of TextureList for the same registry.
func Encode(w io.Writer, reg *Registry, textures string, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, opt: fopt}
	if err := wr.writeHeader(reg, textures); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes the block header to a file, replacing it atomically.
// On failure the previous file, if any, is left untouched.
func EncodeFile(path string, reg *Registry, textures string, opt *FormatOptions) error {
	b, err := Format(reg, textures, opt)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, b)
}

// Format renders the block header to bytes.
func Format(reg *Registry, textures string, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, reg, textures, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a block header to a writer.
type writer struct {
	w   io.Writer     // Writer to write to
	opt FormatOptions // Normalized format options
}

// writeHeader writes every header section in order.
func (w *writer) writeHeader(reg *Registry, textures string) error {
	if err := w.writeGuardOpen(); err != nil {
		return err
	}
	if err := w.writeCounts(reg.Len()); err != nil {
		return err
	}
	if err := w.writeTextures(textures); err != nil {
		return err
	}
	if err := w.writeString("\n#include <stdint.h>\n\ntypedef uint8_t BlockType;\n\n"); err != nil {
		return err
	}
	if err := w.writeEnum(reg); err != nil {
		return err
	}
	if err := w.writeBlockStruct(); err != nil {
		return err
	}

	return w.writeString("\n#endif")
}

// writeGuardOpen writes the include guard opening.
func (w *writer) writeGuardOpen() error {
	if err := w.writeString("#ifndef " + w.opt.Guard + "\n\n"); err != nil {
		return err
	}

	return w.writeString("#define " + w.opt.Guard + "\n\n")
}

// writeCounts writes the block and texture count macros.
func (w *writer) writeCounts(n int) error {
	if err := w.writeString("#define NUM_BLOCKS "); err != nil {
		return err
	}
	if err := w.writeString(strconv.Itoa(n)); err != nil {
		return err
	}
	if err := w.writeString("\n\n"); err != nil {
		return err
	}

	return w.writeString("#define NUM_BLOCK_TEXTURES (NUM_BLOCKS * " + strconv.Itoa(len(Faces)) + ")\n\n")
}

// writeTextures writes the BLOCK_TEXTURES macro around the texture list.
func (w *writer) writeTextures(textures string) error {
	if err := w.writeString("#define BLOCK_TEXTURES \\\n"); err != nil {
		return err
	}

	return w.writeString(textures)
}

// writeEnum writes the block type enumeration, Air first.
func (w *writer) writeEnum(reg *Registry) error {
	if err := w.writeString("enum {\n"); err != nil {
		return err
	}
	if err := w.writeEnumerator(AirName); err != nil {
		return err
	}
	for _, b := range reg.blocks() {
		if err := w.writeEnumerator(b.Name); err != nil {
			return err
		}
	}

	return w.writeString("\n};\n\n")
}

// writeEnumerator writes one prefixed enumerator line.
func (w *writer) writeEnumerator(name string) error {
	return w.writeString(w.opt.Indent + w.opt.Prefix + name + ",\n")
}

// writeBlockStruct writes the Block value type.
func (w *writer) writeBlockStruct() error {
	if err := w.writeString("typedef struct {\n"); err != nil {
		return err
	}
	if err := w.writeString(w.opt.Indent + "BlockType type;\n"); err != nil {
		return err
	}

	return w.writeString("} Block;\n")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// writeFileAtomic writes data to a temporary sibling of path and renames it
// into place. A symlink at path is followed and the target is replaced, and
// an existing file keeps its permission bits; new files get 0644.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, serr := filepath.EvalSymlinks(path); serr == nil {
		path = resolved
	}
	mode := os.FileMode(0o644)
	if fi, serr := os.Stat(path); serr == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err = tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	return nil
}
