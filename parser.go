package blockgen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// utf8BOM is skipped when it leads the block list.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse parses a block list from bytes.
// Each line is one block name; lines are kept verbatim, including blank ones.
func Parse(data []byte) (*Registry, error) {
	return Decode(bytes.NewReader(data))
}

// Decode parses a block list from reader.
func Decode(r io.Reader) (*Registry, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	// ScanLines drops the trailing \r of \r\n endings and yields no
	// empty token after a final newline.
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	var names []string
	for sc.Scan() {
		names = append(names, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	return NewRegistry(names...), nil
}

// DecodeFile parses a block list from a file.
func DecodeFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}
	defer f.Close()

	return Decode(f)
}
