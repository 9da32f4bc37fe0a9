package blockgen

import "os"

// Checker reports whether a resource path can be opened for reading.
type Checker interface {
	Exists(path string) bool
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(path string) bool

// Exists implements Checker.
func (f CheckerFunc) Exists(path string) bool { return f(path) }

// FileChecker checks the filesystem. Every failure, whether absence,
// permissions or I/O, collapses to false.
type FileChecker struct {
	Resolver PathResolver
}

// Exists opens and immediately closes path. No content is read.
func (c FileChecker) Exists(path string) bool {
	p := c.Resolver.ResolvePath(path)
	if p == "" {
		return false
	}

	f, err := os.Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	// A directory opens fine on most platforms but is not a texture.
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return !info.IsDir()
}
