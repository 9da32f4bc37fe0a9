package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/woozymasta/blockgen"
)

// DefaultConfigFile is read from the root when present.
const DefaultConfigFile = "blockgen.toml"

// Config describes one generation run. Input, Output and texture paths
// are relative to Root. A relative root read from a config file is
// relative to that file's directory.
type Config struct {
	Root           string       `toml:"root"`
	Input          string       `toml:"input"`
	Output         string       `toml:"output"`
	CollectMissing bool         `toml:"collect_missing"`
	Format         FormatConfig `toml:"format"`
}

// FormatConfig overrides header formatting; empty fields keep defaults.
type FormatConfig struct {
	Guard  string `toml:"guard"`
	Indent string `toml:"indent"`
	Prefix string `toml:"prefix"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Root:   ".",
		Input:  "blocks.txt",
		Output: filepath.Join("src", "block.h"),
	}
}

// ReadConfig reads path over the defaults. A missing file yields the
// defaults and is never created.
func ReadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("error reading config: %v", err)
	}
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return c, fmt.Errorf("error decoding config: %v", err)
	}
	if err := tree.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("error decoding config: %v", err)
	}
	if tree.Has("root") && !filepath.IsAbs(c.Root) {
		c.Root = filepath.Join(filepath.Dir(path), c.Root)
	}
	return c, nil
}

// path resolves p against the root.
func (c Config) path(p string) string {
	if filepath.IsAbs(p) || c.Root == "" {
		return p
	}
	return filepath.Join(c.Root, p)
}

// generateOptions converts the config to library options.
func (c Config) generateOptions() *blockgen.Options {
	return &blockgen.Options{
		Generate: &blockgen.GenerateOptions{CollectMissing: c.CollectMissing},
		Format: &blockgen.FormatOptions{
			Guard:  c.Format.Guard,
			Indent: c.Format.Indent,
			Prefix: c.Format.Prefix,
		},
	}
}
