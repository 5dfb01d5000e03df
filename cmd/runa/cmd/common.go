package cmd

import (
	"fmt"
	"os"

	"github.com/gubiczam/runa/internal/locale"
	"github.com/gubiczam/runa/internal/runa"
)

var (
	localeFlag string
	fileFlag   string
)

// loadPack resolves --locale: a built-in name first, then a filesystem
// path.
func loadPack(name string) (*locale.Pack, error) {
	if pack, err := locale.Builtin(name); err == nil {
		return pack, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("locale %q is neither a built-in pack nor a readable file: %w", name, err)
	}
	return locale.Load(name, data)
}

// loadSource resolves --file, falling back to the locale's demo
// snippet when no file is given.
func loadSource(file, localeName string) (string, string, error) {
	if file == "" {
		return runa.DemoSource(localeName), "<demo>", nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(data), file, nil
}
