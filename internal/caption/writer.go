package caption

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile renders cues in the given format and writes the result to path,
// creating parent directories as needed.
func WriteFile(cues []Cue, format Format, style StyleConfig, path string) error {
	renderer, err := NewRenderer(format, style)
	if err != nil {
		return err
	}
	out, err := renderer.Render(cues)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(out), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
