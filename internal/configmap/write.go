package configmap

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write sends data to outPath, "" or "-" meaning stdout. Parent directories
// are created for file targets.
func Write(outPath string, data []byte) error {
	if outPath == "" || outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("writing %s: %v", outPath, err)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %v", outPath, err)
	}
	return nil
}
