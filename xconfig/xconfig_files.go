package xconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func loadFromFiles(config any, filenames []string, strict bool) error {
	for _, filename := range filenames {
		if err := loadFromFile(config, filename, strict); err != nil {
			return fmt.Errorf("failed to load file %s: %w", filename, err)
		}
	}
	return nil
}

func loadFromFile(config any, filename string, strict bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// an empty file leaves the config untouched
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(config)

	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		return dec.Decode(config)

	default:
		return fmt.Errorf("unsupported file extension %s for file %s", ext, filename)
	}
}
