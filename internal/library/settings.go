// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/paperdesk/pkg/types"
)

const settingsFile = "settings.json"

// LoadSettings reads the AI settings blob from dir/settings.json. A
// missing file is not an error; zero-value settings are returned and the
// gateway rejects them at call time.
func LoadSettings(dir string) (types.AISettings, error) {
	path := filepath.Join(dir, settingsFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.AISettings{}, nil
		}
		return types.AISettings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var settings types.AISettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return types.AISettings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings rewrites the whole settings blob.
func SaveSettings(dir string, settings types.AISettings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return writeFileAtomic(filepath.Join(dir, settingsFile), data)
}
