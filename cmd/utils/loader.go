package utils

import (
	"fmt"

	"github.com/bitfield/script"
)

// LoadIgnoreFile reads one literal pattern per line. Line endings are
// stripped and empty lines dropped.
func LoadIgnoreFile(path string) ([]string, error) {
	lines, err := script.File(path).Slice()
	if err != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", path, err)
	}

	patterns := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}
