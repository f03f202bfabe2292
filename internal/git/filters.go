package git

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// filterTags keeps the tags accepted by the include/exclude patterns,
// preserving their order. With no patterns every tag is kept.
func filterTags(tags []string, include, exclude []string) ([]string, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return tags, nil
	}

	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		ok, err := matchesFilters(tag, include, exclude)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, tag)
		}
	}
	return kept, nil
}

// matchesFilters checks if a tag matches the include/exclude filters.
func matchesFilters(name string, include, exclude []string) (bool, error) {
	name = strings.ReplaceAll(name, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range exclude {
		matched, err := matchPattern(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid exclude pattern: %w", err)
		}
		if matched {
			return false, nil
		}
	}

	if len(include) == 0 {
		return true, nil
	}

	for _, pattern := range include {
		matched, err := matchPattern(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid include pattern: %w", err)
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

func matchPattern(pattern, name string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("%q: %w", pattern, doublestar.ErrBadPattern)
	}
	return doublestar.Match(pattern, name)
}
