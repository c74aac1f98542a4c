package review

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/kaitongg-bit/course-pilot/catalog"
)

// LoadFile reads a review CSV and builds the review set.
// An absent file is not an error: review enrichment degrades to defaults, so
// an empty set is returned instead.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("review source not found, continuing without reviews", "path", path)
			return NewEmptySet(), nil
		}
		return nil, err
	}
	defer f.Close()

	rows, err := catalog.ReadRows(f)
	if errors.Is(err, catalog.ErrEmptySource) {
		return NewEmptySet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(rows), nil
}
