package fetch

import (
	"fmt"

	"github.com/abelbrown/signalboard/internal/config"
	"github.com/abelbrown/signalboard/internal/store"
)

// Open returns the Source configured by kind and path, and a func that
// releases it.
func Open(kind, path string) (Source, func() error, error) {
	switch kind {
	case config.SourceDir:
		return NewDir(path), func() error { return nil }, nil
	case config.SourceSQLite:
		st, err := store.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open snapshot: %w", err)
		}
		return st, st.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown source kind %q", kind)
}
