// Package sink serializes finished collections to tabular files.
package sink

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Record is one row of a collection. Columns returns the header in field
// order; Values returns the serialized cells in the same order.
type Record interface {
	Columns() []string
	Values() []string
}

// EmptyCollectionError reports an attempt to serialize a collection with
// zero records; the header cannot be inferred without a first record.
type EmptyCollectionError struct {
	Collection string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("collection %q has no records to serialize", e.Collection)
}

// CSV writes one .csv file per collection into a directory.
type CSV struct {
	dir    string
	logger *slog.Logger
}

// NewCSV creates a CSV sink rooted at dir.
func NewCSV(dir string, logger *slog.Logger) *CSV {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CSV{dir: dir, logger: logger}
}

// Write serializes records to <dir>/<name>.csv: a header row taken from
// the first record, then one row per record in collection order. No
// cross-row schema validation is performed; a mismatched later row is a
// caller bug. Returns the path of the written file.
func (w *CSV) Write(name string, records []Record) (string, error) {
	if len(records) == 0 {
		return "", &EmptyCollectionError{Collection: name}
	}

	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cw := csv.NewWriter(f)
	if err := cw.Write(records[0].Columns()); err != nil {
		return "", fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values()); err != nil {
			return "", fmt.Errorf("failed to write row for %s: %w", name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to flush %s: %w", path, err)
	}

	w.logger.Debug("wrote collection", "collection", name, "rows", len(records), "path", path)
	return path, nil
}
