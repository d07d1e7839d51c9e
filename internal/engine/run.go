package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/leapstack-labs/casinogen/internal/sink"
)

// CollectionCount reports the generated cardinality of one collection.
type CollectionCount struct {
	Name string
	Rows int
}

// Result summarizes a completed generation run.
type Result struct {
	Collections []CollectionCount
	Elapsed     time.Duration
}

// Run executes every stage in topological order and materializes the
// corpus. Any constraint violation aborts the whole run; a partially
// consistent corpus is never produced.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	order, err := e.graph.TopologicalSort()
	if err != nil {
		return nil, fmt.Errorf("failed to order collections: %w", err)
	}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		st := e.stages[name]
		e.logger.Debug("generating collection", "collection", name, "count", st.count)
		if err := st.build(e.corpus); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", name, err)
		}
	}

	result := &Result{Elapsed: time.Since(start)}
	for _, col := range e.corpus.Collections() {
		result.Collections = append(result.Collections, CollectionCount{Name: col.Name, Rows: len(col.Records)})
	}
	return result, nil
}

// Export writes every non-empty collection to one CSV file per
// collection under dir. Collections generated with zero records are
// skipped with a warning rather than handed to the sink, which would
// reject them. Returns the written file paths keyed by collection name.
func (e *Engine) Export(dir string) (map[string]string, error) {
	w := sink.NewCSV(dir, e.logger)
	paths := make(map[string]string)

	for _, col := range e.corpus.Collections() {
		if len(col.Records) == 0 {
			e.logger.Warn("skipping empty collection", "collection", col.Name)
			continue
		}
		path, err := w.Write(col.Name, col.Records)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", col.Name, err)
		}
		paths[col.Name] = path
	}
	return paths, nil
}
