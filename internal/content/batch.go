package content

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IndexFileName is the manifest file every vertical keeps at its base path.
const IndexFileName = "index.json"

// maxConcurrentReads bounds how many content files a batch load holds open
// at once.
const maxConcurrentReads = 8

// ReadIndex reads and structurally validates <basePath>/index.json.
// listField and objectField follow the ValidateIndex contract. The returned
// result is the parsed index root; callers wrap any error in an IndexError
// for their vertical.
func ReadIndex(basePath, listField, objectField string) (gjson.Result, error) {
	data, err := os.ReadFile(filepath.Join(basePath, IndexFileName))
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if err := ValidateIndex(root, listField, objectField); err != nil {
		return gjson.Result{}, err
	}
	return root, nil
}

// StringList extracts a []string from an index array field. Non-string
// entries (including null) become empty strings and are left for the
// per-entry load to reject.
func StringList(list gjson.Result) []string {
	var out []string
	list.ForEach(func(_, v gjson.Result) bool {
		out = append(out, v.Str)
		return true
	})
	return out
}

// Batch loads every named entry with bounded concurrency and returns the
// successes in index order. A failed entry is logged through logger with the
// entry name and dropped; entry failures never abort the batch.
func Batch[T any](logger *zap.Logger, vertical string, names []string, load func(name string) (T, error)) []T {
	slots := make([]*T, len(names))

	var g errgroup.Group
	g.SetLimit(maxConcurrentReads)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			v, err := load(name)
			if err != nil {
				logger.Error("Failed to load "+vertical,
					zap.String("entry", name),
					zap.Error(err))
				return nil
			}
			slots[i] = &v
			return nil
		})
	}
	// Workers only ever return nil; errors are logged and skipped above.
	_ = g.Wait()

	out := make([]T, 0, len(names))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
