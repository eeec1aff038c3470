package scene

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/cory-johannsen/zork-content/internal/content"
)

// Index is the scene manifest: content file names plus region buckets.
type Index struct {
	Scenes      []string            `json:"scenes"`
	Total       int                 `json:"total"`
	Regions     map[string][]string `json:"regions"`
	LastUpdated string              `json:"lastUpdated"`
}

// Loader reads scene content from a base directory. Like the monster loader
// it holds no cache; every LoadAll call re-reads the content set.
type Loader struct {
	basePath string
	logger   *zap.Logger
}

// NewLoader constructs a Loader rooted at basePath. A nil logger is replaced
// with a no-op logger.
func NewLoader(basePath string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{basePath: basePath, logger: logger}
}

// ReadIndex reads and validates <basePath>/index.json.
//
// Postcondition: returns the parsed Index, or an IndexError. No content file
// is read when the index is structurally invalid.
func (l *Loader) ReadIndex() (*Index, error) {
	root, err := content.ReadIndex(l.basePath, "scenes", "regions")
	if err != nil {
		return nil, &content.IndexError{Vertical: vertical, Err: err}
	}
	idx := &Index{
		Scenes:      content.StringList(root.Get("scenes")),
		Total:       int(root.Get("total").Int()),
		Regions:     make(map[string][]string),
		LastUpdated: root.Get("lastUpdated").Str,
	}
	root.Get("regions").ForEach(func(k, v gjson.Result) bool {
		idx.Regions[k.Str] = content.StringList(v)
		return true
	})
	return idx, nil
}

// LoadAll loads every scene listed in the index, in index order. Entries
// that fail to load or convert are logged and omitted; only an index failure
// aborts the call. There is no single-scene load operation: callers filter
// the returned slice.
func (l *Loader) LoadAll() ([]*Scene, error) {
	idx, err := l.ReadIndex()
	if err != nil {
		return nil, err
	}
	return content.Batch(l.logger, vertical, idx.Scenes, l.loadConverted), nil
}

// loadConverted reads, validates, and converts one scene file.
func (l *Loader) loadConverted(fileName string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Join(l.basePath, fileName))
	if err != nil {
		return nil, &content.FileError{Vertical: vertical, File: fileName, Err: err}
	}
	doc, err := content.ParseDoc(data)
	if err != nil {
		return nil, &content.FileError{Vertical: vertical, File: fileName, Err: err}
	}
	if err := validate(doc); err != nil {
		return nil, &content.FileError{Vertical: vertical, File: fileName, Err: err}
	}
	return Convert(doc)
}

func validate(doc *content.Doc) error {
	if err := doc.RequireFields(entity, requiredFields...); err != nil {
		return err
	}
	if err := doc.RequireID(entity); err != nil {
		return err
	}
	return doc.RequireArrays(entity, arrayFields...)
}
