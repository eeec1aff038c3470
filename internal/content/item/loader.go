package item

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/zork-content/internal/content"
)

// Index is the item manifest: a flat list of content file names.
type Index struct {
	Items       []string `json:"items"`
	Total       int      `json:"total"`
	LastUpdated string   `json:"lastUpdated"`
}

// Loader reads item content from a base directory.
type Loader struct {
	basePath string
	logger   *zap.Logger

	// Results are cached per operation for the life of the Loader. The
	// caches hand back the same slice on repeat calls; there is no
	// invalidation. Concurrent populates are last-writer-wins.
	mu         sync.Mutex
	all        []*Item
	byLocation map[string][]*Item
}

// NewLoader constructs a Loader rooted at basePath. A nil logger is replaced
// with a no-op logger.
func NewLoader(basePath string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		basePath:   basePath,
		logger:     logger,
		byLocation: make(map[string][]*Item),
	}
}

// ReadIndex reads and validates <basePath>/index.json.
//
// Postcondition: returns the parsed Index, or an IndexError. No content file
// is read when the index is structurally invalid.
func (l *Loader) ReadIndex() (*Index, error) {
	root, err := content.ReadIndex(l.basePath, "items", "")
	if err != nil {
		return nil, &content.IndexError{Vertical: vertical, Err: err}
	}
	return &Index{
		Items:       content.StringList(root.Get("items")),
		Total:       int(root.Get("total").Int()),
		LastUpdated: root.Get("lastUpdated").Str,
	}, nil
}

// LoadAll loads every item listed in the index, in index order. Entries that
// fail to load or convert are logged and omitted; only an index failure
// aborts the call. The result is cached: repeat calls return the same slice.
func (l *Loader) LoadAll() ([]*Item, error) {
	l.mu.Lock()
	cached := l.all
	l.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	idx, err := l.ReadIndex()
	if err != nil {
		return nil, err
	}
	items := content.Batch(l.logger, vertical, idx.Items, l.loadConverted)

	l.mu.Lock()
	l.all = items
	l.mu.Unlock()
	return items, nil
}

// Load loads a single item by id. The id must appear in the index as
// <id>.json; every load or conversion failure propagates to the caller.
func (l *Loader) Load(id string) (*Item, error) {
	idx, err := l.ReadIndex()
	if err != nil {
		return nil, err
	}
	fileName := id + ".json"
	if !slices.Contains(idx.Items, fileName) {
		return nil, &content.NotFoundError{Entity: entity, ID: id}
	}
	return l.loadConverted(fileName)
}

// ByLocation returns the items whose CurrentLocation equals locationID
// (case-sensitive). Results are cached per location; populating one
// location's entry does not touch another's, and a failed load caches
// nothing.
func (l *Loader) ByLocation(locationID string) ([]*Item, error) {
	l.mu.Lock()
	cached, ok := l.byLocation[locationID]
	l.mu.Unlock()
	if ok {
		return cached, nil
	}

	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	matches := make([]*Item, 0)
	for _, it := range all {
		if it.CurrentLocation == locationID {
			matches = append(matches, it)
		}
	}

	l.mu.Lock()
	l.byLocation[locationID] = matches
	l.mu.Unlock()
	return matches, nil
}

// loadConverted reads, validates, decodes, and converts one content file.
// Read, parse, and validation failures come back as a FileError naming the
// file; conversion failures come back as the ConversionError itself.
func (l *Loader) loadConverted(fileName string) (*Item, error) {
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

	var d Data
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &content.FileError{Vertical: vertical, File: fileName, Err: err}
	}
	return Convert(&d)
}

// validate runs the presence and container-type checks for a raw item file.
// Value types beyond the array checks are not enforced here.
func validate(doc *content.Doc) error {
	if err := doc.RequireFields(entity, requiredFields...); err != nil {
		return err
	}
	if err := doc.RequireID(entity); err != nil {
		return err
	}
	return doc.RequireArrays(entity, arrayFields...)
}
