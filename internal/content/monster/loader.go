package monster

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/cory-johannsen/zork-content/internal/content"
)

// Index is the monster manifest: monster ids plus type buckets.
type Index struct {
	Monsters []string            `json:"monsters"`
	Total    int                 `json:"total"`
	Types    map[string][]string `json:"types"`
}

// Loader reads monster content from a base directory. It is stateless: every
// operation, including the filters, re-reads the index and content files, so
// callers always observe the current on-disk content.
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
	root, err := content.ReadIndex(l.basePath, "monsters", "types")
	if err != nil {
		return nil, &content.IndexError{Vertical: vertical, Err: err}
	}
	idx := &Index{
		Monsters: content.StringList(root.Get("monsters")),
		Total:    int(root.Get("total").Int()),
		Types:    make(map[string][]string),
	}
	root.Get("types").ForEach(func(k, v gjson.Result) bool {
		idx.Types[k.Str] = content.StringList(v)
		return true
	})
	return idx, nil
}

// LoadAll loads every monster listed in the index, in index order, reading
// <id>.json for each. Entries that fail to load or convert are logged and
// omitted; only an index failure aborts the call.
func (l *Loader) LoadAll() ([]*Monster, error) {
	idx, err := l.ReadIndex()
	if err != nil {
		return nil, err
	}
	return content.Batch(l.logger, vertical, idx.Monsters, l.loadConverted), nil
}

// Load loads a single monster by id. The id must appear in the index; every
// load or conversion failure propagates to the caller.
func (l *Loader) Load(id string) (*Monster, error) {
	idx, err := l.ReadIndex()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(idx.Monsters, id) {
		return nil, &content.NotFoundError{Entity: entity, ID: id}
	}
	return l.loadConverted(id)
}

// ByType returns the monsters of the given type, freshly loaded.
func (l *Loader) ByType(t Type) ([]*Monster, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	matches := make([]*Monster, 0)
	for _, m := range all {
		if m.Type == t {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// InScene returns the monsters whose CurrentSceneID equals sceneID. The
// match is case-sensitive and exact.
func (l *Loader) InScene(sceneID string) ([]*Monster, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	matches := make([]*Monster, 0)
	for _, m := range all {
		if m.CurrentSceneID == sceneID {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// Exists reports whether a monster with the given id loads successfully.
func (l *Loader) Exists(id string) (bool, error) {
	all, err := l.LoadAll()
	if err != nil {
		return false, err
	}
	for _, m := range all {
		if m.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// TotalCount returns the index's declared monster total.
func (l *Loader) TotalCount() (int, error) {
	idx, err := l.ReadIndex()
	if err != nil {
		return 0, err
	}
	return idx.Total, nil
}

// loadConverted reads, validates, decodes, and converts <id>.json.
func (l *Loader) loadConverted(id string) (*Monster, error) {
	fileName := id + ".json"
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
	return Convert(&d, l.logger)
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
