// Package item loads item content files and converts them into runtime
// items. The loader keeps an instance-scoped result cache: repeat calls for
// the same operation return the same slice without touching disk. That
// behavior is specific to items; the monster and scene loaders re-read on
// every call.
package item

import "github.com/cory-johannsen/zork-content/internal/content"

// Vertical names used in error messages.
const (
	vertical = "item"
	entity   = "Item"
)

// Type classifies an item. Raw files carry the uppercase extractor form
// ("TOOL", "LIGHT_SOURCE"); conversion is strict.
type Type string

const (
	TypeTool        Type = "tool"
	TypeContainer   Type = "container"
	TypeWeapon      Type = "weapon"
	TypeLightSource Type = "light_source"
	TypeTreasure    Type = "treasure"
	TypeFood        Type = "food"
)

var typeFromData = map[string]Type{
	"TOOL":         TypeTool,
	"CONTAINER":    TypeContainer,
	"WEAPON":       TypeWeapon,
	"LIGHT_SOURCE": TypeLightSource,
	"TREASURE":     TypeTreasure,
	"FOOD":         TypeFood,
}

// ParseType coerces a raw type string to its Type constant.
//
// Postcondition: returns a valid Type, or a ConversionError whose message is
// "Invalid item type: <value>".
func ParseType(raw string) (Type, error) {
	if t, ok := typeFromData[raw]; ok {
		return t, nil
	}
	return "", &content.ConversionError{What: "item type", Value: raw}
}

// Size classifies an item's bulk.
type Size string

const (
	SizeTiny   Size = "tiny"
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHuge   Size = "huge"
)

var sizeFromData = map[string]Size{
	"TINY":   SizeTiny,
	"SMALL":  SizeSmall,
	"MEDIUM": SizeMedium,
	"LARGE":  SizeLarge,
	"HUGE":   SizeHuge,
}

// ParseSize coerces a raw size string to its Size constant.
func ParseSize(raw string) (Size, error) {
	if s, ok := sizeFromData[raw]; ok {
		return s, nil
	}
	return "", &content.ConversionError{What: "item size", Value: raw}
}

// Data is the raw shape of an item content file. Required-field validation
// is presence and container-type checking only; enum coercion happens in
// Convert.
type Data struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	ExamineText     string         `json:"examineText"`
	Aliases         []string       `json:"aliases"`
	Type            string         `json:"type"`
	Portable        bool           `json:"portable"`
	Visible         bool           `json:"visible"`
	Weight          int            `json:"weight"`
	Size            string         `json:"size"`
	InitialState    map[string]any `json:"initialState"`
	Tags            []string       `json:"tags"`
	Properties      Properties     `json:"properties"`
	Interactions    []Interaction  `json:"interactions"`
	InitialLocation string         `json:"initialLocation"`
}

// requiredFields lists every field a content file must carry. Order matches
// the file schema so the first reported defect is the earliest field.
var requiredFields = []string{
	"id", "name", "description", "examineText", "aliases", "type",
	"portable", "visible", "weight", "size", "initialState", "tags",
	"properties", "interactions", "initialLocation",
}

// arrayFields lists the fields that must be JSON arrays when present.
var arrayFields = []string{"aliases", "tags", "interactions"}

// Interaction is one scripted response to a player command.
type Interaction struct {
	Command   string `json:"command"`
	Condition string `json:"condition,omitempty"`
	Effect    string `json:"effect,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Properties is the open property bag carried by every item. A few keys are
// well known and exposed through typed accessors; everything else, including
// explicit nulls, passes through untouched.
type Properties map[string]any

func (p Properties) intKey(key string) (int, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	// JSON numbers decode as float64.
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (p Properties) stringKey(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Size returns the numeric size property, if set.
func (p Properties) Size() (int, bool) { return p.intKey("size") }

// Value returns the score value property, if set.
func (p Properties) Value() (int, bool) { return p.intKey("value") }

// TreasurePoints returns the treasure-case deposit score, if set.
func (p Properties) TreasurePoints() (int, bool) { return p.intKey("treasurePoints") }

// Capacity returns the container capacity, if set.
func (p Properties) Capacity() (int, bool) { return p.intKey("capacity") }

// ReadText returns the text revealed by reading the item, if set.
func (p Properties) ReadText() (string, bool) { return p.stringKey("readText") }

// LightTimer returns the remaining light-source turns, if set.
func (p Properties) LightTimer() (int, bool) { return p.intKey("lightTimer") }

// MatchCount returns the number of matches in a matchbook, if set.
func (p Properties) MatchCount() (int, bool) { return p.intKey("matchCount") }

// Item is the runtime form of an item.
type Item struct {
	ID              string
	Name            string
	Description     string
	ExamineText     string
	Aliases         []string
	Type            Type
	Portable        bool
	Visible         bool
	Weight          int
	Size            Size
	InitialLocation string
	// CurrentLocation starts as a copy of InitialLocation and is mutated by
	// the command processor as the item moves.
	CurrentLocation string
	State           map[string]any
	Flags           map[string]bool
	Tags            []string
	Properties      Properties
	Interactions    []Interaction
}
