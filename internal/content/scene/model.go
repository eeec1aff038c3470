// Package scene loads scene content files and converts them into runtime
// scenes. The exits object in a content file is order-significant: it
// converts to a slice preserving the JSON key order, which is why conversion
// works from the raw document rather than a decoded map.
package scene

import "github.com/cory-johannsen/zork-content/internal/content"

const (
	vertical = "scene"
	entity   = "Scene"
)

// Lighting is a scene's ambient light level.
type Lighting string

const (
	LightingDaylight   Lighting = "daylight"
	LightingLit        Lighting = "lit"
	LightingDark       Lighting = "dark"
	LightingPitchBlack Lighting = "pitchBlack"
)

var validLighting = map[string]Lighting{
	"daylight":   LightingDaylight,
	"lit":        LightingLit,
	"dark":       LightingDark,
	"pitchBlack": LightingPitchBlack,
}

// ParseLighting coerces a raw lighting string to its Lighting constant.
//
// Postcondition: returns a valid Lighting, or a ConversionError whose
// message is "Invalid scene lighting: <value>".
func ParseLighting(raw string) (Lighting, error) {
	if l, ok := validLighting[raw]; ok {
		return l, nil
	}
	return "", &content.ConversionError{What: "scene lighting", Value: raw}
}

// Data is the raw shape of a scene content file. Exits stays a raw document
// fragment so Convert can walk it in key order.
type Data struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Description           string         `json:"description"`
	FirstVisitDescription string         `json:"firstVisitDescription"`
	State                 map[string]any `json:"state"`
	Lighting              string         `json:"lighting"`
	Region                string         `json:"region"`
	Atmosphere            []string       `json:"atmosphere"`
	Tags                  []string       `json:"tags"`
}

var requiredFields = []string{
	"id", "title", "description", "exits", "items", "monsters", "state",
	"lighting", "region", "atmosphere", "tags",
}

var arrayFields = []string{"items", "monsters", "tags"}

// Exit is one normalized passage out of a scene. In the source file an exit
// is either a bare destination string or an object; the optional fields are
// populated only from the object form.
type Exit struct {
	Direction   string
	To          string
	Locked      bool
	Hidden      bool
	KeyID       string
	Description string
	// Condition is an opaque string handed to the condition evaluator
	// downstream. A leading "!" is part of the string, not interpreted here.
	Condition string
}

// Ref is a normalized reference to an item or monster placed in a scene.
// The string form in a content file becomes a visible, unconditional Ref.
type Ref struct {
	ID        string
	Visible   bool
	Condition string
}

// Scene is the runtime form of a scene. Item and monster references are
// carried by id only; resolution belongs to the caller.
type Scene struct {
	ID                    string
	Title                 string
	Description           string
	FirstVisitDescription string
	Exits                 []Exit
	Items                 []Ref
	Monsters              []Ref
	State                 map[string]any
	Lighting              Lighting
	Region                string
	Atmosphere            []string
	Tags                  []string
}
