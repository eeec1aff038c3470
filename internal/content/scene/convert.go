package scene

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/cory-johannsen/zork-content/internal/content"
)

// Convert transforms a validated raw scene document into a runtime Scene.
//
// Postcondition: returns a Scene whose Exits slice preserves the document
// order of the exits object, or a ConversionError for an unmappable lighting
// value. State is never nil.
func Convert(doc *content.Doc) (*Scene, error) {
	var d Data
	if err := json.Unmarshal(doc.Raw(), &d); err != nil {
		return nil, err
	}

	lighting, err := ParseLighting(d.Lighting)
	if err != nil {
		return nil, err
	}

	state := d.State
	if state == nil {
		state = map[string]any{}
	}

	return &Scene{
		ID:                    d.ID,
		Title:                 d.Title,
		Description:           d.Description,
		FirstVisitDescription: d.FirstVisitDescription,
		Exits:                 convertExits(doc.Field("exits")),
		Items:                 convertRefs(doc.Field("items")),
		Monsters:              convertRefs(doc.Field("monsters")),
		State:                 state,
		Lighting:              lighting,
		Region:                d.Region,
		Atmosphere:            d.Atmosphere,
		Tags:                  d.Tags,
	}, nil
}

// convertExits walks the exits object in document order. Each value is
// either a bare destination string or an object with a "to" field plus
// optional properties, which are copied through only when present.
func convertExits(exits gjson.Result) []Exit {
	converted := make([]Exit, 0)
	exits.ForEach(func(direction, v gjson.Result) bool {
		e := Exit{Direction: direction.Str}
		switch {
		case v.Type == gjson.String:
			e.To = v.Str
		case v.IsObject():
			e.To = v.Get("to").Str
			e.Locked = v.Get("locked").Bool()
			e.Hidden = v.Get("hidden").Bool()
			e.KeyID = v.Get("keyId").Str
			e.Description = v.Get("description").Str
			if c := v.Get("condition"); c.Exists() {
				e.Condition = ParseCondition(c.Str)
			}
		}
		converted = append(converted, e)
		return true
	})
	return converted
}

// convertRefs normalizes an item/monster list whose entries are either bare
// id strings or reference objects.
func convertRefs(list gjson.Result) []Ref {
	refs := make([]Ref, 0)
	list.ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			refs = append(refs, Ref{ID: v.Str, Visible: true})
		case v.IsObject():
			r := Ref{ID: v.Get("id").Str, Visible: true}
			if vis := v.Get("visible"); vis.Exists() {
				r.Visible = vis.Bool()
			}
			if c := v.Get("condition"); c.Exists() {
				r.Condition = ParseCondition(c.Str)
			}
			refs = append(refs, r)
		}
		return true
	})
	return refs
}

// ParseCondition carries an exit or reference condition forward for the
// downstream condition evaluator. It is an exact pass-through: a leading
// "!" (or anything else) is preserved verbatim and never interpreted here.
func ParseCondition(condition string) string {
	return condition
}
