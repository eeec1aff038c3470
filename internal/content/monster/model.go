// Package monster loads monster content files and converts them into runtime
// monsters. Unlike the item loader, every operation here re-reads from disk;
// the loader holds no state between calls.
package monster

import "github.com/cory-johannsen/zork-content/internal/content"

const (
	vertical = "monster"
	entity   = "Monster"
)

// Type classifies a monster.
type Type string

const (
	TypeHumanoid      Type = "humanoid"
	TypeCreature      Type = "creature"
	TypeEnvironmental Type = "environmental"
)

var typeFromData = map[string]Type{
	"humanoid":      TypeHumanoid,
	"creature":      TypeCreature,
	"environmental": TypeEnvironmental,
}

// ParseType coerces a raw type string to its Type constant.
//
// Postcondition: returns a valid Type, or a ConversionError whose message is
// "Invalid monster type: <value>".
func ParseType(raw string) (Type, error) {
	if t, ok := typeFromData[raw]; ok {
		return t, nil
	}
	return "", &content.ConversionError{What: "monster type", Value: raw}
}

// State is a monster's behavioral state. Raw files carry the uppercase
// extractor form ("WANDERING"); an unmappable value degrades to StateIdle
// with a logged warning rather than failing the load.
type State string

const (
	StateIdle      State = "idle"
	StateAlert     State = "alert"
	StateHostile   State = "hostile"
	StateFleeing   State = "fleeing"
	StateLurking   State = "lurking"
	StateGuarding  State = "guarding"
	StateWandering State = "wandering"
	StateSleeping  State = "sleeping"
	StateDead      State = "dead"
)

var stateFromData = map[string]State{
	"IDLE":      StateIdle,
	"ALERT":     StateAlert,
	"HOSTILE":   StateHostile,
	"FLEEING":   StateFleeing,
	"LURKING":   StateLurking,
	"GUARDING":  StateGuarding,
	"WANDERING": StateWandering,
	"SLEEPING":  StateSleeping,
	"DEAD":      StateDead,
}

// MovementPattern describes how a monster moves between scenes.
type MovementPattern string

const (
	MoveStationary MovementPattern = "stationary"
	MoveFollow     MovementPattern = "follow"
	MoveFlee       MovementPattern = "flee"
	MovePatrol     MovementPattern = "patrol"
	MoveRandom     MovementPattern = "random"
)

// Data is the raw shape of a monster content file.
type Data struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	ExamineText     string          `json:"examineText"`
	StartingSceneID string          `json:"startingSceneId"`
	CurrentSceneID  string          `json:"currentSceneId"`
	Health          int             `json:"health"`
	MaxHealth       int             `json:"maxHealth"`
	State           string          `json:"state"`
	Inventory       []string        `json:"inventory"`
	Synonyms        []string        `json:"synonyms"`
	Flags           map[string]bool `json:"flags"`
	MovementDemon   string          `json:"movementDemon"`
	BehaviorFunc    string          `json:"behaviorFunction"`
	MovementData    *MovementData   `json:"movementPattern"`
	Properties      map[string]any  `json:"properties"`
}

// MovementData is the optional structured movement block some content files
// carry alongside (or instead of) a movementDemon name.
type MovementData struct {
	Type string `json:"type"`
	Data struct {
		ValidScenes    []string `json:"validScenes"`
		ExcludedScenes []string `json:"excludedScenes"`
	} `json:"data"`
}

var requiredFields = []string{
	"id", "name", "type", "description", "examineText", "startingSceneId",
	"health", "maxHealth", "inventory", "synonyms", "flags", "properties",
}

var arrayFields = []string{"inventory", "synonyms"}

// Monster is the runtime form of a monster.
type Monster struct {
	ID              string
	Name            string
	Type            Type
	Description     string
	ExamineText     string
	StartingSceneID string
	// CurrentSceneID starts as currentSceneId when the file carries one,
	// falling back to startingSceneId.
	CurrentSceneID  string
	Health          int
	MaxHealth       int
	State           State
	MovementPattern MovementPattern
	Behaviors       []string
	Inventory       []string
	Synonyms        []string
	Flags           map[string]bool
	Variables       map[string]any
	AllowedScenes   []string
	Properties      map[string]any
}
