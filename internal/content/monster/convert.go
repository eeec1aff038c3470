package monster

import (
	"strings"

	"go.uber.org/zap"
)

// stateFlags is the ordered rule table for inferring a state from boolean
// flags. Earlier rows win. It only applies when the file carries no usable
// explicit state.
var stateFlags = []struct {
	Flag  string
	State State
}{
	{"INVISIBLE", StateLurking},
	{"VILLAIN", StateHostile},
}

// movementKeywords is the ordered rule table mapping a movement demon name
// (e.g. "FOLLOW-DEMON") to a pattern by substring match. No match, or no
// demon at all, means stationary.
var movementKeywords = []struct {
	Keyword string
	Pattern MovementPattern
}{
	{"FOLLOW", MoveFollow},
	{"FLEE", MoveFlee},
	{"PATROL", MovePatrol},
	{"RANDOM", MoveRandom},
}

// defaultVariables seeds per-monster state variables before the file's own
// properties.variables are merged on top. Monsters without an entry start
// with an empty map.
var defaultVariables = map[string]map[string]any{
	"thief": {
		"hasStolen":   false,
		"stolenItems": []any{},
	},
	"troll": {
		"hasBeenPaid":     false,
		"guardingPassage": true,
	},
	"cyclops": {
		"isAsleep": false,
		"hasEaten": false,
	},
}

// Convert transforms validated raw data into a runtime Monster.
//
// Postcondition: returns a Monster with canonical Type, or a ConversionError
// when the type has no mapping. An unmappable explicit state never fails:
// it logs a warning through logger and the state falls back to flag
// inference, then to idle.
func Convert(d *Data, logger *zap.Logger) (*Monster, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	typ, err := ParseType(d.Type)
	if err != nil {
		return nil, err
	}

	currentScene := d.CurrentSceneID
	if currentScene == "" {
		currentScene = d.StartingSceneID
	}

	flags := d.Flags
	if flags == nil {
		flags = map[string]bool{}
	}

	return &Monster{
		ID:              d.ID,
		Name:            d.Name,
		Type:            typ,
		Description:     d.Description,
		ExamineText:     d.ExamineText,
		StartingSceneID: d.StartingSceneID,
		CurrentSceneID:  currentScene,
		Health:          d.Health,
		MaxHealth:       d.MaxHealth,
		State:           inferState(d, logger),
		MovementPattern: inferMovement(d),
		Behaviors:       inferBehaviors(d),
		Inventory:       d.Inventory,
		Synonyms:        d.Synonyms,
		Flags:           flags,
		Variables:       buildVariables(d),
		AllowedScenes:   allowedScenes(d),
		Properties:      d.Properties,
	}, nil
}

// inferState resolves the monster's state: a valid explicit state wins; an
// invalid one is logged and ignored, letting the flag table (then the idle
// default) decide.
func inferState(d *Data, logger *zap.Logger) State {
	if d.State != "" {
		if s, ok := stateFromData[d.State]; ok {
			return s
		}
		logger.Warn("Invalid monster state, defaulting to idle",
			zap.String("monster", d.ID),
			zap.String("state", d.State))
	}
	for _, rule := range stateFlags {
		if d.Flags[rule.Flag] {
			return rule.State
		}
	}
	return StateIdle
}

func inferMovement(d *Data) MovementPattern {
	if d.MovementDemon == "" {
		return MoveStationary
	}
	for _, rule := range movementKeywords {
		if strings.Contains(d.MovementDemon, rule.Keyword) {
			return rule.Pattern
		}
	}
	return MoveStationary
}

// inferBehaviors splits the behavior function name on hyphens, lowercases
// the tokens, drops the literal FUNCTION token, and unions the result with
// properties.behaviors, preserving first-seen order.
func inferBehaviors(d *Data) []string {
	behaviors := make([]string, 0)
	seen := make(map[string]bool)
	add := func(b string) {
		if b == "" || seen[b] {
			return
		}
		seen[b] = true
		behaviors = append(behaviors, b)
	}

	if d.BehaviorFunc != "" {
		for _, tok := range strings.Split(d.BehaviorFunc, "-") {
			tok = strings.ToLower(tok)
			if tok == "function" {
				continue
			}
			add(tok)
		}
	}
	if extra, ok := d.Properties["behaviors"].([]any); ok {
		for _, b := range extra {
			if s, ok := b.(string); ok {
				add(s)
			}
		}
	}
	return behaviors
}

// buildVariables copies the monster's built-in variable defaults and
// shallow-merges properties.variables on top; file-supplied values win,
// including overrides of a built-in default.
func buildVariables(d *Data) map[string]any {
	vars := make(map[string]any)
	for k, v := range defaultVariables[d.ID] {
		vars[k] = v
	}
	if supplied, ok := d.Properties["variables"].(map[string]any); ok {
		for k, v := range supplied {
			vars[k] = v
		}
	}
	return vars
}

// allowedScenes prefers the structured movement block's valid scene list and
// falls back to properties.allowedScenes.
func allowedScenes(d *Data) []string {
	if d.MovementData != nil && len(d.MovementData.Data.ValidScenes) > 0 {
		return d.MovementData.Data.ValidScenes
	}
	raw, ok := d.Properties["allowedScenes"].([]any)
	if !ok {
		return nil
	}
	scenes := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			scenes = append(scenes, s)
		}
	}
	return scenes
}
