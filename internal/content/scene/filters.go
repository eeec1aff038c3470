package scene

import "github.com/cory-johannsen/zork-content/internal/content"

// Filters over an already-loaded scene slice. All matching is a linear scan
// with case-sensitive exact comparison; none of these touch disk.

// ByID returns the scene with the given id.
//
// Postcondition: returns the scene, or a NotFoundError whose message names
// the id.
func ByID(scenes []*Scene, id string) (*Scene, error) {
	for _, s := range scenes {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &content.NotFoundError{Entity: entity, ID: id}
}

// Exists reports whether a scene with the given id is in the slice.
func Exists(scenes []*Scene, id string) bool {
	_, err := ByID(scenes, id)
	return err == nil
}

// ByRegion returns the scenes in the given region.
func ByRegion(scenes []*Scene, region string) []*Scene {
	matches := make([]*Scene, 0)
	for _, s := range scenes {
		if s.Region == region {
			matches = append(matches, s)
		}
	}
	return matches
}

// ByLighting returns the scenes with the given lighting level.
func ByLighting(scenes []*Scene, lighting Lighting) []*Scene {
	matches := make([]*Scene, 0)
	for _, s := range scenes {
		if s.Lighting == lighting {
			matches = append(matches, s)
		}
	}
	return matches
}

// ConnectedTo returns the scenes with at least one exit leading to targetID.
func ConnectedTo(scenes []*Scene, targetID string) []*Scene {
	matches := make([]*Scene, 0)
	for _, s := range scenes {
		for _, e := range s.Exits {
			if e.To == targetID {
				matches = append(matches, s)
				break
			}
		}
	}
	return matches
}
