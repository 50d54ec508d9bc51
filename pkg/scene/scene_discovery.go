package scene

import (
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
	build       func(seed int64) *Scene
}

var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		Description: "Lambertian, metal and glass spheres with depth of field",
		build:       func(int64) *Scene { return NewDefaultScene() },
	},
	{
		ID:          "simple",
		Description: "One diffuse sphere on a huge ground sphere",
		build:       func(int64) *Scene { return NewSimpleScene() },
	},
	{
		ID:          "random",
		Description: "About 480 seeded random spheres around three feature spheres",
		build:       NewRandomScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	for i := range scenes {
		scenes[i].DisplayName = titleCase(scenes[i].ID)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of all built-in scenes
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.ID)
	}
	return names
}

// lookup finds a scene by ID, ignoring case and surrounding whitespace
func lookup(name string) (SceneInfo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, info := range builtinScenes {
		if info.ID == name {
			return info, true
		}
	}
	return SceneInfo{}, false
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
