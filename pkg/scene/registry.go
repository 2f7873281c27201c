package scene

import "fmt"

// Info describes a built-in scene for pickers and the web UI
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// builtins maps scene IDs to their constructors. Listed explicitly so the
// CLI and the web server agree on what exists.
var builtins = []struct {
	info  Info
	build func() *Scene
}{
	{
		info: Info{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three small spheres resting on a giant ground sphere",
		},
		build: NewDefaultScene,
	},
	{
		info: Info{
			ID:          "rgb",
			Name:        "RGB Spheres",
			Description: "The red, green and blue spheres with no ground",
		},
		build: NewRGBScene,
	},
}

// ByName builds the built-in scene with the given ID
func ByName(name string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene: %q", name)
}

// List returns the metadata of every built-in scene in registration order
func List() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, b := range builtins {
		infos = append(infos, b.info)
	}
	return infos
}
