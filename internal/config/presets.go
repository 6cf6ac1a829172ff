package config

import "sort"

type Preset struct {
	Width  int
	Height int
}

var Presets = map[string]Preset{
	"tiny":   {Width: 10, Height: 5},
	"small":  {Width: 40, Height: 10},
	"medium": {Width: 60, Height: 20},
	"large":  {Width: 80, Height: 30},
	"wide":   {Width: 120, Height: 20},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names in alphabetical order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
