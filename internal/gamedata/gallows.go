package gamedata

import "github.com/gdamore/tcell/v2"

// GallowsFrame is the art drawn for one visual stage, loaded from YAML.
type GallowsFrame struct {
	ID    string   `yaml:"id"`    // Visual stage identifier (e.g., "stage-3")
	Color string   `yaml:"color"` // Hex color code (e.g., "#FFD700")
	Art   []string `yaml:"art"`   // Lines of ASCII art, top to bottom
}

// TCellColor returns the color as a tcell.Color.
func (f *GallowsFrame) TCellColor() tcell.Color {
	color, err := ParseHexColor(f.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Width returns the length in runes of the widest art line.
func (f *GallowsFrame) Width() int {
	w := 0
	for _, line := range f.Art {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

// GallowsFile represents the structure of gallows.yaml.
type GallowsFile struct {
	Frames []GallowsFrame `yaml:"frames"`
}

// LoadGallows loads gallows frames from the embedded gallows.yaml file.
func LoadGallows() ([]GallowsFrame, error) {
	file, err := Load[GallowsFile]("gallows.yaml")
	if err != nil {
		return nil, err
	}
	return file.Frames, nil
}
