package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorSet is a group of 24-bit colors.
type ColorSet struct {
	Foreground uint32 `yaml:"foreground"`
	Background uint32 `yaml:"background"`
	Highlight  uint32 `yaml:"highlight"`
	Border     uint32 `yaml:"border"`
}

// Config is the theme file: one color set for focused windows and one for the rest.
type Config struct {
	Focus  ColorSet `yaml:"focus"`
	Normal ColorSet `yaml:"normal"`
}

const defaultFile = `# fetched theme, colors are 0xRRGGBB
focus:
  foreground: 0xf5e0dc
  background: 0x1e1e2e
  highlight: 0x45475a
  border: 0xf9e2af
normal:
  foreground: 0xcdd6f4
  background: 0x181825
  highlight: 0x313244
  border: 0x6c7086
`

// Default returns the built-in theme.
func Default() Config {
	return Config{
		Focus: ColorSet{
			Foreground: 0xf5e0dc,
			Background: 0x1e1e2e,
			Highlight:  0x45475a,
			Border:     0xf9e2af,
		},
		Normal: ColorSet{
			Foreground: 0xcdd6f4,
			Background: 0x181825,
			Highlight:  0x313244,
			Border:     0x6c7086,
		},
	}
}

// Load reads the theme at path. When the file does not exist the default
// theme is written there and returned.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := writeDefault(path); err != nil {
			return Config{}, err
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read theme: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	return cfg, nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create theme directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultFile), 0644); err != nil {
		return fmt.Errorf("failed to write default theme: %w", err)
	}
	return nil
}

// Color converts a 24-bit value into a lipgloss color.
func Color(v uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", v&0xffffff))
}

// Set returns the focus set when focused and the normal set otherwise.
func (c Config) Set(focused bool) ColorSet {
	if focused {
		return c.Focus
	}
	return c.Normal
}

// Window returns the bordered style of a top-level window.
func (c Config) Window(focused bool) lipgloss.Style {
	set := c.Set(focused)
	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Color(set.Border)).
		Foreground(Color(c.Normal.Foreground))
	if focused {
		style = style.Background(Color(set.Background))
	}
	return style
}

// Title returns the style of a window title.
func (c Config) Title(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Color(c.Set(focused).Border)).
		Bold(focused)
}

// Tab returns the style of a tab label.
func (c Config) Tab(active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return style.
			Foreground(Color(c.Focus.Foreground)).
			Background(Color(c.Focus.Highlight)).
			Bold(true)
	}
	return style.Foreground(Color(c.Normal.Foreground))
}

// ListItem returns the style of a list row.
func (c Config) ListItem(selected, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !selected {
		return style.Foreground(Color(c.Normal.Foreground))
	}
	set := c.Set(focused)
	return style.
		Foreground(Color(set.Foreground)).
		Background(Color(set.Highlight)).
		Bold(focused)
}
