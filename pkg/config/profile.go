package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative browser configuration loaded from a YAML
// file. It overlays the persisted browser section, so fields left out
// of the file keep their stored values.
type Profile struct {
	Headless      *bool    `yaml:"headless" json:"headless"`
	WindowWidth   int      `yaml:"window_width" json:"window_width"`
	WindowHeight  int      `yaml:"window_height" json:"window_height"`
	ClientCommand string   `yaml:"client_command" json:"client_command"`
	ClientArgs    []string `yaml:"client_args" json:"client_args"`
	AllowedURLs   []string `yaml:"allowed_url_patterns" json:"allowed_url_patterns"`
	DeniedURLs    []string `yaml:"denied_url_patterns" json:"denied_url_patterns"`
}

// LoadProfile reads and parses a browser profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	profile := &Profile{}
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	return profile, nil
}

// Apply overlays the profile's set fields onto the browser section and
// validates the result.
func (p *Profile) Apply(section *BrowserSection) error {
	if p.Headless != nil {
		section.SetHeadless(*p.Headless)
	}

	width, height := section.WindowSize()
	if p.WindowWidth > 0 {
		width = p.WindowWidth
	}
	if p.WindowHeight > 0 {
		height = p.WindowHeight
	}
	section.SetWindowSize(width, height)

	if p.ClientCommand != "" || len(p.ClientArgs) > 0 {
		data := map[string]interface{}{}
		if p.ClientCommand != "" {
			data["client_command"] = p.ClientCommand
		}
		if len(p.ClientArgs) > 0 {
			data["client_args"] = p.ClientArgs
		}
		if err := section.SetData(data); err != nil {
			return err
		}
	}

	if p.AllowedURLs != nil || p.DeniedURLs != nil {
		allowed, denied := section.URLPatterns()
		if p.AllowedURLs != nil {
			allowed = p.AllowedURLs
		}
		if p.DeniedURLs != nil {
			denied = p.DeniedURLs
		}
		section.SetURLPatterns(allowed, denied)
	}

	if err := section.Validate(); err != nil {
		return fmt.Errorf("profile produced invalid browser settings: %w", err)
	}

	return nil
}
