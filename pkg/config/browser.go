package config

import (
	"fmt"
	"sync"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/security/urlpolicy"
)

const (
	// SectionIDBrowser is the identifier for the browser section
	SectionIDBrowser = "browser"

	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
)

// BrowserSection manages browser bridge settings: launch options,
// the protocol client command and the navigation policy patterns.
type BrowserSection struct {
	headless      bool
	windowWidth   int
	windowHeight  int
	clientCommand string
	clientArgs    []string
	allowedURLs   []string
	deniedURLs    []string
	mu            sync.RWMutex
}

// NewBrowserSection creates a browser section with default settings.
// The browser launches with a visible window unless headless is turned
// on explicitly.
func NewBrowserSection() *BrowserSection {
	return &BrowserSection{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
	}
}

// ID returns the section identifier.
func (s *BrowserSection) ID() string {
	return SectionIDBrowser
}

// Title returns the section title.
func (s *BrowserSection) Title() string {
	return "Browser Settings"
}

// Description returns the section description.
func (s *BrowserSection) Description() string {
	return "Configure the controlled browser: headless mode, window size, the protocol client command and URL allow/deny patterns."
}

// Data returns the current configuration data.
func (s *BrowserSection) Data() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"headless":             s.headless,
		"window_width":         s.windowWidth,
		"window_height":        s.windowHeight,
		"client_command":       s.clientCommand,
		"client_args":          append([]string(nil), s.clientArgs...),
		"allowed_url_patterns": append([]string(nil), s.allowedURLs...),
		"denied_url_patterns":  append([]string(nil), s.deniedURLs...),
	}
}

// SetData updates the configuration from the provided data. Unknown
// keys are ignored so older config files keep loading.
func (s *BrowserSection) SetData(data map[string]interface{}) error {
	if data == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := data["headless"]; ok {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("invalid value for 'headless': expected bool, got %T", v)
		}
		s.headless = b
	}

	if v, ok := data["window_width"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("invalid value for 'window_width': %w", err)
		}
		s.windowWidth = n
	}

	if v, ok := data["window_height"]; ok {
		n, err := toInt(v)
		if err != nil {
			return fmt.Errorf("invalid value for 'window_height': %w", err)
		}
		s.windowHeight = n
	}

	if v, ok := data["client_command"]; ok {
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("invalid value for 'client_command': expected string, got %T", v)
		}
		s.clientCommand = str
	}

	if v, ok := data["client_args"]; ok {
		list, err := toStringSlice(v)
		if err != nil {
			return fmt.Errorf("invalid value for 'client_args': %w", err)
		}
		s.clientArgs = list
	}

	if v, ok := data["allowed_url_patterns"]; ok {
		list, err := toStringSlice(v)
		if err != nil {
			return fmt.Errorf("invalid value for 'allowed_url_patterns': %w", err)
		}
		s.allowedURLs = list
	}

	if v, ok := data["denied_url_patterns"]; ok {
		list, err := toStringSlice(v)
		if err != nil {
			return fmt.Errorf("invalid value for 'denied_url_patterns': %w", err)
		}
		s.deniedURLs = list
	}

	return nil
}

// Validate validates the current configuration.
func (s *BrowserSection) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.windowWidth <= 0 {
		return fmt.Errorf("window_width must be positive, got %d", s.windowWidth)
	}
	if s.windowHeight <= 0 {
		return fmt.Errorf("window_height must be positive, got %d", s.windowHeight)
	}

	// Compile the patterns so bad globs fail at save time, not at
	// first navigation.
	if _, err := urlpolicy.New(s.allowedURLs, s.deniedURLs); err != nil {
		return err
	}

	return nil
}

// Reset restores the default configuration.
func (s *BrowserSection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.headless = false
	s.windowWidth = defaultWindowWidth
	s.windowHeight = defaultWindowHeight
	s.clientCommand = ""
	s.clientArgs = nil
	s.allowedURLs = nil
	s.deniedURLs = nil
}

// Headless returns whether the browser launches without a visible window.
func (s *BrowserSection) Headless() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headless
}

// SetHeadless sets headless mode.
func (s *BrowserSection) SetHeadless(headless bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headless = headless
}

// WindowSize returns the configured window width and height.
func (s *BrowserSection) WindowSize() (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowWidth, s.windowHeight
}

// SetWindowSize sets the window dimensions.
func (s *BrowserSection) SetWindowSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windowWidth = width
	s.windowHeight = height
}

// URLPatterns returns the allowed and denied URL pattern lists.
func (s *BrowserSection) URLPatterns() (allowed, denied []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.allowedURLs...), append([]string(nil), s.deniedURLs...)
}

// SetURLPatterns replaces the allowed and denied URL pattern lists.
func (s *BrowserSection) SetURLPatterns(allowed, denied []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allowedURLs = append([]string(nil), allowed...)
	s.deniedURLs = append([]string(nil), denied...)
}

// BuildPolicy compiles the URL patterns into a navigation policy.
func (s *BrowserSection) BuildPolicy() (*urlpolicy.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return urlpolicy.New(s.allowedURLs, s.deniedURLs)
}

// BridgeConfig converts the section into a bridge configuration.
func (s *BrowserSection) BridgeConfig() bridge.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return bridge.Config{
		Headless:      s.headless,
		WindowWidth:   s.windowWidth,
		WindowHeight:  s.windowHeight,
		ClientCommand: s.clientCommand,
		ClientArgs:    append([]string(nil), s.clientArgs...),
	}
}

// toInt coerces a persisted numeric value. JSON unmarshals numbers as
// float64.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

// toStringSlice coerces a persisted list value. JSON unmarshals arrays
// as []interface{}.
func toStringSlice(v interface{}) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...), nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, str)
		}
		return out, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("expected list, got %T", v)
	}
}
