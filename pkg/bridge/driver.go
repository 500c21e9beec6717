package bridge

import (
	"context"

	"github.com/entrhq/surf/pkg/mcp"
)

// LaunchOptions configures a browser launch.
type LaunchOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Args are extra command-line arguments passed to the browser process
	Args []string
}

// Driver launches browser processes. The production implementation wraps
// Playwright; tests substitute fakes.
type Driver interface {
	Launch(opts LaunchOptions) (Browser, error)
}

// Browser is a handle to a running browser process.
type Browser interface {
	// IsConnected reports whether the underlying process is still alive
	// and controllable.
	IsConnected() bool

	// NewContext opens an isolated browsing context.
	NewContext() (BrowserContext, error)

	// Close terminates the browser process.
	Close() error
}

// BrowserContext is an isolated browsing context within a browser.
type BrowserContext interface {
	NewPage() (Page, error)
}

// Page is the single interactive surface of a browsing context.
type Page interface {
	// URL returns the page's current URL.
	URL() string

	// Title returns the current document title.
	Title() (string, error)

	// Content returns the full serialized HTML of the page.
	Content() (string, error)

	// Goto navigates to url. waitUntil may be "load", "domcontentloaded"
	// or "networkidle"; empty means the driver default.
	Goto(url string, waitUntil string) error

	// Evaluate runs an expression in the page, binding arg as a
	// structured parameter. The driver is responsible for safe parameter
	// encoding; callers must not splice values into the expression text.
	Evaluate(expression string, arg interface{}) (interface{}, error)

	// Close closes the page.
	Close() error
}

// ProtocolClient is the control-protocol connection used to issue
// remote browser commands by name with structured arguments.
type ProtocolClient interface {
	// Status returns mcp.StatusConnected when the connection is usable.
	Status() string

	// Connect establishes (or re-establishes) the connection.
	Connect(ctx context.Context) error

	// CallTool invokes a named tool with structured arguments.
	CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.ToolCallResult, error)
}

// ClientRegistry resolves protocol clients by name. Registration is
// performed at most once per name; subsequent lookups return the same
// client.
type ClientRegistry interface {
	Lookup(name string) (ProtocolClient, bool)
	Register(name string, cfg mcp.ServerConfig) error
}

// registryAdapter bridges *mcp.Registry to the ClientRegistry interface.
type registryAdapter struct {
	registry *mcp.Registry
}

// NewClientRegistry wraps an mcp.Registry for use by a Manager.
func NewClientRegistry(registry *mcp.Registry) ClientRegistry {
	return &registryAdapter{registry: registry}
}

func (a *registryAdapter) Lookup(name string) (ProtocolClient, bool) {
	client, ok := a.registry.Lookup(name)
	if !ok {
		return nil, false
	}
	return client, true
}

func (a *registryAdapter) Register(name string, cfg mcp.ServerConfig) error {
	return a.registry.Register(name, cfg)
}
