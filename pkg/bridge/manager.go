package bridge

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/entrhq/surf/pkg/logging"
	"github.com/entrhq/surf/pkg/mcp"
)

// clientNamePrefix is the fixed prefix for port-derived client names.
const clientNamePrefix = "playwright-"

// Default browser window dimensions.
const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
)

// Default protocol server process, overridable through Config.
const (
	DefaultClientCommand = "npx"
	defaultClientPackage = "@playwright/mcp@latest"
)

// ClientName derives the registry name for the protocol client bound to
// port. It is a pure function of the port: equal ports always yield
// equal names.
func ClientName(port int) string {
	return clientNamePrefix + strconv.Itoa(port)
}

// Config controls how a Manager launches its browser and protocol client.
// The zero value is usable: headed browser, default window size, default
// protocol server command.
type Config struct {
	// Headless launches the browser without a visible window.
	Headless bool

	// WindowWidth and WindowHeight fix the browser window size. Zero
	// selects the defaults.
	WindowWidth  int
	WindowHeight int

	// ClientCommand and ClientArgs override the protocol server process.
	// The Manager always appends the --browser-url flag pointing at its
	// own debug port.
	ClientCommand string
	ClientArgs    []string
}

// Manager owns one session: at most one allocated port, one browser,
// one page and one protocol client. All four fields are private and
// repaired on demand; see the package documentation for the stage
// ordering.
type Manager struct {
	driver   Driver
	registry ClientRegistry
	cfg      Config
	log      *logging.Logger

	// allocate is AllocatePort, replaceable in tests.
	allocate func() (int, error)

	mu      sync.Mutex
	port    int
	browser Browser
	page    Page
	client  ProtocolClient
}

// NewManager creates a Manager that launches browsers through driver and
// resolves protocol clients through registry.
func NewManager(driver Driver, registry ClientRegistry, cfg Config) *Manager {
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = DefaultWindowWidth
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = DefaultWindowHeight
	}
	if cfg.ClientCommand == "" {
		cfg.ClientCommand = DefaultClientCommand
		if len(cfg.ClientArgs) == 0 {
			cfg.ClientArgs = []string{defaultClientPackage}
		}
	}

	log, _ := logging.NewLogger("bridge")

	return &Manager{
		driver:   driver,
		registry: registry,
		cfg:      cfg,
		log:      log,
		allocate: AllocatePort,
	}
}

// EnsureReady brings the session to a fully usable state. It is
// idempotent: stages that are already satisfied are skipped, so repeated
// calls after a failure retry only the failed-and-later stages.
func (m *Manager) EnsureReady(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureLocked(ctx)
}

// ensureLocked runs the three lifecycle stages. Callers must hold m.mu.
func (m *Manager) ensureLocked(ctx context.Context) error {
	// Port stage. Allocated at most once per Manager; later failures
	// never trigger re-allocation.
	if m.port == 0 {
		port, err := m.allocate()
		if err != nil {
			return err
		}
		m.port = port
		m.log.Infof("allocated browser debug port %d", port)
	}

	// Browser stage. A held browser is reused while connected; a dead
	// one is replaced together with its page.
	if m.browser == nil || !m.browser.IsConnected() {
		opts := LaunchOptions{
			Headless: m.cfg.Headless,
			Args: []string{
				fmt.Sprintf("--remote-debugging-port=%d", m.port),
				fmt.Sprintf("--window-size=%d,%d", m.cfg.WindowWidth, m.cfg.WindowHeight),
			},
		}

		browser, err := m.driver.Launch(opts)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLaunch, err)
		}

		browserCtx, err := browser.NewContext()
		if err != nil {
			return fmt.Errorf("%w: context creation: %v", ErrLaunch, err)
		}

		page, err := browserCtx.NewPage()
		if err != nil {
			return fmt.Errorf("%w: page creation: %v", ErrLaunch, err)
		}

		m.browser = browser
		m.page = page
		m.log.Infof("launched browser on port %d (headless=%t)", m.port, m.cfg.Headless)
	}

	// Client stage. The name is derived from the port, so repeated
	// ensures resolve to the same registered client.
	name := ClientName(m.port)
	client, ok := m.registry.Lookup(name)
	if !ok {
		cfg := mcp.ServerConfig{
			Name:    name,
			Command: m.cfg.ClientCommand,
			Args: append(append([]string{}, m.cfg.ClientArgs...),
				"--browser-url", fmt.Sprintf("http://127.0.0.1:%d", m.port)),
		}
		if err := m.registry.Register(name, cfg); err != nil {
			return fmt.Errorf("%w: %v", ErrClientInit, err)
		}
		client, ok = m.registry.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: client %q missing after registration", ErrClientInit, name)
		}
		m.log.Infof("registered protocol client %q", name)
	}

	if client.Status() != mcp.StatusConnected {
		if err := client.Connect(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrClientInit, err)
		}
	}

	m.client = client
	return nil
}

// GetClient returns the ready protocol client. A stored, connected
// client is returned without any lifecycle work; otherwise the full
// ensure runs first.
func (m *Manager) GetClient(ctx context.Context) (ProtocolClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil && m.client.Status() == mcp.StatusConnected {
		return m.client, nil
	}

	if err := m.ensureLocked(ctx); err != nil {
		return nil, err
	}

	if m.client == nil {
		return nil, fmt.Errorf("%w: protocol client", ErrNotAvailable)
	}
	return m.client, nil
}

// GetPage returns the ready page handle, running the lifecycle first if
// no page is stored yet.
func (m *Manager) GetPage(ctx context.Context) (Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.page == nil {
		if err := m.ensureLocked(ctx); err != nil {
			return nil, err
		}
	}

	if m.page == nil {
		return nil, fmt.Errorf("%w: page", ErrNotAvailable)
	}
	return m.page, nil
}

// Port returns the allocated debug port, or 0 if none has been
// allocated yet.
func (m *Manager) Port() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.port
}

// Close releases the session's resources. This is the external shutdown
// path; the lifecycle itself never closes handles except when replacing
// a dead browser.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	if m.page != nil {
		if err := m.page.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.page = nil
	}
	if m.browser != nil {
		if err := m.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.browser = nil
	}
	m.client = nil
	return firstErr
}
