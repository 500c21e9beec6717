package mcp

import (
	"fmt"
	"sync"
)

// Registry is a named store of protocol clients. Each name maps to at
// most one client: registering an existing name keeps the original
// client so repeated registrations against the same server never spawn
// duplicates.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Lookup returns the client registered under name, if any.
func (r *Registry) Lookup(name string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[name]
	return client, ok
}

// Register creates a client for cfg and stores it under name. The
// client is not connected; callers connect it when needed. Registering
// a name that already exists is a no-op.
func (r *Registry) Register(name string, cfg ServerConfig) error {
	if name == "" {
		return fmt.Errorf("client name is required")
	}
	cfg.Name = name

	client, err := NewClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[name]; exists {
		return nil
	}

	r.clients[name] = client
	return nil
}

// Names returns all registered client names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}

// Close closes every registered client and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for name, client := range r.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close client %q: %w", name, err)
		}
		delete(r.clients, name)
	}
	return firstErr
}
