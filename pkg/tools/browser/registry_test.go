package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolRegistry_RegisterTools(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	registry := NewToolRegistry(manager, nil)

	toolSet := registry.RegisterTools()
	require.Len(t, toolSet, 7)

	names := make(map[string]bool)
	for _, tool := range toolSet {
		names[tool.Name()] = true
	}
	assert.True(t, names["browser_navigate"])
	assert.True(t, names["browser_read"])
	assert.True(t, names["browser_click"])
	assert.True(t, names["browser_type"])
	assert.True(t, names["browser_drag"])
	assert.True(t, names["browser_scroll"])
	assert.True(t, names["browser_evaluate"])
}

func TestToolRegistry_RegisterToolsIsIdempotent(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	registry := NewToolRegistry(manager, nil)

	first := registry.RegisterTools()
	second := registry.RegisterTools()
	assert.Len(t, second, len(first))
	assert.Equal(t, first, registry.GetTools())
}

func TestToolRegistry_GetManager(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	registry := NewToolRegistry(manager, nil)
	assert.Same(t, manager, registry.GetManager())
}
