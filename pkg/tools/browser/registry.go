package browser

import (
	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/security/urlpolicy"
	"github.com/entrhq/surf/pkg/tools"
)

// ToolRegistry builds the browser tool set over one shared bridge
// manager.
type ToolRegistry struct {
	manager *bridge.Manager
	policy  *urlpolicy.Policy
	tools   []tools.Tool
}

// NewToolRegistry creates a new browser tool registry. policy may be
// nil to allow all navigation.
func NewToolRegistry(manager *bridge.Manager, policy *urlpolicy.Policy) *ToolRegistry {
	return &ToolRegistry{
		manager: manager,
		policy:  policy,
	}
}

// RegisterTools creates and returns all browser tools. The set is built
// once and reused.
func (r *ToolRegistry) RegisterTools() []tools.Tool {
	if len(r.tools) > 0 {
		return r.tools
	}

	r.tools = append(r.tools,
		NewNavigateTool(r.manager, r.policy),
		NewReadPageTool(r.manager),
		NewClickTool(r.manager),
		NewTypeTool(r.manager),
		NewDragTool(r.manager),
		NewScrollTool(r.manager),
		NewEvaluateTool(r.manager),
	)

	return r.tools
}

// GetTools returns the current set of registered tools.
func (r *ToolRegistry) GetTools() []tools.Tool {
	return r.tools
}

// GetManager returns the underlying bridge manager.
func (r *ToolRegistry) GetManager() *bridge.Manager {
	return r.manager
}
