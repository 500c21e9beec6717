package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// DragTool performs a mouse drag between two coordinates.
type DragTool struct {
	manager *bridge.Manager
}

// NewDragTool creates a new drag tool.
func NewDragTool(manager *bridge.Manager) *DragTool {
	return &DragTool{manager: manager}
}

// Name returns the tool name.
func (t *DragTool) Name() string {
	return "browser_drag"
}

// Description returns the tool description.
func (t *DragTool) Description() string {
	return "Press the mouse at a start coordinate, move to an end coordinate and release. Used for sliders, drag-and-drop and text selection."
}

// Schema returns the tool's JSON schema.
func (t *DragTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"from_x": map[string]interface{}{
				"type":        "number",
				"description": "Horizontal start coordinate, in CSS pixels",
			},
			"from_y": map[string]interface{}{
				"type":        "number",
				"description": "Vertical start coordinate, in CSS pixels",
			},
			"to_x": map[string]interface{}{
				"type":        "number",
				"description": "Horizontal end coordinate, in CSS pixels",
			},
			"to_y": map[string]interface{}{
				"type":        "number",
				"description": "Vertical end coordinate, in CSS pixels",
			},
		},
		[]string{"from_x", "from_y", "to_x", "to_y"},
	)
}

// DragInput defines the input parameters.
type DragInput struct {
	XMLName xml.Name `xml:"arguments"`
	FromX   *float64 `xml:"from_x"`
	FromY   *float64 `xml:"from_y"`
	ToX     *float64 `xml:"to_x"`
	ToY     *float64 `xml:"to_y"`
}

// Execute performs the drag.
func (t *DragTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input DragInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.FromX == nil || input.FromY == nil || input.ToX == nil || input.ToY == nil {
		return "", nil, fmt.Errorf("from_x, from_y, to_x and to_y are all required")
	}

	args := map[string]interface{}{
		"fromX": *input.FromX,
		"fromY": *input.FromY,
		"toX":   *input.ToX,
		"toY":   *input.ToY,
	}

	text, err := callBrowserTool(ctx, t.manager, "browser_drag", args)
	if err != nil {
		return "", nil, err
	}

	output := fmt.Sprintf("Dragged from (%g, %g) to (%g, %g).", *input.FromX, *input.FromY, *input.ToX, *input.ToY)
	if text != "" {
		output += "\n\n" + text
	}
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *DragTool) IsLoopBreaking() bool {
	return false
}
