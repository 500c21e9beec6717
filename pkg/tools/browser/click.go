package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// ClickTool clicks at a coordinate in the controlled browser.
type ClickTool struct {
	manager *bridge.Manager
}

// NewClickTool creates a new click tool.
func NewClickTool(manager *bridge.Manager) *ClickTool {
	return &ClickTool{manager: manager}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "browser_click"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click at a coordinate in the browser window. Supports single and double clicks, and different mouse buttons. Coordinates are in CSS pixels from the top-left corner of the viewport."
}

// Schema returns the tool's JSON schema.
func (t *ClickTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"x": map[string]interface{}{
				"type":        "number",
				"description": "Horizontal coordinate to click, in CSS pixels",
			},
			"y": map[string]interface{}{
				"type":        "number",
				"description": "Vertical coordinate to click, in CSS pixels",
			},
			"button": map[string]interface{}{
				"type":        "string",
				"description": "Mouse button to use: 'left' (default), 'right', or 'middle'",
			},
			"click_count": map[string]interface{}{
				"type":        "integer",
				"description": "Number of clicks: 1 (default) for single click, 2 for double click",
			},
		},
		[]string{"x", "y"},
	)
}

// ClickInput defines the input parameters.
type ClickInput struct {
	XMLName    xml.Name `xml:"arguments"`
	X          *float64 `xml:"x"`
	Y          *float64 `xml:"y"`
	Button     string   `xml:"button"`
	ClickCount *int     `xml:"click_count"`
}

// Execute clicks at the given coordinate.
func (t *ClickTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input ClickInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.X == nil || input.Y == nil {
		return "", nil, fmt.Errorf("x and y coordinates are required")
	}
	if *input.X < 0 || *input.Y < 0 {
		return "", nil, fmt.Errorf("coordinates must be non-negative")
	}

	args := map[string]interface{}{
		"x": *input.X,
		"y": *input.Y,
	}

	if input.Button != "" {
		validButtons := map[string]bool{
			"left":   true,
			"right":  true,
			"middle": true,
		}
		if !validButtons[input.Button] {
			return "", nil, fmt.Errorf("invalid button: %s (must be 'left', 'right', or 'middle')", input.Button)
		}
		args["button"] = input.Button
	}

	if input.ClickCount != nil {
		if *input.ClickCount < 1 || *input.ClickCount > 3 {
			return "", nil, fmt.Errorf("click_count must be between 1 and 3")
		}
		args["clickCount"] = *input.ClickCount
	}

	text, err := callBrowserTool(ctx, t.manager, "browser_click", args)
	if err != nil {
		return "", nil, err
	}

	output := fmt.Sprintf("Clicked at (%g, %g).", *input.X, *input.Y)
	if text != "" {
		output += "\n\n" + text
	}
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ClickTool) IsLoopBreaking() bool {
	return false
}
