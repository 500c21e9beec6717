package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// ScrollTool scrolls the page by a pixel delta.
type ScrollTool struct {
	manager *bridge.Manager
}

// NewScrollTool creates a new scroll tool.
func NewScrollTool(manager *bridge.Manager) *ScrollTool {
	return &ScrollTool{manager: manager}
}

// Name returns the tool name.
func (t *ScrollTool) Name() string {
	return "browser_scroll"
}

// Description returns the tool description.
func (t *ScrollTool) Description() string {
	return "Scroll the page by a horizontal and vertical pixel delta. Positive dy scrolls down, negative scrolls up."
}

// Schema returns the tool's JSON schema.
func (t *ScrollTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"dx": map[string]interface{}{
				"type":        "integer",
				"description": "Horizontal scroll delta in pixels (default: 0)",
			},
			"dy": map[string]interface{}{
				"type":        "integer",
				"description": "Vertical scroll delta in pixels. Positive scrolls down.",
			},
		},
		[]string{"dy"},
	)
}

// ScrollInput defines the input parameters.
type ScrollInput struct {
	XMLName xml.Name `xml:"arguments"`
	DX      *int     `xml:"dx"`
	DY      *int     `xml:"dy"`
}

// Execute scrolls the page.
func (t *ScrollTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input ScrollInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.DY == nil {
		return "", nil, fmt.Errorf("dy is required")
	}

	dx := 0
	if input.DX != nil {
		dx = *input.DX
	}

	args := map[string]interface{}{
		"dx": dx,
		"dy": *input.DY,
	}

	text, err := callBrowserTool(ctx, t.manager, "browser_scroll", args)
	if err != nil {
		return "", nil, err
	}

	output := fmt.Sprintf("Scrolled by (%d, %d).", dx, *input.DY)
	if text != "" {
		output += "\n\n" + text
	}
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ScrollTool) IsLoopBreaking() bool {
	return false
}
