package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// TypeTool types text into the currently focused element.
type TypeTool struct {
	manager *bridge.Manager
}

// NewTypeTool creates a new type tool.
func NewTypeTool(manager *bridge.Manager) *TypeTool {
	return &TypeTool{manager: manager}
}

// Name returns the tool name.
func (t *TypeTool) Name() string {
	return "browser_type"
}

// Description returns the tool description.
func (t *TypeTool) Description() string {
	return "Type text into the currently focused element, as if entered on the keyboard. Click an input first to focus it. Optionally presses Enter afterwards to submit."
}

// Schema returns the tool's JSON schema.
func (t *TypeTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text to type into the focused element",
			},
			"submit": map[string]interface{}{
				"type":        "boolean",
				"description": "Press Enter after typing (default: false)",
			},
		},
		[]string{"text"},
	)
}

// TypeInput defines the input parameters.
type TypeInput struct {
	XMLName xml.Name `xml:"arguments"`
	Text    string   `xml:"text"`
	Submit  *bool    `xml:"submit"`
}

// Execute types the given text.
func (t *TypeTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input TypeInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Text == "" {
		return "", nil, fmt.Errorf("text is required")
	}

	args := map[string]interface{}{
		"text": input.Text,
	}
	if input.Submit != nil && *input.Submit {
		args["submit"] = true
	}

	text, err := callBrowserTool(ctx, t.manager, "browser_type", args)
	if err != nil {
		return "", nil, err
	}

	output := fmt.Sprintf("Typed %d characters.", len(input.Text))
	if text != "" {
		output += "\n\n" + text
	}
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *TypeTool) IsLoopBreaking() bool {
	return false
}
