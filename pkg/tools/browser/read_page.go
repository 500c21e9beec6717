package browser

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// DefaultMaxLength limits how much outlined text a read returns.
const DefaultMaxLength = 10000

// ReadPageTool returns a reduced text outline of the current page.
type ReadPageTool struct {
	manager *bridge.Manager
}

// NewReadPageTool creates a new read tool.
func NewReadPageTool(manager *bridge.Manager) *ReadPageTool {
	return &ReadPageTool{manager: manager}
}

// Name returns the tool name.
func (t *ReadPageTool) Name() string {
	return "browser_read"
}

// Description returns the tool description.
func (t *ReadPageTool) Description() string {
	return "Read the current page as a reduced text outline: headings, visible text, links, buttons and form inputs, with scripts and styling removed."
}

// Schema returns the tool's JSON schema.
func (t *ReadPageTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"max_length": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of characters to return (default: 10000)",
			},
		},
		nil,
	)
}

// ReadPageInput defines the input parameters.
type ReadPageInput struct {
	XMLName   xml.Name `xml:"arguments"`
	MaxLength *int     `xml:"max_length"`
}

// Execute reads and outlines the current page.
func (t *ReadPageTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input ReadPageInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	maxLength := DefaultMaxLength
	if input.MaxLength != nil && *input.MaxLength > 0 {
		maxLength = *input.MaxLength
	}

	page, err := t.manager.GetPage(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("browser bridge unavailable: %w", err)
	}

	content, err := page.Content()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read page content: %w", err)
	}

	outline, err := outlinePage(content, maxLength)
	if err != nil {
		return "", nil, err
	}

	var output string
	if outline.Title != "" {
		output = fmt.Sprintf("# %s\n", outline.Title)
	}
	output += fmt.Sprintf("URL: %s\n", page.URL())
	if outline.Description != "" {
		output += fmt.Sprintf("Description: %s\n", outline.Description)
	}
	output += "\n" + outline.Text
	if outline.Truncated {
		output += fmt.Sprintf("\n\n[Content truncated at %d characters]", maxLength)
	}

	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *ReadPageTool) IsLoopBreaking() bool {
	return false
}
