package browser

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/security/urlpolicy"
	"github.com/entrhq/surf/pkg/tools"
)

// NavigateTool navigates the controlled page to a URL, subject to the
// navigation policy.
type NavigateTool struct {
	manager *bridge.Manager
	policy  *urlpolicy.Policy
}

// NewNavigateTool creates a new navigate tool. A nil policy allows all
// URLs.
func NewNavigateTool(manager *bridge.Manager, policy *urlpolicy.Policy) *NavigateTool {
	return &NavigateTool{manager: manager, policy: policy}
}

// Name returns the tool name.
func (t *NavigateTool) Name() string {
	return "browser_navigate"
}

// Description returns the tool description.
func (t *NavigateTool) Description() string {
	return "Navigate the browser to a URL. Waits for the page to load before returning."
}

// Schema returns the tool's JSON schema.
func (t *NavigateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "Absolute URL to navigate to (http or https)",
			},
			"wait_until": map[string]interface{}{
				"type":        "string",
				"description": "When to consider navigation done: 'load' (default), 'domcontentloaded', or 'networkidle'",
			},
		},
		[]string{"url"},
	)
}

// NavigateInput defines the input parameters.
type NavigateInput struct {
	XMLName   xml.Name `xml:"arguments"`
	URL       string   `xml:"url"`
	WaitUntil string   `xml:"wait_until"`
}

// Execute navigates to the URL.
func (t *NavigateTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input NavigateInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.URL == "" {
		return "", nil, fmt.Errorf("url is required")
	}
	if !strings.HasPrefix(input.URL, "http://") && !strings.HasPrefix(input.URL, "https://") {
		return "", nil, fmt.Errorf("url must start with http:// or https://")
	}

	if input.WaitUntil != "" {
		validStates := map[string]bool{
			"load":             true,
			"domcontentloaded": true,
			"networkidle":      true,
		}
		if !validStates[input.WaitUntil] {
			return "", nil, fmt.Errorf("invalid wait_until: %s (must be 'load', 'domcontentloaded', or 'networkidle')", input.WaitUntil)
		}
	}

	if !t.policy.Allows(input.URL) {
		return "", nil, fmt.Errorf("navigation to %s is blocked by policy", input.URL)
	}

	page, err := t.manager.GetPage(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("browser bridge unavailable: %w", err)
	}

	if err := page.Goto(input.URL, input.WaitUntil); err != nil {
		return "", nil, fmt.Errorf("navigation failed: %w", err)
	}

	title, _ := page.Title()
	output := fmt.Sprintf("Navigated to %s", page.URL())
	if title != "" {
		output += fmt.Sprintf("\nTitle: %s", title)
	}
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *NavigateTool) IsLoopBreaking() bool {
	return false
}
