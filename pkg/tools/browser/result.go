package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/mcp"
)

// callBrowserTool resolves the protocol client and invokes a named
// browser command, normalizing the result to text.
func callBrowserTool(ctx context.Context, manager *bridge.Manager, name string, args map[string]interface{}) (string, error) {
	client, err := manager.GetClient(ctx)
	if err != nil {
		return "", fmt.Errorf("browser bridge unavailable: %w", err)
	}

	result, err := client.CallTool(ctx, name, args)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	text := flattenContent(result)
	if result.IsError {
		if text == "" {
			text = "unknown error"
		}
		return "", fmt.Errorf("%s failed: %s", name, text)
	}

	return text, nil
}

// flattenContent joins the text blocks of a tool result into the single
// normalized text result all tools return. Non-text blocks contribute a
// placeholder naming their type.
func flattenContent(result *mcp.ToolCallResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}

	parts := make([]string, 0, len(result.Content))
	for _, block := range result.Content {
		switch {
		case block.Type == "text" && block.Text != "":
			parts = append(parts, block.Text)
		case block.Type != "text":
			parts = append(parts, fmt.Sprintf("[%s content]", block.Type))
		}
	}

	return strings.Join(parts, "\n")
}
