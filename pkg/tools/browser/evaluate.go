package browser

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/tools"
)

// EvaluateTool executes JavaScript in the controlled page.
type EvaluateTool struct {
	manager *bridge.Manager
}

// NewEvaluateTool creates a new evaluate tool.
func NewEvaluateTool(manager *bridge.Manager) *EvaluateTool {
	return &EvaluateTool{manager: manager}
}

// Name returns the tool name.
func (t *EvaluateTool) Name() string {
	return "browser_evaluate"
}

// Description returns the tool description.
func (t *EvaluateTool) Description() string {
	return "Execute JavaScript code in the page. Returns the result of the expression. An optional argument is passed to the code as a bound parameter; reference it as the function argument instead of splicing values into the code."
}

// Schema returns the tool's JSON schema.
func (t *EvaluateTool) Schema() map[string]interface{} {
	return tools.BaseToolSchema(
		map[string]interface{}{
			"code": map[string]interface{}{
				"type":        "string",
				"description": "JavaScript code to execute. Can be an expression or a function of one argument, e.g. (arg) => document.querySelectorAll(arg.selector).length",
			},
			"arg": map[string]interface{}{
				"type":        "string",
				"description": "Optional JSON value passed to the code as its argument. The driver binds it safely; never concatenate data into the code string.",
			},
		},
		[]string{"code"},
	)
}

// EvaluateInput defines the input parameters.
type EvaluateInput struct {
	XMLName xml.Name `xml:"arguments"`
	Code    string   `xml:"code"`
	Arg     string   `xml:"arg"`
}

// Execute runs the JavaScript in the page.
func (t *EvaluateTool) Execute(ctx context.Context, argsXML []byte) (string, map[string]interface{}, error) {
	var input EvaluateInput
	if err := tools.UnmarshalXMLWithFallback(argsXML, &input); err != nil {
		return "", nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if input.Code == "" {
		return "", nil, fmt.Errorf("JavaScript code is required")
	}

	var arg interface{}
	if input.Arg != "" {
		if err := json.Unmarshal([]byte(input.Arg), &arg); err != nil {
			return "", nil, fmt.Errorf("arg must be valid JSON: %w", err)
		}
	}

	page, err := t.manager.GetPage(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("browser bridge unavailable: %w", err)
	}

	result, err := page.Evaluate(input.Code, arg)
	if err != nil {
		return "", nil, fmt.Errorf("JavaScript execution failed: %w", err)
	}

	var resultStr string
	if result == nil {
		resultStr = "undefined"
	} else {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			resultStr = fmt.Sprintf("%v", result)
		} else {
			resultStr = string(jsonBytes)
		}
	}

	output := fmt.Sprintf("Result:\n%s", resultStr)
	return output, nil, nil
}

// IsLoopBreaking returns whether this tool breaks the agent loop.
func (t *EvaluateTool) IsLoopBreaking() bool {
	return false
}
