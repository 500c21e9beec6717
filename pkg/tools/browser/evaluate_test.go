package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTool_Name(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	tool := NewEvaluateTool(manager)
	assert.Equal(t, "browser_evaluate", tool.Name())
}

func TestEvaluateTool_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		argsXML string
		errMsg  string
	}{
		{
			name:    "missing code",
			argsXML: `<arguments></arguments>`,
			errMsg:  "JavaScript code is required",
		},
		{
			name:    "invalid arg JSON",
			argsXML: `<arguments><code>1 + 1</code><arg>{not json</arg></arguments>`,
			errMsg:  "arg must be valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, driver, _ := newStubBridge(t)
			tool := NewEvaluateTool(manager)

			_, _, err := tool.Execute(context.Background(), []byte(tt.argsXML))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Empty(t, driver.page.evalExprs)
		})
	}
}

func TestEvaluateTool_Execute_BindsArgument(t *testing.T) {
	manager, driver, _ := newStubBridge(t)
	driver.page.evalResult = float64(3)
	tool := NewEvaluateTool(manager)

	output, _, err := tool.Execute(context.Background(),
		[]byte(`<arguments><code>(arg) =&gt; document.querySelectorAll(arg.selector).length</code><arg>{"selector": "a.nav"}</arg></arguments>`))
	require.NoError(t, err)
	assert.Contains(t, output, "3")

	require.Len(t, driver.page.evalExprs, 1)
	assert.Equal(t, "(arg) => document.querySelectorAll(arg.selector).length", driver.page.evalExprs[0])

	require.Len(t, driver.page.evalArgs, 1)
	arg, ok := driver.page.evalArgs[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a.nav", arg["selector"])
}

func TestEvaluateTool_Execute_NilResultIsUndefined(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	tool := NewEvaluateTool(manager)

	output, _, err := tool.Execute(context.Background(),
		[]byte(`<arguments><code>void 0</code></arguments>`))
	require.NoError(t, err)
	assert.Contains(t, output, "undefined")
}

func TestEvaluateTool_Execute_FormatsStructuredResult(t *testing.T) {
	manager, driver, _ := newStubBridge(t)
	driver.page.evalResult = map[string]interface{}{"title": "Example", "links": float64(4)}
	tool := NewEvaluateTool(manager)

	output, _, err := tool.Execute(context.Background(),
		[]byte(`<arguments><code>summarize()</code></arguments>`))
	require.NoError(t, err)
	assert.Contains(t, output, `"title": "Example"`)
	assert.Contains(t, output, `"links": 4`)
}
