package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPageTool_Name(t *testing.T) {
	manager, _, _ := newStubBridge(t)
	tool := NewReadPageTool(manager)
	assert.Equal(t, "browser_read", tool.Name())
}

func TestReadPageTool_Execute_OutlinesCurrentPage(t *testing.T) {
	manager, driver, _ := newStubBridge(t)
	driver.page.url = "https://acme.test/store"
	driver.page.content = sampleHTML
	tool := NewReadPageTool(manager)

	output, _, err := tool.Execute(context.Background(), []byte(`<arguments></arguments>`))
	require.NoError(t, err)

	assert.Contains(t, output, "# Acme Store")
	assert.Contains(t, output, "URL: https://acme.test/store")
	assert.Contains(t, output, "Description: Buy anvils online")
	assert.Contains(t, output, "Welcome to Acme")
	assert.NotContains(t, output, "<body>")
}

func TestReadPageTool_Execute_RespectsMaxLength(t *testing.T) {
	manager, driver, _ := newStubBridge(t)
	driver.page.content = sampleHTML
	tool := NewReadPageTool(manager)

	output, _, err := tool.Execute(context.Background(),
		[]byte(`<arguments><max_length>20</max_length></arguments>`))
	require.NoError(t, err)
	assert.Contains(t, output, "[Content truncated at 20 characters]")
}

func TestReadPageTool_Execute_IgnoresNonPositiveMaxLength(t *testing.T) {
	manager, driver, _ := newStubBridge(t)
	driver.page.content = sampleHTML
	tool := NewReadPageTool(manager)

	output, _, err := tool.Execute(context.Background(),
		[]byte(`<arguments><max_length>-1</max_length></arguments>`))
	require.NoError(t, err)
	assert.NotContains(t, output, "truncated")
}
