package browser

import (
	"context"
	"testing"

	"github.com/entrhq/surf/pkg/bridge"
	"github.com/entrhq/surf/pkg/mcp"
)

// stubDriver hands out stubBrowser/stubPage instances so tool tests can
// run a real bridge.Manager without Playwright.
type stubDriver struct {
	page *stubPage
}

func (d *stubDriver) Launch(opts bridge.LaunchOptions) (bridge.Browser, error) {
	if d.page == nil {
		d.page = &stubPage{url: "about:blank"}
	}
	return &stubBrowser{page: d.page}, nil
}

type stubBrowser struct {
	page *stubPage
}

func (b *stubBrowser) IsConnected() bool { return true }
func (b *stubBrowser) Close() error      { return nil }

func (b *stubBrowser) NewContext() (bridge.BrowserContext, error) {
	return &stubContext{page: b.page}, nil
}

type stubContext struct {
	page *stubPage
}

func (c *stubContext) NewPage() (bridge.Page, error) {
	return c.page, nil
}

type stubPage struct {
	url        string
	title      string
	content    string
	gotoURLs   []string
	gotoErr    error
	evalExprs  []string
	evalArgs   []interface{}
	evalResult interface{}
	evalErr    error
}

func (p *stubPage) URL() string              { return p.url }
func (p *stubPage) Title() (string, error)   { return p.title, nil }
func (p *stubPage) Content() (string, error) { return p.content, nil }
func (p *stubPage) Close() error             { return nil }

func (p *stubPage) Goto(url, waitUntil string) error {
	if p.gotoErr != nil {
		return p.gotoErr
	}
	p.gotoURLs = append(p.gotoURLs, url)
	p.url = url
	return nil
}

func (p *stubPage) Evaluate(expr string, arg interface{}) (interface{}, error) {
	p.evalExprs = append(p.evalExprs, expr)
	p.evalArgs = append(p.evalArgs, arg)
	return p.evalResult, p.evalErr
}

// stubRegistry resolves every name to the same stubProtocolClient.
type stubRegistry struct {
	client *stubProtocolClient
}

func (r *stubRegistry) Lookup(name string) (bridge.ProtocolClient, bool) {
	if r.client == nil {
		return nil, false
	}
	return r.client, true
}

func (r *stubRegistry) Register(name string, cfg mcp.ServerConfig) error {
	if r.client == nil {
		r.client = &stubProtocolClient{}
	}
	return nil
}

type stubProtocolClient struct {
	calls   []toolCall
	result  *mcp.ToolCallResult
	callErr error
}

type toolCall struct {
	name string
	args map[string]interface{}
}

func (c *stubProtocolClient) Status() string                    { return mcp.StatusConnected }
func (c *stubProtocolClient) Connect(ctx context.Context) error { return nil }

func (c *stubProtocolClient) CallTool(ctx context.Context, name string, args map[string]interface{}) (*mcp.ToolCallResult, error) {
	c.calls = append(c.calls, toolCall{name: name, args: args})
	if c.callErr != nil {
		return nil, c.callErr
	}
	if c.result != nil {
		return c.result, nil
	}
	return &mcp.ToolCallResult{
		Content: []mcp.ContentBlock{{Type: "text", Text: "ok"}},
	}, nil
}

// newStubBridge builds a Manager backed entirely by stubs.
func newStubBridge(t *testing.T) (*bridge.Manager, *stubDriver, *stubProtocolClient) {
	t.Helper()
	driver := &stubDriver{page: &stubPage{url: "about:blank"}}
	client := &stubProtocolClient{}
	registry := &stubRegistry{client: client}
	manager := bridge.NewManager(driver, registry, bridge.Config{})
	return manager, driver, client
}
