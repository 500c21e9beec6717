// Package urlpolicy restricts which URLs browser navigation may reach.
package urlpolicy

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// Policy matches URLs against compiled allow/deny glob patterns.
// Denied patterns take precedence; an empty allow list permits
// everything not denied. Patterns match against both the full URL and
// the bare host, so "*.example.com" and "https://example.com/*" both
// work.
type Policy struct {
	allowedPatterns []glob.Glob
	deniedPatterns  []glob.Glob
}

// New compiles the given patterns into a Policy.
func New(allowed, denied []string) (*Policy, error) {
	p := &Policy{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed pattern '%s': %w", pattern, err)
		}
		p.allowedPatterns = append(p.allowedPatterns, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied pattern '%s': %w", pattern, err)
		}
		p.deniedPatterns = append(p.deniedPatterns, g)
	}

	return p, nil
}

// Allows reports whether rawURL may be navigated to. A nil policy
// allows everything. Unparseable URLs are rejected.
func (p *Policy) Allows(rawURL string) bool {
	if p == nil {
		return true
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())

	for _, pattern := range p.deniedPatterns {
		if pattern.Match(rawURL) || (host != "" && pattern.Match(host)) {
			return false
		}
	}

	if len(p.allowedPatterns) == 0 {
		return true
	}

	for _, pattern := range p.allowedPatterns {
		if pattern.Match(rawURL) || (host != "" && pattern.Match(host)) {
			return true
		}
	}

	return false
}
