package browser

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// PageOutline is a reduced, text-oriented view of a page: enough for an
// agent to decide where to click or type without the raw markup.
type PageOutline struct {
	Title       string
	Description string
	Text        string
	Truncated   bool
}

// skippedElements are removed entirely, subtree included.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
	"template": true,
}

// blockElements force a line break in the outline.
var blockElements = map[string]bool{
	"div": true, "p": true, "section": true, "article": true,
	"header": true, "footer": true, "nav": true, "main": true,
	"aside": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "ul": true, "ol": true, "li": true,
	"table": true, "tr": true, "form": true, "blockquote": true,
	"pre": true, "br": true,
}

// outlinePage parses raw HTML and reduces it to a PageOutline, keeping
// at most maxLength characters of text.
func outlinePage(rawHTML string, maxLength int) (*PageOutline, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	outline := &PageOutline{}
	var builder strings.Builder
	length := 0
	outline.Truncated = walkOutline(doc, &builder, &length, maxLength, outline)
	outline.Text = collapseBlankLines(builder.String())
	return outline, nil
}

// walkOutline traverses the parse tree, appending annotated text.
// Returns true once the length budget is exhausted.
func walkOutline(n *html.Node, builder *strings.Builder, length *int, maxLength int, outline *PageOutline) bool {
	if *length >= maxLength {
		return true
	}

	switch n.Type {
	case html.CommentNode:
		return false

	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text == "" {
			return false
		}
		return appendText(builder, length, maxLength, text+" ")

	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if skippedElements[tag] {
			return false
		}

		switch tag {
		case "title":
			if outline.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				outline.Title = strings.TrimSpace(n.FirstChild.Data)
			}
			return false
		case "meta":
			if outline.Description == "" {
				if desc, ok := metaDescription(n); ok {
					outline.Description = desc
				}
			}
			return false
		case "a":
			return appendAnnotated(n, builder, length, maxLength, outline, "link", attrValue(n, "href"))
		case "button":
			return appendAnnotated(n, builder, length, maxLength, outline, "button", attrValue(n, "name"))
		case "input":
			label := attrValue(n, "placeholder")
			if label == "" {
				label = attrValue(n, "name")
			}
			kind := attrValue(n, "type")
			if kind == "" {
				kind = "text"
			}
			return appendText(builder, length, maxLength, fmt.Sprintf("[input:%s %s] ", kind, label))
		case "textarea", "select":
			return appendText(builder, length, maxLength, fmt.Sprintf("[%s %s] ", tag, attrValue(n, "name")))
		case "img":
			if alt := attrValue(n, "alt"); alt != "" {
				return appendText(builder, length, maxLength, fmt.Sprintf("[image: %s] ", alt))
			}
			return false
		}

		if blockElements[tag] {
			builder.WriteString("\n")
		}
		if strings.HasPrefix(tag, "h") && len(tag) == 2 && tag[1] >= '1' && tag[1] <= '6' {
			builder.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " ")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walkOutline(c, builder, length, maxLength, outline) {
			return true
		}
	}
	return false
}

// appendAnnotated writes an element's text wrapped in a [kind: detail]
// marker, e.g. "[link: /docs] Documentation".
func appendAnnotated(n *html.Node, builder *strings.Builder, length *int, maxLength int, outline *PageOutline, kind, detail string) bool {
	if detail != "" {
		if appendText(builder, length, maxLength, fmt.Sprintf("[%s: %s] ", kind, detail)) {
			return true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walkOutline(c, builder, length, maxLength, outline) {
			return true
		}
	}
	return false
}

func appendText(builder *strings.Builder, length *int, maxLength int, text string) bool {
	if *length+len(text) > maxLength {
		remaining := maxLength - *length
		if remaining > 0 {
			builder.WriteString(text[:remaining])
		}
		builder.WriteString("...")
		*length = maxLength
		return true
	}
	builder.WriteString(text)
	*length += len(text)
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

func metaDescription(n *html.Node) (string, bool) {
	if !strings.EqualFold(attrValue(n, "name"), "description") {
		return "", false
	}
	content := strings.TrimSpace(attrValue(n, "content"))
	return content, content != ""
}

// collapseBlankLines drops blank lines and trims the rest.
func collapseBlankLines(s string) string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
