package sitefx

import (
	"strings"

	"golang.org/x/net/html"
)

// The page host understands a small CSS subset:
//   - tag: "canvas", "div"
//   - #id: "#starfield"
//   - .class, repeatable: ".counter", ".milestone.done"
//   - [attr] and [attr=val]: "[data-tilt]", ".milestone[data-pct=40]"
//   - any combination of the above, separated by spaces (descendant)

type attrMatch struct {
	key    string
	val    string
	hasVal bool
}

type compoundSelector struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

type selector []compoundSelector

func parseSelector(s string) selector {
	parts := strings.Fields(s)
	sel := make(selector, 0, len(parts))
	for _, p := range parts {
		sel = append(sel, parseCompound(p))
	}
	return sel
}

func parseCompound(s string) compoundSelector {
	var c compoundSelector
	for len(s) > 0 {
		switch s[0] {
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				end = len(s)
			}
			body := s[1:end]
			if end < len(s) {
				end++
			}
			s = s[end:]
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				c.attrs = append(c.attrs, attrMatch{
					key:    body[:eq],
					val:    strings.Trim(body[eq+1:], `"'`),
					hasVal: true,
				})
			} else {
				c.attrs = append(c.attrs, attrMatch{key: body})
			}
		case '#', '.':
			kind := s[0]
			n := 1 + strings.IndexAny(s[1:], "#.[")
			if n == 0 {
				n = len(s)
			}
			name := s[1:n]
			s = s[n:]
			if kind == '#' {
				c.id = name
			} else {
				c.classes = append(c.classes, name)
			}
		default:
			n := strings.IndexAny(s, "#.[")
			if n < 0 {
				n = len(s)
			}
			c.tag = strings.ToLower(s[:n])
			s = s[n:]
		}
	}
	return c
}

func (c compoundSelector) matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && n.Data != c.tag {
		return false
	}
	if c.id != "" && getAttr(n, "id") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(getAttr(n, "class"))
		for _, want := range c.classes {
			if !containsString(have, want) {
				return false
			}
		}
	}
	for _, a := range c.attrs {
		v, ok := lookupAttr(n, a.key)
		if !ok || (a.hasVal && v != a.val) {
			return false
		}
	}
	return true
}

// matches reports whether n matches the full selector. Ancestors are
// matched against the whole document, as querySelector does, even when the
// query is scoped to an element.
func (sel selector) matches(n *html.Node) bool {
	if len(sel) == 0 || !sel[len(sel)-1].matches(n) {
		return false
	}
	i := len(sel) - 2
	for p := n.Parent; p != nil && i >= 0; p = p.Parent {
		if sel[i].matches(p) {
			i--
		}
	}
	return i < 0
}

// queryAll walks root's descendants in document order. root itself is never
// a match.
func queryAll(root *html.Node, s string, limit int) []*html.Node {
	sel := parseSelector(s)
	if len(sel) == 0 {
		return nil
	}
	var out []*html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if sel.matches(c) {
				out = append(out, c)
				if limit > 0 && len(out) >= limit {
					return false
				}
			}
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
	return out
}

func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
