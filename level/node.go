package level

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is one schema-less XML element
// Documents are decoded into a Node tree first and materialised into typed records afterwards
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Parse decodes an XML document into its root Node
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	var stack []*Node
	var root *Node
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("decode xml: empty document")
	}
	return root, nil
}

// Find returns the first descendant named name in document order
func (n *Node) Find(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Child returns the first direct child named name
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every descendant named name in document order
func (n *Node) FindAll(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.FindAll(name)...)
	}
	return out
}

// Content returns trimmed character data
func (n *Node) Content() string {
	return strings.TrimSpace(n.Text)
}

// Int reads an integer attribute
func (n *Node) Int(attr string) (int, error) {
	raw, ok := n.Attrs[attr]
	if !ok {
		return 0, fmt.Errorf("<%s> missing attribute %q", n.Name, attr)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("<%s> attribute %q: %w", n.Name, attr, err)
	}
	return v, nil
}

// IntOr reads an integer attribute, falling back to def when absent or malformed
func (n *Node) IntOr(attr string, def int) int {
	v, err := n.Int(attr)
	if err != nil {
		return def
	}
	return v
}

// ChildInt reads an integer from either an attribute or a child element's content
func (n *Node) ChildInt(name string) (int, bool) {
	if v, err := n.Int(name); err == nil {
		return v, true
	}
	if c := n.Child(name); c != nil {
		if v, err := strconv.Atoi(c.Content()); err == nil {
			return v, true
		}
	}
	return 0, false
}
