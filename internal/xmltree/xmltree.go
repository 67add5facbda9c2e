// Package xmltree decodes XML into a generic tree of nodes.
//
// The tree keeps the ambiguity of the source format: an element may appear
// once or repeated, and nothing about the document is known up front. All
// accessors are nil-safe so that callers can walk deeply optional paths
// without checking every step; a missing node reads as an empty value.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/pacs2mt/internal/parsererror"

	"golang.org/x/net/html/charset"
)

// Node is a single element of a decoded document. The root returned by
// Decode is a synthetic document node with an empty name whose children
// are the top-level elements.
type Node struct {
	Name     string
	Attrs    map[string]string
	Data     string
	Elements []*Node
}

// Decode parses XML from r into a tree. Namespaces are dropped: elements
// and attributes are addressed by their local names only. Documents
// declaring a non-UTF-8 encoding are transcoded on the fly.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel

	root := &Node{}
	stack := []*Node{root}
	text := []*bytes.Buffer{{}}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &parsererror.DecodeError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
						continue
					}
					n.Attrs[a.Name.Local] = a.Value
				}
			}
			parent := stack[len(stack)-1]
			parent.Elements = append(parent.Elements, n)
			stack = append(stack, n)
			text = append(text, &bytes.Buffer{})
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.Data = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(stack) > 1 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if len(stack) != 1 {
		return nil, &parsererror.DecodeError{Err: fmt.Errorf("unexpected end of document inside <%s>", stack[len(stack)-1].Name)}
	}
	if len(root.Elements) == 0 {
		return nil, &parsererror.DecodeError{Err: errors.New("document has no root element")}
	}
	return root, nil
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(s string) (*Node, error) {
	return Decode(strings.NewReader(s))
}

// Child returns the first child element named name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, e := range n.Elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Children returns every child element named name in document order.
// A single element and a sequence of one are indistinguishable here.
func (n *Node) Children(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, e := range n.Elements {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Path follows names from n, taking the first matching child at each step.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// All follows names like Path, but the last step is treated as repeatable
// and all of its matches are returned.
func (n *Node) All(names ...string) []*Node {
	if len(names) == 0 {
		if n == nil {
			return nil
		}
		return []*Node{n}
	}
	parent := n.Path(names[:len(names)-1]...)
	return parent.Children(names[len(names)-1])
}

// Text returns the character data of n, or "" for a nil node.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.Data
}

// Texts returns the character data of every node reached by All.
func (n *Node) Texts(names ...string) []string {
	nodes := n.All(names...)
	out := make([]string, 0, len(nodes))
	for _, c := range nodes {
		out = append(out, c.Text())
	}
	return out
}

// Attr returns the attribute with the given local name, or "".
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasElements reports whether n has any child elements.
func (n *Node) HasElements() bool {
	return n != nil && len(n.Elements) > 0
}
