package xmltree

import (
	"bytes"
	"encoding/json"
)

// Attr is one attribute of a Node projection.
type Attr struct {
	Name  string
	Value string
}

// Node is the plain-data projection of an Element: a lossless
// structural form independent of textual rendering, suitable for
// snapshot comparison. Attributes keep first-set order, so a rebuilt
// element renders byte-identically; Attributes and Content are
// omitted from the JSON encoding when unset, and Children is always
// present.
type Node struct {
	Name       string
	Attributes []Attr
	Content    *string
	Children   []Node
}

// JSON returns the plain-data projection of e and its subtree.
func (e *Element) JSON() Node {
	n := Node{Name: e.name, Children: []Node{}}
	for _, k := range e.order {
		n.Attributes = append(n.Attributes, Attr{Name: k, Value: e.attrs[k]})
	}
	if e.content != nil {
		c := *e.content
		n.Content = &c
	}
	for _, child := range e.children {
		n.Children = append(n.Children, child.JSON())
	}
	return n
}

// MarshalJSON encodes the projection as {name, attributes?, content?,
// children}, writing the attributes object in first-set order.
func (n Node) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`{"name":`)
	if err := writeJSON(&b, n.Name); err != nil {
		return nil, err
	}
	if len(n.Attributes) > 0 {
		b.WriteString(`,"attributes":{`)
		for i, a := range n.Attributes {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(&b, a.Name); err != nil {
				return nil, err
			}
			b.WriteByte(':')
			if err := writeJSON(&b, a.Value); err != nil {
				return nil, err
			}
		}
		b.WriteByte('}')
	}
	if n.Content != nil {
		b.WriteString(`,"content":`)
		if err := writeJSON(&b, *n.Content); err != nil {
			return nil, err
		}
	}
	b.WriteString(`,"children":[`)
	for i, c := range n.Children {
		if i > 0 {
			b.WriteByte(',')
		}
		cb, err := c.MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(cb)
	}
	b.WriteString(`]}`)
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, s string) error {
	enc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	b.Write(enc)
	return nil
}

// MarshalJSON encodes the element's structural projection.
func (e *Element) MarshalJSON() ([]byte, error) {
	return e.JSON().MarshalJSON()
}
