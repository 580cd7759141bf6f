package xmltree

import "github.com/andaru/ciconf/builderr"

// Document owns at most one root element.
//
// The zero value is usable. A document is "empty" until its first Node
// call assigns the root; assigning a second root is a misuse error.
type Document struct {
	root *Element
}

// NewDocument returns an empty document.
func NewDocument() *Document { return &Document{} }

// Root returns the root element, nil while the document is empty.
func (d *Document) Root() *Element { return d.root }

// Node creates (or attaches) the root element and returns it. The
// argument shapes are those of Element.Node. A second call panics with
// a duplicate-root error: a document holds exactly one root.
func (d *Document) Node(args ...any) *Element {
	if d.root != nil {
		builderr.Raise(builderr.DuplicateRoot(
			builderr.WithOp("xmltree: Document.Node"),
			builderr.WithDetail("document already has a root <"+d.root.name+">")))
	}
	el, finish := buildNode("xmltree: Document.Node", args)
	el.detach()
	el.owner = d
	d.root = el
	finish(el)
	return el
}

// String renders the document in compact form; an empty document
// renders as the empty string.
func (d *Document) String() string {
	if d.root == nil {
		return ""
	}
	return d.root.String()
}

// Pretty renders the document with 2-space indentation; an empty
// document renders as the empty string.
func (d *Document) Pretty() string {
	if d.root == nil {
		return ""
	}
	return d.root.Pretty()
}
