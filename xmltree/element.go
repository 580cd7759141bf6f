package xmltree

import (
	"fmt"
	"sort"

	"github.com/andaru/ciconf/builderr"
)

// Attrs is the attribute-map argument shape accepted by Node.
type Attrs = map[string]string

// Reserved element names for nodes rendered with special syntax.
// They carry text content only; never children or attributes.
const (
	commentName = "#comment"
	cdataName   = "#cdata-section"
)

// Element is one node of an XML document tree.
type Element struct {
	name     string
	attrs    map[string]string
	order    []string
	content  *string
	children []*Element
	parent   *Element
	owner    *Document
}

// NewElement returns a detached element with the given name.
func NewElement(name string) *Element {
	if name == "" {
		builderr.Raise(builderr.BadArgument(
			builderr.WithOp("xmltree.NewElement"),
			builderr.WithDetail("empty element name")))
	}
	return &Element{name: name}
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Parent returns the owning element, nil for a document root or a
// detached element.
func (e *Element) Parent() *Element { return e.parent }

// Document returns the owning document, walking up from e, or nil when
// the tree is not attached to a document.
func (e *Element) Document() *Document {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n.owner
}

// Children returns the ordered child elements. The returned slice is
// the element's own; callers must not modify it.
func (e *Element) Children() []*Element { return e.children }

// Attr returns the value of one attribute and whether it is set.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// Attribute sets or overwrites one attribute and returns e. Attribute
// order on render is first-set order. Only the double quote is escaped
// in values on render.
func (e *Element) Attribute(key, value string) *Element {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	if _, ok := e.attrs[key]; !ok {
		e.order = append(e.order, key)
	}
	e.attrs[key] = value
	return e
}

// Content returns the text content and whether it has been set.
func (e *Element) Content() (string, bool) {
	if e.content == nil {
		return "", false
	}
	return *e.content, true
}

// SetContent sets the text content, returning e. On render, content
// follows all child elements and is emitted raw, without escaping.
func (e *Element) SetContent(text string) *Element {
	e.content = &text
	return e
}

// detach removes e from its current parent's child list, or from its
// owning document's root slot, leaving it free to attach elsewhere.
func (e *Element) detach() {
	if e.parent != nil {
		kids := e.parent.children
		for i, c := range kids {
			if c == e {
				e.parent.children = append(kids[:i:i], kids[i+1:]...)
				break
			}
		}
		e.parent = nil
	}
	if e.owner != nil {
		e.owner.root = nil
		e.owner = nil
	}
}

// Node creates (or attaches) a child element and returns it.
//
// The first argument must be either a pre-built *Element, which is
// moved here (detached from any previous parent or document, then
// re-parented), or a string element name. Remaining arguments
// are applied by type: Attrs merge into the attributes (lexical key
// order), a string sets the text content, and a func(*Element) builder
// callback is invoked synchronously with the new element before Node
// returns. Any other shape is a misuse error and panics.
func (e *Element) Node(args ...any) *Element {
	child, finish := buildNode("xmltree: Element.Node", args)
	child.detach()
	child.parent = e
	e.children = append(e.children, child)
	finish(child)
	return child
}

// Comment appends a comment node rendering as <!-- text --> and
// returns it.
func (e *Element) Comment(text string) *Element {
	c := &Element{name: commentName}
	c.SetContent(text)
	c.parent = e
	e.children = append(e.children, c)
	return c
}

// CDATA appends a character-data node rendering as <![CDATA[text]]>
// and returns it.
func (e *Element) CDATA(text string) *Element {
	c := &Element{name: cdataName}
	c.SetContent(text)
	c.parent = e
	e.children = append(e.children, c)
	return c
}

// buildNode parses the overloaded Node argument list, returning the
// new (or passed-in) element plus a completion function the caller
// runs after attaching it, which invokes any builder callbacks.
func buildNode(op string, args []any) (*Element, func(*Element)) {
	if len(args) == 0 {
		builderr.Raise(builderr.BadArgument(
			builderr.WithOp(op),
			builderr.WithDetail("no arguments")))
	}

	var el *Element
	switch first := args[0].(type) {
	case *Element:
		el = first
	case string:
		el = NewElement(first)
	default:
		builderr.Raise(builderr.BadArgument(
			builderr.WithOp(op),
			builderr.WithDetail(fmt.Sprintf("first argument must be a name or *Element, got %T", args[0]))))
	}

	var builders []func(*Element)
	for _, arg := range args[1:] {
		switch v := arg.(type) {
		case Attrs:
			// lexical order keeps render output deterministic
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				el.Attribute(k, v[k])
			}
		case string:
			el.SetContent(v)
		case func(*Element):
			builders = append(builders, v)
		default:
			builderr.Raise(builderr.BadArgument(
				builderr.WithOp(op),
				builderr.WithDetail(fmt.Sprintf("unsupported argument type %T", arg))))
		}
	}

	return el, func(attached *Element) {
		for _, build := range builders {
			build(attached)
		}
	}
}
