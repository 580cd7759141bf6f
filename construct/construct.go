package construct

import "github.com/andaru/ciconf/xmltree"

// Props is the property bag of a construct: configuration fields
// specific to the concrete kind, keyed by name. Treated as read-only
// after construction.
type Props map[string]any

// Fragment is a rendering callback appending one kind's output section
// to the in-progress element of an ancestor.
type Fragment func(*xmltree.Element)

// Node is implemented by kinds rendering themselves as a single
// element.
type Node interface {
	Serialize() *xmltree.Element
}

// DocumentSource is implemented by composite kinds (the tree root)
// rendering a set of documents keyed by relative output path.
type DocumentSource interface {
	Serialize() map[string]*xmltree.Document
}

// Construct is the embedded base of every configuration kind.
type Construct struct {
	parent    *Construct
	props     Props
	documents map[string]*xmltree.Document
	fragments []fragmentEntry
	fragKeys  map[string]struct{}
	owner     any
}

type fragmentEntry struct {
	key string
	fn  Fragment
}

// New returns a Construct linked below parent (nil for the tree root)
// carrying the given property bag.
func New(parent *Construct, props Props) Construct {
	return Construct{parent: parent, props: props}
}

// Parent returns the owning construct, nil at the tree root.
func (c *Construct) Parent() *Construct { return c.parent }

// BindOwner records the concrete kind embedding this node, so that
// generic code holding a *Construct (kind factories in particular) can
// recover the concrete type.
func (c *Construct) BindOwner(owner any) { c.owner = owner }

// Owner returns the concrete kind embedding this node, nil when never
// bound.
func (c *Construct) Owner() any { return c.owner }

// Root walks parent links to the tree root and returns it.
func (c *Construct) Root() *Construct {
	n := c
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Props returns the property bag.
func (c *Construct) Props() Props { return c.props }

// StringProp returns a string-valued property and whether it is set
// with that type.
func (c *Construct) StringProp(key string) (string, bool) {
	v, ok := c.props[key].(string)
	return v, ok
}

// RegisterDocument proposes a document for the given output path,
// reporting whether it was stored. The first proposal for a path wins;
// later proposals are silently dropped, which makes redundant
// registration from multiple code paths safe without guarding.
// Meaningful on the tree root; callers reach it via Root().
func (c *Construct) RegisterDocument(path string, doc *xmltree.Document) bool {
	if c.documents == nil {
		c.documents = make(map[string]*xmltree.Document)
	}
	if _, ok := c.documents[path]; ok {
		return false
	}
	c.documents[path] = doc
	return true
}

// Documents returns the registered documents by output path. Nil until
// the first registration.
func (c *Construct) Documents() map[string]*xmltree.Document { return c.documents }

// RegisterFragment registers a rendering callback under a key unique
// to the registering kind (not the instance). Only the first
// registration per key takes effect; the callback is expected to
// iterate the parent's live collection of that kind, so siblings
// constructed later still contribute. Callbacks run in registration
// order.
func (c *Construct) RegisterFragment(key string, fn Fragment) {
	if c.fragKeys == nil {
		c.fragKeys = make(map[string]struct{})
	}
	if _, ok := c.fragKeys[key]; ok {
		return
	}
	c.fragKeys[key] = struct{}{}
	c.fragments = append(c.fragments, fragmentEntry{key: key, fn: fn})
}

// ApplyFragments invokes every registered fragment callback against el
// in registration order.
func (c *Construct) ApplyFragments(el *xmltree.Element) {
	for _, f := range c.fragments {
		f.fn(el)
	}
}
