package construct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/ciconf/xmltree"
)

// testRoot and testItem form a minimal reduced schema: a composite
// parent and one leaf kind contributing an aggregate section.
type testRoot struct {
	Construct
	items []*testItem
}

func newTestRoot() *testRoot {
	r := &testRoot{Construct: New(nil, nil)}
	r.BindOwner(r)
	return r
}

func (r *testRoot) Serialize() *xmltree.Element {
	el := xmltree.NewElement("root")
	r.ApplyFragments(el)
	return el
}

type testItem struct {
	Construct
	id string
}

func newTestItem(r *testRoot, id string) *testItem {
	it := &testItem{Construct: New(&r.Construct, Props{"id": id}), id: id}
	it.BindOwner(it)
	r.items = append(r.items, it)
	// per-kind key: every sibling registers the same callback shape,
	// only the first registration wins, and the callback iterates the
	// live collection
	r.RegisterFragment("items", func(el *xmltree.Element) {
		el.Node("wrap", func(w *xmltree.Element) {
			for _, i := range r.items {
				w.Node(i.Serialize())
			}
		})
	})
	return it
}

func (it *testItem) Serialize() *xmltree.Element {
	return xmltree.NewElement("item").Attribute("id", it.id)
}

func TestRootWalk(t *testing.T) {
	top := New(nil, nil)
	mid := New(&top, nil)
	leaf := New(&mid, nil)

	assert.Same(t, &top, leaf.Root())
	assert.Same(t, &top, mid.Root())
	assert.Same(t, &top, top.Root(), "the root's root is itself")
	assert.Same(t, &mid, leaf.Parent())
	assert.Nil(t, top.Parent())
}

func TestProps(t *testing.T) {
	c := New(nil, Props{"id": "X", "count": 3})
	v, ok := c.StringProp("id")
	assert.True(t, ok)
	assert.Equal(t, "X", v)

	_, ok = c.StringProp("count")
	assert.False(t, ok, "non-string property is not a string prop")
	_, ok = c.StringProp("missing")
	assert.False(t, ok)

	empty := New(nil, nil)
	assert.Nil(t, empty.Props())
}

func TestFragmentIdempotency(t *testing.T) {
	r := newTestRoot()
	newTestItem(r, "T1")
	newTestItem(r, "T2")
	newTestItem(r, "T3")

	el := r.Serialize()
	// exactly one aggregate section containing all three siblings in
	// construction order
	assert.Equal(t,
		`<root><wrap><item id="T1"/><item id="T2"/><item id="T3"/></wrap></root>`,
		el.String())
}

func TestEndToEndReducedSchema(t *testing.T) {
	r := newTestRoot()
	newTestItem(r, "T1")
	newTestItem(r, "T2")

	assert.Equal(t,
		`<root><wrap><item id="T1"/><item id="T2"/></wrap></root>`,
		r.Serialize().String())
}

func TestFragmentOrder(t *testing.T) {
	c := New(nil, nil)
	var order []string
	c.RegisterFragment("b", func(*xmltree.Element) { order = append(order, "b") })
	c.RegisterFragment("a", func(*xmltree.Element) { order = append(order, "a") })
	c.RegisterFragment("b", func(*xmltree.Element) { order = append(order, "b2") })

	c.ApplyFragments(xmltree.NewElement("x"))
	assert.Equal(t, []string{"b", "a"}, order,
		"callbacks run in registration order; repeat keys are dropped")
}

func TestDocumentFirstWins(t *testing.T) {
	r := newTestRoot()

	first := xmltree.NewDocument()
	first.Node("doc", xmltree.Attrs{"from": "first"})
	second := xmltree.NewDocument()
	second.Node("doc", xmltree.Attrs{"from": "second"})

	// two descendants proposing documents at the same path; both calls
	// route through the root
	assert.True(t, r.Root().RegisterDocument("out/conf.xml", first))
	assert.False(t, r.Root().RegisterDocument("out/conf.xml", second))

	docs := r.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, `<doc from="first"/>`, docs["out/conf.xml"].String(),
		"the first proposal survives, the second is dropped silently")
}

func TestDocumentsNilBeforeRegistration(t *testing.T) {
	c := New(nil, nil)
	assert.Nil(t, c.Documents())
}

func TestOwnerBinding(t *testing.T) {
	r := newTestRoot()
	it := newTestItem(r, "T1")
	assert.Same(t, r, r.Construct.Owner())
	assert.Same(t, it, it.Construct.Owner())

	unbound := New(nil, nil)
	assert.Nil(t, unbound.Owner())
}
