package xmltree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromNode rebuilds an element from its structural projection,
// applying attributes in projection order. Test-harness helper only.
func fromNode(n Node) *Element {
	el := &Element{name: n.Name}
	for _, a := range n.Attributes {
		el.Attribute(a.Name, a.Value)
	}
	if n.Content != nil {
		el.SetContent(*n.Content)
	}
	for _, c := range n.Children {
		el.Node(fromNode(c))
	}
	return el
}

func TestJSONRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name  string
		build func() *Element
	}{
		{
			name:  "leaf",
			build: func() *Element { return NewElement("a") },
		},
		{
			name: "attributes and content",
			build: func() *Element {
				e := NewElement("a")
				e.Node("b", Attrs{"x": "1", "y": "2"}, "body")
				return e
			},
		},
		{
			name: "attributes set in non-lexical order",
			build: func() *Element {
				return NewElement("versioned-settings").
					Attribute("root-id", "R").
					Attribute("mode", "useFromVCS")
			},
		},
		{
			name: "empty content distinguished from unset",
			build: func() *Element {
				e := NewElement("a")
				e.Node("set").SetContent("")
				e.Node("unset")
				return e
			},
		},
		{
			name: "comments and cdata",
			build: func() *Element {
				e := NewElement("a")
				e.Comment("note")
				e.CDATA("x < y")
				e.Node("b", Attrs{"id": "B"}, func(b *Element) {
					b.Node("c", "deep")
				})
				return e
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			orig := tc.build()
			rebuilt := fromNode(orig.JSON())
			assert.Equal(t, orig.String(), rebuilt.String(),
				"JSON projection must be a lossless structural form")
		})
	}
}

func TestJSONShape(t *testing.T) {
	e := NewElement("a")
	e.Node("b", Attrs{"id": "B"})
	e.Node("c", "text")

	b, err := json.Marshal(e)
	require.NoError(t, err)
	// unset attributes/content keys are omitted entirely; children is
	// always present
	assert.JSONEq(t,
		`{"name":"a","children":[`+
			`{"name":"b","attributes":{"id":"B"},"children":[]},`+
			`{"name":"c","content":"text","children":[]}]}`,
		string(b))

	n := e.JSON()
	assert.Nil(t, n.Attributes)
	assert.Nil(t, n.Content)
	require.Len(t, n.Children, 2)
	require.NotNil(t, n.Children[1].Content)
	assert.Equal(t, "text", *n.Children[1].Content)
}

func TestJSONAttributeOrder(t *testing.T) {
	e := NewElement("x").Attribute("z", "1").Attribute("a", "2")
	n := e.JSON()
	require.Equal(t, []Attr{{Name: "z", Value: "1"}, {Name: "a", Value: "2"}}, n.Attributes)

	b, err := json.Marshal(n)
	require.NoError(t, err)
	// the attributes object is written in first-set order
	assert.Equal(t, `{"name":"x","attributes":{"z":"1","a":"2"},"children":[]}`, string(b))
}
