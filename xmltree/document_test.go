package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/ciconf/builderr"
)

func TestDocumentRootSingleton(t *testing.T) {
	doc := NewDocument()
	root := doc.Node("root")
	require.Same(t, root, doc.Root())
	assert.Same(t, doc, root.Document())
	assert.Nil(t, root.Parent())

	// a second root is rejected regardless of the argument shape
	assertPanicsKind(t, builderr.KindDuplicateRoot, func() { doc.Node("other") })
	assertPanicsKind(t, builderr.KindDuplicateRoot, func() { doc.Node(NewElement("other")) })

	// the first root survives the failed attempts
	assert.Same(t, root, doc.Root())
	assert.Equal(t, `<root/>`, doc.String())
}

func TestEmptyDocument(t *testing.T) {
	doc := NewDocument()
	assert.Nil(t, doc.Root())
	assert.Equal(t, "", doc.String())
	assert.Equal(t, "", doc.Pretty())

	nodes, err := doc.Select("//anything")
	assert.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestDocumentNodeShapes(t *testing.T) {
	t.Run("prebuilt root", func(t *testing.T) {
		doc := NewDocument()
		el := NewElement("project")
		got := doc.Node(el)
		assert.Same(t, el, got)
		assert.Same(t, doc, el.Document())
	})

	t.Run("builder callback", func(t *testing.T) {
		doc := NewDocument()
		doc.Node("project", Attrs{"id": "P"}, func(p *Element) {
			p.Node("name", "proj")
		})
		assert.Equal(t, `<project id="P"><name>proj</name></project>`, doc.String())
	})

	t.Run("bad arguments", func(t *testing.T) {
		assertPanicsKind(t, builderr.KindBadArgument, func() { NewDocument().Node() })
	})
}

func TestElementDocumentDetached(t *testing.T) {
	e := NewElement("a")
	c := e.Node("b")
	assert.Nil(t, c.Document())
}
