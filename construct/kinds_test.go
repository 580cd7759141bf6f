package construct

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/ciconf/builderr"
)

func TestKindRegistry(t *testing.T) {
	factory := func(parent *Construct, props Props) Node {
		r, ok := parent.Owner().(*testRoot)
		require.True(t, ok)
		id, _ := props["id"].(string)
		return newTestItem(r, id)
	}

	require.NoError(t, RegisterKind("test-item", factory))
	assert.Contains(t, Kinds(), "test-item")

	err := RegisterKind("test-item", factory)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, &builderr.Error{Kind: builderr.KindDuplicateKind}))

	r := newTestRoot()
	node, err := NewKind("test-item", &r.Construct, Props{"id": "K1"})
	require.NoError(t, err)
	assert.Equal(t, `<item id="K1"/>`, node.Serialize().String())
	require.Len(t, r.items, 1)

	_, err = NewKind("no-such-kind", &r.Construct, nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.Is(err, &builderr.Error{Kind: builderr.KindUnknownKind}))
}

func TestMustRegisterKindDuplicatePanics(t *testing.T) {
	factory := func(parent *Construct, props Props) Node { return nil }
	MustRegisterKind("test-must-item", factory)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var be *builderr.Error
		require.True(t, pkgerrors.As(err, &be))
		assert.Equal(t, builderr.KindDuplicateKind, be.Kind)
	}()
	MustRegisterKind("test-must-item", factory)
}
