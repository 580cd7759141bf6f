package builderr

import (
	"encoding/json"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	for _, tc := range []struct {
		err *Error

		error string
		json  string
	}{
		{
			err:   DuplicateRoot(WithOp("xmltree: Document.Node")),
			error: "duplicate-root in xmltree: Document.Node",
			json:  `{"kind":"duplicate-root","op":"xmltree: Document.Node"}`,
		},
		{
			err:   BadArgument(WithDetail("no arguments")),
			error: "bad-argument: no arguments",
			json:  `{"kind":"bad-argument","detail":"no arguments"}`,
		},
		{
			err:   Singleton(WithOp("pipeline.NewVersionedSettings"), WithDetail("project P already has versioned settings")),
			error: "singleton-violation in pipeline.NewVersionedSettings: project P already has versioned settings",
			json:  `{"kind":"singleton-violation","op":"pipeline.NewVersionedSettings","detail":"project P already has versioned settings"}`,
		},
		{
			err:   UnknownKind("frobTrigger"),
			error: "unknown-kind: frobTrigger",
			json:  `{"kind":"unknown-kind","detail":"frobTrigger"}`,
		},
		{
			err:   DuplicateKind("vcsTrigger", WithOp("construct.RegisterKind")),
			error: "duplicate-kind in construct.RegisterKind: vcsTrigger",
			json:  `{"kind":"duplicate-kind","op":"construct.RegisterKind","detail":"vcsTrigger"}`,
		},
	} {
		t.Run(fmt.Sprintf("%v", tc.err), func(t *testing.T) {
			check := assert.New(t)
			check.Equal(tc.error, tc.err.Error())
			b, err := json.Marshal(tc.err)
			if check.NoError(err) {
				check.Equal(tc.json, string(b))
			}
		})
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{KindDuplicateRoot, KindBadArgument, KindSingleton, KindUnknownKind, KindDuplicateKind} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var got Kind
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, k, got)
	}
	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
}

func TestRaise(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var be *Error
		require.True(t, pkgerrors.As(err, &be))
		assert.Equal(t, KindBadArgument, be.Kind)
		// the panic value carries a stack trace from the Raise call site
		assert.Contains(t, fmt.Sprintf("%+v", err), "TestRaise")
	}()
	Raise(BadArgument(WithDetail("boom")))
}

func TestIs(t *testing.T) {
	err := DuplicateRoot(WithOp("op"))
	assert.True(t, pkgerrors.Is(err, &Error{Kind: KindDuplicateRoot}))
	assert.False(t, pkgerrors.Is(err, &Error{Kind: KindBadArgument}))
}
