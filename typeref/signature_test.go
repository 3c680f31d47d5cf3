package typeref

import (
	"testing"

	"github.com/erraggy/modelref/restype"
	"github.com/stretchr/testify/assert"
)

func TestTypeSignature(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		sig, ok := TypeSignature(nil)
		assert.False(t, ok)
		assert.Empty(t, sig)
	})

	t.Run("typed nil", func(t *testing.T) {
		var typ *restype.Type
		sig, ok := TypeSignature(typ)
		assert.False(t, ok)
		assert.Empty(t, sig)
	})

	t.Run("present", func(t *testing.T) {
		typ := restype.For[map[string][]int32]()
		sig, ok := TypeSignature(typ)
		assert.True(t, ok)
		assert.Equal(t, typ.Signature(), sig)
		assert.Equal(t, "Map[string,List[int32]]", sig)
	})
}
