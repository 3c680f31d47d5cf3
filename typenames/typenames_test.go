package typenames

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_Lookup(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"int32", "int"},
		{"int64", "long"},
		{"float32", "float"},
		{"float64", "double"},
		{"bool", "boolean"},
		{"string", "string"},
		{"uint8", "byte"},
		{"time.Time", "date-time"},
		{"github.com/google/uuid.UUID", "uuid"},
		{"math/big.Int", "biginteger"},
		{"[]byte", "binary"},
	}
	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			got, ok := Default().Lookup(tt.identity)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unmapped identity", func(t *testing.T) {
		_, ok := Default().Lookup("complex128")
		assert.False(t, ok)
	})
}

func TestNew_Overrides(t *testing.T) {
	table := New(map[string]string{"int": "int", "complex128": "string"})

	got, _ := table.Lookup("int")
	assert.Equal(t, "int", got)
	got, _ = table.Lookup("complex128")
	assert.Equal(t, "string", got)

	// the shared default is untouched
	got, _ = Default().Lookup("int")
	assert.Equal(t, "long", got)
}

func TestTable_Set(t *testing.T) {
	table := New(nil)
	table.Set("example.com/money.Amount", "bigdecimal")

	got, ok := table.Lookup("example.com/money.Amount")
	assert.True(t, ok)
	assert.Equal(t, "bigdecimal", got)
	assert.Contains(t, table.Identities(), "example.com/money.Amount")
}

func TestTable_ConcurrentAccess(t *testing.T) {
	table := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			table.Set("example.com/x.T", "string")
		}()
		go func() {
			defer wg.Done()
			_, _ = table.Lookup("int32")
		}()
	}
	wg.Wait()

	got, _ := table.Lookup("example.com/x.T")
	assert.Equal(t, "string", got)
}
