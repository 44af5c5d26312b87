package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotMapScan(t *testing.T) {
	t.Run("null column becomes empty map", func(t *testing.T) {
		var m SlotMap
		require.NoError(t, m.Scan(nil))
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("jsonb bytes", func(t *testing.T) {
		var m SlotMap
		require.NoError(t, m.Scan([]byte(`{"10":"pA","sub_1":"pB"}`)))
		assert.Equal(t, SlotMap{"10": "pA", "sub_1": "pB"}, m)
	})

	t.Run("unsupported type errors", func(t *testing.T) {
		var m SlotMap
		assert.Error(t, m.Scan(42))
	})
}

func TestSlotMapValueNil(t *testing.T) {
	var m SlotMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), v)
}
