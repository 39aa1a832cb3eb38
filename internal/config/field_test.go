package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldStateConstructors(t *testing.T) {
	absent := Absent[int]()
	assert.True(t, absent.IsAbsent())

	valid := Valid(42)
	assert.False(t, valid.IsAbsent())
	v, err := valid.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	invalid := Invalid[int](errors.New("boom"))
	assert.False(t, invalid.IsAbsent())
	_, err = invalid.Get()
	assert.EqualError(t, err, "boom")
}

func TestOverrideField(t *testing.T) {
	parseErr := errors.New("did not parse")

	tests := []struct {
		name     string
		base     FieldState[int]
		override FieldState[int]
		want     FieldState[int]
	}{
		{
			name:     "absent override keeps base",
			base:     Valid(1),
			override: Absent[int](),
			want:     Valid(1),
		},
		{
			name:     "valid override wins",
			base:     Valid(1),
			override: Valid(2),
			want:     Valid(2),
		},
		{
			name:     "invalid override masks valid base",
			base:     Valid(1),
			override: Invalid[int](parseErr),
			want:     Invalid[int](parseErr),
		},
		{
			name:     "valid override discards invalid base",
			base:     Invalid[int](parseErr),
			override: Valid(2),
			want:     Valid(2),
		},
		{
			name:     "absent override keeps invalid base",
			base:     Invalid[int](parseErr),
			override: Absent[int](),
			want:     Invalid[int](parseErr),
		},
		{
			name:     "both absent stays absent",
			base:     Absent[int](),
			override: Absent[int](),
			want:     Absent[int](),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overrideField(tt.base, tt.override))
		})
	}
}
