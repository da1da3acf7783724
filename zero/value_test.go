package zero_test

import (
	"testing"

	"github.com/amp-labs/amp-steroids/zero"
	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	name  string
	count int
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Empty(t, zero.Value[string]())
	assert.Nil(t, zero.Value[*testStruct]())
	assert.Nil(t, zero.Value[[]int]())
	assert.Equal(t, testStruct{}, zero.Value[testStruct]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		isZero   bool
		expected bool
	}{
		{name: "zero int", isZero: zero.IsZero(0), expected: true},
		{name: "non-zero int", isZero: zero.IsZero(42), expected: false},
		{name: "empty string", isZero: zero.IsZero(""), expected: true},
		{name: "nil pointer", isZero: zero.IsZero[*testStruct](nil), expected: true},
		{name: "nil slice", isZero: zero.IsZero[[]int](nil), expected: true},
		{name: "empty slice", isZero: zero.IsZero([]int{}), expected: false},
		{name: "zero struct", isZero: zero.IsZero(testStruct{}), expected: true},
		{name: "struct with unexported field set", isZero: zero.IsZero(testStruct{count: 1}), expected: false},
		{name: "pointer to zero struct", isZero: zero.IsZero(&testStruct{}), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.isZero)
		})
	}
}
