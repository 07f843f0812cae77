package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	falsy := []interface{}{nil, "", 0.0, false, 0, json.Number("0")}
	for _, v := range falsy {
		assert.False(t, truthy(v), "%#v", v)
	}

	truthyValues := []interface{}{"0", "false", " ", 12.5, -1.0, true, []interface{}{}}
	for _, v := range truthyValues {
		assert.True(t, truthy(v), "%#v", v)
	}
}

func TestCoercePrice(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{12.5, 12.5},
		{"12.50", 12.5},
		{"12abc", 12},
		{"  7.25", 7.25},
		{".5", 0.5},
		{"-3", -3},
		{"0", 0},
		{"1e2", 100},
		{json.Number("19.99"), 19.99},
	}
	for _, c := range cases {
		got, err := coercePrice(c.in)
		require.NoError(t, err, "%#v", c.in)
		assert.Equal(t, c.want, got, "%#v", c.in)
	}

	for _, bad := range []interface{}{"abc", "$12", true, map[string]interface{}{}} {
		_, err := coercePrice(bad)
		assert.ErrorIs(t, err, ErrInvalidPrice, "%#v", bad)
	}
}

func TestParsePrice(t *testing.T) {
	f, ok := ParsePrice("12.50")
	assert.True(t, ok)
	assert.Equal(t, 12.5, f)

	_, ok = ParsePrice("")
	assert.False(t, ok)
}

func TestCoerceFeatured(t *testing.T) {
	assert.True(t, coerceFeatured(true))
	assert.True(t, coerceFeatured("true"))

	for _, v := range []interface{}{nil, false, "false", "TRUE", "1", 1.0} {
		assert.False(t, coerceFeatured(v), "%#v", v)
	}
}
