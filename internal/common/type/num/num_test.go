package num_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/tern/internal/common/interface/literal"
	"github.com/michaelmacinnis/tern/internal/common/type/condition"
	"github.com/michaelmacinnis/tern/internal/common/type/num"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"#xff", "255"},
		{"#b101", "5"},
		{"1.5", "1.5"},
		{"2.0", "2."},
		{"1e3", "1000."},
		{"+inf.0", "+inf.0"},
		{"-inf.0", "-inf.0"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}

	for _, tt := range tests {
		n, ok := num.Parse(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, literal.String(n), tt.in)
	}

	for _, s := range []string{"", "+", "-", ".", "...", "abc", "1x", "#z1", "#x1.5"} {
		_, ok := num.Parse(s)
		assert.False(t, ok, s)
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, "5", literal.String(num.Add(num.Int(2), num.Int(3))))
	assert.Equal(t, "-1", literal.String(num.Sub(num.Int(2), num.Int(3))))
	assert.Equal(t, "6", literal.String(num.Mul(num.Int(2), num.Int(3))))
	assert.Equal(t, "2", literal.String(num.Div(num.Int(6), num.Int(3))))
	assert.Equal(t, "1.5", literal.String(num.Div(num.Int(3), num.Int(2))))
	assert.Equal(t, "2.5", literal.String(num.Add(num.Int(2), num.Float(0.5))))

	product := num.Mul(num.Int(1<<62), num.Int(4))
	assert.Equal(t, "18446744073709551616", literal.String(product))
}

func TestDivisionByZero(t *testing.T) {
	defer func() {
		c, ok := recover().(*condition.T)
		require.True(t, ok)
		assert.Equal(t, condition.WrongType, c.Kind)
	}()

	num.Div(num.Int(1), num.Int(0))
}

func TestEquality(t *testing.T) {
	assert.True(t, num.Int(3).Equal(num.Int(3)))
	assert.False(t, num.Int(3).Equal(num.Float(3)))
	assert.Equal(t, 0, num.Cmp(num.Int(3), num.Float(3)))
	assert.Negative(t, num.Cmp(num.Int(2), num.Float(2.5)))
}

func TestConversions(t *testing.T) {
	assert.True(t, num.Integer(num.Float(4)))
	assert.False(t, num.Integer(num.Float(4.5)))
	assert.Equal(t, int64(4), num.Int64(num.Float(4)))
	assert.Equal(t, big.NewInt(12), num.BigInt(num.Int(12)))
	assert.Equal(t, "ff", num.Format(num.Int(255), 16))
	assert.Equal(t, "-101", num.Format(num.Int(-5), 2))
}

func TestSpecialFloats(t *testing.T) {
	inf := num.Mul(num.Float(1e200), num.Float(1e200))

	assert.Equal(t, "+inf.0", literal.String(inf))
	assert.True(t, math.IsInf(num.ToFloat(inf), 1))
	assert.Equal(t, "-inf.0", literal.String(num.Sub(num.Int(0), inf)))
	assert.Equal(t, "+nan.0", literal.String(num.Float(math.NaN())))
	assert.Equal(t, "+inf.0", num.Format(inf, 10))
	assert.False(t, num.Integer(inf))
}
