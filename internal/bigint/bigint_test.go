package bigint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromUint64(v uint64) Int {
	var x Int
	if v == 0 {
		return x
	}
	x.V[0] = uint32(v)
	x.V[1] = uint32(v >> 32)
	x.N = 2
	x.normalize()
	return x
}

func toUint64(x *Int) uint64 {
	var v uint64
	for i := x.N - 1; i >= 0; i-- {
		v = v<<32 | uint64(x.V[i])
	}
	return v
}

func TestSetSmallZero(t *testing.T) {
	var x Int
	x.SetSmall(0)
	assert.True(t, x.IsZero())
	assert.True(t, x.IsNormalized())
}

func TestSetTwoExp(t *testing.T) {
	tests := []struct {
		y    int
		want uint64
	}{
		{0, 1},
		{1, 2},
		{31, 1 << 31},
		{32, 1 << 32},
		{52, 1 << 52},
		{63, 1 << 63},
	}
	for _, tt := range tests {
		var x Int
		x.SetTwoExp(tt.y)
		require.True(t, x.IsNormalized())
		if tt.y < 64 {
			assert.Equal(t, tt.want, toUint64(&x))
		}
	}
}

func TestIs2To52(t *testing.T) {
	var x Int
	x.SetTwoExp(52)
	assert.True(t, x.Is2To52())

	x.SetTwoExp(51)
	assert.False(t, x.Is2To52())

	x.SetSmall(1)
	assert.False(t, x.Is2To52())
}

func TestAddMatchesUint64(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		a := r.Uint64() >> 1
		b := r.Uint64() >> 1
		xa, xb := fromUint64(a), fromUint64(b)
		var z Int
		xa.Add(&xb, &z)
		require.True(t, z.IsNormalized())
		assert.Equal(t, a+b, toUint64(&z))
	}
}

func TestAddToleratesOperandOrder(t *testing.T) {
	var small, big, z1, z2 Int
	small.SetSmall(7)
	big.SetTwoExp(100)

	small.Add(&big, &z1)
	big.Add(&small, &z2)

	assert.Equal(t, 0, z1.Compare(&z2))
}

func TestSubIsAddInverse(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		a := r.Uint64() >> 1
		b := r.Uint64() >> 1
		xa, xb := fromUint64(a), fromUint64(b)

		var sum, back Int
		xa.Add(&xb, &sum)
		sum.Sub(&xb, &back)

		require.True(t, back.IsNormalized())
		assert.Equal(t, 0, xa.Compare(&back))
	}
}

func TestSubCancelsToZero(t *testing.T) {
	var x, z Int
	x.SetSmall(42)
	x.Sub(&x, &z)
	assert.True(t, z.IsZero())
	assert.True(t, z.IsNormalized())
}

func TestMulMatchesUint64(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 1000; i++ {
		a := r.Uint32()
		b := r.Uint32()
		xa, xb := fromUint64(uint64(a)), fromUint64(uint64(b))
		var z Int
		xa.Mul(&xb, &z)
		require.True(t, z.IsNormalized())
		assert.Equal(t, uint64(a)*uint64(b), toUint64(&z))
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 500; i++ {
		x := fromUint64(uint64(r.Uint32()))
		y := fromUint64(uint64(r.Uint32()))
		z := fromUint64(uint64(r.Uint32()))

		var sum, lhs Int
		y.Add(&z, &sum)
		x.Mul(&sum, &lhs)

		var xy, xz, rhs Int
		x.Mul(&y, &xy)
		x.Mul(&z, &xz)
		xy.Add(&xz, &rhs)

		assert.Equal(t, 0, lhs.Compare(&rhs), "x*(y+z) != x*y + x*z")
	}
}

func TestMulSmall(t *testing.T) {
	var x, z Int
	x.SetTwoExp(40)
	x.MulSmall(3, &z)

	var three Int
	three.SetSmall(3)
	var want Int
	x.Mul(&three, &want)

	assert.Equal(t, 0, z.Compare(&want))
}

func TestCompare(t *testing.T) {
	a := fromUint64(100)
	b := fromUint64(200)
	assert.Negative(t, a.Compare(&b))
	assert.Positive(t, b.Compare(&a))
	assert.Zero(t, a.Compare(&a))
}

func TestIsEven(t *testing.T) {
	var x Int
	x.SetSmall(0)
	assert.True(t, x.IsEven())
	x.SetSmall(4)
	assert.True(t, x.IsEven())
	x.SetSmall(5)
	assert.False(t, x.IsEven())
}
