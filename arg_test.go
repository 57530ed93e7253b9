package ulog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagOf(t *testing.T) {
	assert.Equal(t, TagBool, tagOf[bool]())
	assert.Equal(t, TagS8, tagOf[int8]())
	assert.Equal(t, TagU8, tagOf[uint8]())
	assert.Equal(t, TagS16, tagOf[int16]())
	assert.Equal(t, TagU16, tagOf[uint16]())
	assert.Equal(t, TagPtr16, tagOf[Ptr16]())
	assert.Equal(t, TagS32, tagOf[int32]())
	assert.Equal(t, TagU32, tagOf[uint32]())
	assert.Equal(t, TagF32, tagOf[float32]())
	assert.Equal(t, TagF32, tagOf[float64]())
}

func TestEncodeScalarWidths(t *testing.T) {
	p, n := encode(true)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(1), p[0])

	p, n = encode(uint16(0x1234))
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x34, 0x12}, p[:n])

	p, n = encode(int32(-1))
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, p[:n])
}

func TestEncodeFloat32LittleEndian(t *testing.T) {
	// f32 = 36.7 is 0x4212CCCD as IEEE-754 binary32 -> 0xCD 0xCC 0x12 0x42.
	p, n := encode(float32(36.7))
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0xCD, 0xCC, 0x12, 0x42}, p[:n])
}

func TestEncodeFloat64NarrowsToFloat32(t *testing.T) {
	p64, n64 := encode(float64(36.7))
	p32, n32 := encode(float32(36.7))
	assert.Equal(t, n32, n64)
	assert.Equal(t, p32, p64)
}

func TestEncodePtr16(t *testing.T) {
	p, n := encode(Ptr16(0xBEEF))
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xEF, 0xBE}, p[:n])
}

func TestEncodeU32BitPattern(t *testing.T) {
	v := uint32(0xDEADBEEF)
	p, n := encode(v)
	assert.Equal(t, 4, n)
	assert.Equal(t, v, math.Float32bits(math.Float32frombits(v))) // sanity: bit pattern stable
	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, p[:n])
}
