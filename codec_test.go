package ulog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFrameNoSentinelInBody(t *testing.T) {
	body := []byte{0x01, 0x02, 0xA6, 0x03}
	dst := make([]byte, scratchSize)
	n := encodeFrame(dst, body)
	frame := dst[:n]

	require.Equal(t, Sentinel, frame[len(frame)-1])
	for _, b := range frame[:len(frame)-1] {
		assert.NotEqual(t, Sentinel, b, "sentinel must not appear in frame interior")
	}
}

func TestEncodeFrameRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x01},
		{0x01, 0x02, 0x03, 0x04},
		{0xA6},
		{0xA6, 0xA6},
		{0x00, 0xA6, 0x01, 0xA6, 0x02},
	}

	for _, body := range cases {
		dst := make([]byte, scratchSize)
		n := encodeFrame(dst, body)
		got := decodeFrames(dst[:n])
		if len(body) == 0 {
			assert.Empty(t, got)
			continue
		}
		require.Len(t, got, 1)
		assert.Equal(t, body, got[0])
	}
}

func TestEncodeFrameWorstCaseBound(t *testing.T) {
	// id(2) + payload(4) = 6 bytes body, at most +2 overhead.
	body := []byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}
	dst := make([]byte, scratchSize)
	n := encodeFrame(dst, body)
	assert.LessOrEqual(t, n, len(body)+2)
}

func TestDecodeFramesSkipsEmptyFrames(t *testing.T) {
	stream := []byte{Sentinel, Sentinel, 0x02, 0x05, Sentinel}
	got := decodeFrames(stream)
	require.Len(t, got, 1)
	assert.Equal(t, []byte{0x05}, got[0])
}

func TestDecodeFramesMultipleFrames(t *testing.T) {
	dst := make([]byte, scratchSize)
	n1 := encodeFrame(dst, []byte{0x01, 0x02})
	var stream []byte
	stream = append(stream, dst[:n1]...)

	dst2 := make([]byte, scratchSize)
	n2 := encodeFrame(dst2, []byte{0xA6, 0x03})
	stream = append(stream, dst2[:n2]...)

	got := decodeFrames(stream)
	require.Len(t, got, 2)
	assert.Equal(t, []byte{0x01, 0x02}, got[0])
	assert.Equal(t, []byte{0xA6, 0x03}, got[1])
}
