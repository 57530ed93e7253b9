package decode_test

import (
	"sync"
	"testing"

	"github.com/michcald/ulog"
	"github.com/michcald/ulog/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePort struct {
	mu   sync.Mutex
	buf  []byte
}

func (p *capturePort) EnterCS() { p.mu.Lock() }
func (p *capturePort) ExitCS()  { p.mu.Unlock() }
func (p *capturePort) Notify()  {}
func (p *capturePort) Send(frame []byte) error {
	p.buf = append(p.buf, frame...)
	return nil
}
func (p *capturePort) TxReady() bool { return true }

var (
	siteBoot    = ulog.Site0(ulog.Info, "decode_test.go", 10, "Boot")
	siteTwoU8   = ulog.Site2[uint8, uint8](ulog.Info, "decode_test.go", 11, "pair %d %d")
	siteFloat   = ulog.Site1[float32](ulog.Info, "decode_test.go", 12, "reading %f")
	siteStr     = ulog.SiteStr(ulog.Info, "decode_test.go", 13, "msg: %s")
	siteThreeU8 = ulog.Site3[uint8, uint8, uint8](ulog.Info, "decode_test.go", 14, "rgb %d %d %d")
	siteFourU8  = ulog.Site4[uint8, uint8, uint8, uint8](ulog.Info, "decode_test.go", 15, "rgba %d %d %d %d")
	siteU8Str   = ulog.Site1Str[uint8](ulog.Info, "decode_test.go", 16, "sensor %d: %s")
)

func sitesByID() map[ulog.IDType]*ulog.CallSite {
	out := map[ulog.IDType]*ulog.CallSite{}
	for _, s := range ulog.Metadata() {
		out[s.ID()] = s
	}
	return out
}

func TestDecodeRoundTripNoArg(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log0(siteBoot)
	ulog.Default.Flush()

	records, _, sawStart, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	assert.True(t, sawStart)
	require.Len(t, records, 1)
	assert.Equal(t, siteBoot, records[0].Site)
	assert.Empty(t, records[0].Args)
}

func TestDecodeRoundTripTwoArgs(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log2(siteTwoU8, uint8(10), uint8(20))
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 2)
	assert.Equal(t, uint64(10), records[0].Args[0].Uint)
	assert.Equal(t, uint64(20), records[0].Args[1].Uint)
}

func TestDecodeRoundTripFloat(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log1(siteFloat, float32(36.7))
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 1)
	assert.InDelta(t, 36.7, records[0].Args[0].Float, 0.001)
}

func TestDecodeRoundTripString(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.LogStr(siteStr, "Test1")
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 1)
	assert.Equal(t, "Test1", records[0].Args[0].Str)
}

func TestDecodeRoundTripThreeArgs(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log3(siteThreeU8, uint8(10), uint8(20), uint8(30))
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 3)
	assert.Equal(t, uint64(10), records[0].Args[0].Uint)
	assert.Equal(t, uint64(20), records[0].Args[1].Uint)
	assert.Equal(t, uint64(30), records[0].Args[2].Uint)
}

func TestDecodeRoundTripFourArgs(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log4(siteFourU8, uint8(1), uint8(2), uint8(3), uint8(4))
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 4)
	assert.Equal(t, uint64(1), records[0].Args[0].Uint)
	assert.Equal(t, uint64(2), records[0].Args[1].Uint)
	assert.Equal(t, uint64(3), records[0].Args[2].Uint)
	assert.Equal(t, uint64(4), records[0].Args[3].Uint)
}

func TestDecodeRoundTripScalarThenString(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log1Str(siteU8Str, uint8(7), "overheating")
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].Args, 2)
	assert.Equal(t, uint64(7), records[0].Args[0].Uint)
	assert.Equal(t, "overheating", records[0].Args[1].Str)
}

func TestDecodeOverrunCounter(t *testing.T) {
	port := &capturePort{}
	ulog.Default = ulog.NewEngine(port, 4) // 3 usable slots, forces overrun

	for i := 0; i < 20; i++ {
		ulog.Log0(siteBoot)
	}
	ulog.Default.Flush()

	_, overrun, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	assert.Greater(t, overrun, uint8(0))
}

func TestDecodeLineSubstitution(t *testing.T) {
	port := &capturePort{}
	ulog.Init(port)

	ulog.Log2(siteTwoU8, uint8(1), uint8(2))
	ulog.Default.Flush()

	records, _, _, err := decode.Stream(port.buf, sitesByID())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pair 1 2", records[0].Line())
}
