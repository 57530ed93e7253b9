// Package decode implements the host-side reference decoder informally
// described by spec.md §4.4/§8: given a captured transport byte stream
// and the call-site metadata produced by a running process (ulog.Metadata),
// it rejoins frames into logical records and recovers each argument's
// value. It exists for round-trip testing of the on-device encoder, not
// as a production log-viewer tool (that remains out of scope, per
// spec.md §1).
package decode

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/michcald/ulog"
)

// Value is one decoded argument.
type Value struct {
	Tag   ulog.TypeTag
	Uint  uint64
	Float float32
	Bool  bool
	Str   string
}

func (v Value) String() string {
	switch v.Tag {
	case ulog.TagBool:
		return fmt.Sprintf("%v", v.Bool)
	case ulog.TagF32:
		return fmt.Sprintf("%g", v.Float)
	case ulog.TagStr:
		return v.Str
	case ulog.TagS8, ulog.TagS16, ulog.TagS32:
		return fmt.Sprintf("%d", int64(v.Uint))
	default:
		return fmt.Sprintf("%d", v.Uint)
	}
}

// Record is one fully-reassembled logical log record.
type Record struct {
	Site *ulog.CallSite
	Args []Value
}

// Line renders Record by substituting each argument into the call-site's
// printf-style Format string, a convenience for tests and example
// programs. Each verb (any one character after '%', other than "%%") is
// replaced by the next argument's Value.String rendering; flags, widths
// and verb-specific formatting (such as hex for %x) are not applied.
func (r Record) Line() string {
	var b strings.Builder
	args := r.Args
	i := 0
	f := r.Site.Format
	for j := 0; j < len(f); j++ {
		if f[j] == '%' && j+1 < len(f) {
			verb := f[j+1]
			if verb == '%' {
				b.WriteByte('%')
				j++
				continue
			}
			if i < len(args) {
				b.WriteString(args[i].String())
				i++
				j++
				continue
			}
		}
		b.WriteByte(f[j])
	}
	return b.String()
}

// Stream reassembles a raw captured byte stream into logical records,
// using sites to resolve each base id to its CallSite. It also returns
// the overrun counter value of the most recently seen synthetic overrun
// packet, or 0 if none occurred, and whether a start-of-stream packet
// was observed.
func Stream(raw []byte, sites map[ulog.IDType]*ulog.CallSite) (records []Record, overrun uint8, sawStart bool, err error) {
	frames := ulog.DecodeFrames(raw)

	type pending struct {
		site   *ulog.CallSite
		args   []Value
		argIdx int
		strBuf []byte
	}
	open := map[ulog.IDType]*pending{}

	flushPending := func(base ulog.IDType) {
		if p, ok := open[base]; ok && p.site != nil {
			records = append(records, Record{Site: p.site, Args: p.args})
			delete(open, base)
		}
	}

	for _, body := range frames {
		id, payload := ulog.ParsePacketBody(body)
		base := id & ulog.IDMask
		isCont := id&ulog.ContinuationFlag != 0

		switch base {
		case ulog.ReservedStartID:
			sawStart = true
			continue
		case ulog.ReservedOverrunID:
			if len(payload) >= 1 {
				overrun = payload[0]
			}
			continue
		}

		if !isCont {
			flushPending(base)
		}

		p, ok := open[base]
		if !ok {
			p = &pending{site: sites[base]}
			open[base] = p
		}
		if p.site == nil {
			continue // unknown call-site id; drop silently like a real host tool would warn and skip
		}

		if p.argIdx >= p.site.NArgs() {
			continue // no argument left to decode (e.g. a 0-argument record)
		}
		tag := p.site.TypeCode.Tag(p.argIdx)

		if tag == ulog.TagStr {
			p.strBuf = append(p.strBuf, payload...)
			if nul := indexByte(p.strBuf, 0); nul >= 0 {
				p.args = append(p.args, Value{Tag: ulog.TagStr, Str: string(p.strBuf[:nul])})
				p.strBuf = nil
				p.argIdx++
			}
			continue
		}

		width := tag.Size()
		if width > len(payload) {
			width = len(payload)
		}
		p.args = append(p.args, decodeScalar(tag, payload[:width]))
		p.argIdx++
	}

	for base := range open {
		flushPending(base)
	}

	return records, overrun, sawStart, nil
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

func decodeScalar(tag ulog.TypeTag, payload []byte) Value {
	switch tag {
	case ulog.TagBool:
		return Value{Tag: tag, Bool: len(payload) > 0 && payload[0] != 0}
	case ulog.TagU8:
		return Value{Tag: tag, Uint: uint64(payload[0])}
	case ulog.TagS8:
		return Value{Tag: tag, Uint: uint64(int8(payload[0]))}
	case ulog.TagU16, ulog.TagPtr16:
		return Value{Tag: tag, Uint: uint64(binary.LittleEndian.Uint16(payload))}
	case ulog.TagS16:
		return Value{Tag: tag, Uint: uint64(int16(binary.LittleEndian.Uint16(payload)))}
	case ulog.TagU32:
		return Value{Tag: tag, Uint: uint64(binary.LittleEndian.Uint32(payload))}
	case ulog.TagS32:
		return Value{Tag: tag, Uint: uint64(int32(binary.LittleEndian.Uint32(payload)))}
	case ulog.TagF32:
		bits := binary.LittleEndian.Uint32(payload)
		return Value{Tag: tag, Float: math.Float32frombits(bits)}
	default:
		return Value{Tag: tag}
	}
}
