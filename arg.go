package ulog

import "math"

// Ptr16 represents a 16-bit pointer-sized address, the representation
// used by the byte-addressed microcontrollers this library targets.
// Plain Go pointers have no fixed wire width, so callers that want to log
// an address convert it to Ptr16 explicitly.
type Ptr16 uint16

// Arg is the set of argument types a call-site may carry, exhaustively
// matching spec.md's §4.2 type map (strings are handled by SiteStr/
// Site1Str and LogStr/Log1Str instead, since they need a continuation
// chain rather than a
// fixed-width payload).
type Arg interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64 | Ptr16
}

// tagOf derives the TypeTag for A. It is only ever called from a Site*
// registration function, which runs once per call-site at package-init
// time, so the type switch here costs nothing in the steady-state log
// path.
func tagOf[A Arg]() TypeTag {
	var zero A
	switch any(zero).(type) {
	case bool:
		return TagBool
	case int8:
		return TagS8
	case uint8:
		return TagU8
	case int16:
		return TagS16
	case uint16:
		return TagU16
	case Ptr16:
		return TagPtr16
	case int32:
		return TagS32
	case uint32:
		return TagU32
	case float32, float64:
		return TagF32
	default:
		return TagNone
	}
}

// encode packs v's little-endian representation into a 4-byte scratch
// array and returns the number of meaningful bytes, per spec.md §4.2's
// type map. float64 values are narrowed to float32 (f64->f32) before
// encoding, exactly as spec.md's type-map row states.
func encode[A Arg](v A) (payload [maxPayload]byte, n int) {
	switch x := any(v).(type) {
	case bool:
		if x {
			payload[0] = 1
		}
		return payload, 1
	case int8:
		payload[0] = byte(x)
		return payload, 1
	case uint8:
		payload[0] = x
		return payload, 1
	case int16:
		putU16(&payload, uint16(x))
		return payload, 2
	case uint16:
		putU16(&payload, x)
		return payload, 2
	case Ptr16:
		putU16(&payload, uint16(x))
		return payload, 2
	case int32:
		putU32(&payload, uint32(x))
		return payload, 4
	case uint32:
		putU32(&payload, x)
		return payload, 4
	case float32:
		putU32(&payload, math.Float32bits(x))
		return payload, 4
	case float64:
		putU32(&payload, math.Float32bits(float32(x)))
		return payload, 4
	default:
		return payload, 0
	}
}

func putU16(dst *[maxPayload]byte, v uint16) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

func putU32(dst *[maxPayload]byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}
