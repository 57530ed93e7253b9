package ulog

// maxPayload is the maximum number of payload bytes a single Packet
// carries; larger values (strings) are split into a continuation chain of
// maxPayload-byte runs.
const maxPayload = 4

// Packet is the fixed-capacity unit enqueued by a producer and drained to
// the transport: an identifier plus up to 4 bytes of payload. len is the
// total wire size of id+payload, matching the original's payload_len
// field (used by the codec to know how many bytes to stuff).
type Packet struct {
	len  uint8
	id   IDType
	data [maxPayload]byte
}

func newPacket(id IDType, payload []byte) Packet {
	var p Packet
	p.id = id
	n := copy(p.data[:], payload)
	p.len = uint8(idByteWidth + n)
	return p
}

// idByteWidth is the number of bytes the id occupies on the wire.
const idByteWidth = IDWidth / 8

// bodySize is the capacity a caller must reserve to hold any packet's
// rendered body (id bytes plus up to maxPayload payload bytes) without
// allocating.
const bodySize = 2 + maxPayload

// writeBody renders the packet body (id, little-endian, followed by
// payload) into dst, which must have capacity bodySize, and returns the
// number of bytes written. It performs no allocation, since drain.emit
// calls it from inside the port's critical section (EnterCS/ExitCS,
// which on TinyGoPort masks interrupts).
func (p Packet) writeBody(dst []byte) int {
	n := 0
	if idByteWidth == 1 {
		dst[0] = byte(p.id)
		n = 1
	} else {
		dst[0] = byte(p.id)
		dst[1] = byte(p.id >> 8)
		n = 2
	}
	payloadLen := int(p.len) - idByteWidth
	copy(dst[n:], p.data[:payloadLen])
	return n + payloadLen
}

// continuation reports whether this packet's id carries the continuation
// flag (16-bit variant only; always false for the 8-bit build).
func (p Packet) continuation() bool {
	return p.id&continuationFlag != 0
}

// baseID strips the continuation flag, recovering the call-site id.
func (p Packet) baseID() IDType {
	return p.id & idMask
}
