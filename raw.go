package ulog

// This file exposes just enough of the wire format for a host-side tool
// (see the decode subpackage) to reassemble frames without duplicating
// the codec or the reserved-id table. Everything else about Packet and
// the ring stays private: a decoder only ever sees bytes that already
// left the transport.

// ContinuationFlag, IDMask, ReservedStartID and ReservedOverrunID mirror
// the build-tag-selected constants in id16.go/id8.go, renamed and
// exported for host tooling.
const (
	ContinuationFlag  = continuationFlag
	IDMask            = idMask
	ReservedStartID   = reservedStart
	ReservedOverrunID = reservedOverrun
)

// DecodeFrames splits a raw byte stream captured from the transport into
// its constituent frame bodies, per spec.md §4.4's decoding algorithm.
// Each returned slice is one packet's body: id bytes followed by payload
// bytes, still stuffed-free (the sentinel byte never appears in a
// returned body).
func DecodeFrames(stream []byte) [][]byte {
	return decodeFrames(stream)
}

// ParsePacketBody splits a decoded frame body into its id (with the
// continuation flag still set, if present) and payload.
func ParsePacketBody(body []byte) (id IDType, payload []byte) {
	if idByteWidth == 1 {
		if len(body) < 1 {
			return 0, nil
		}
		return IDType(body[0]), body[1:]
	}
	if len(body) < 2 {
		return 0, nil
	}
	return IDType(body[0]) | IDType(body[1])<<8, body[2:]
}
