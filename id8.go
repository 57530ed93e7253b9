//go:build ulog_id8

package ulog

// IDType mirrors id16.go; see that file for the doc comment.
type IDType = uint16

const (
	// IDWidth is the configured id width in bits.
	IDWidth = 8

	// continuationFlag does not exist in the 8-bit variant: a multi-
	// argument call-site still emits one packet per argument (all
	// sharing the same id), but the host must rejoin them using the
	// call-site's registered argument count rather than a wire flag.
	continuationFlag IDType = 0

	// idMask is a no-op in the 8-bit variant.
	idMask IDType = 0xFF

	// maxCallSites is the identifier space ceiling: 0xFF is reserved for
	// overrun, leaving 255 usable call-site ids (0..254).
	maxCallSites = 255

	// reservedStart is not used in the 8-bit variant: there is no spare
	// id to dedicate to a start-of-stream marker.
	reservedStart IDType = 0xFFFF // sentinel; never matches a real id

	// reservedOverrun carries the saturating overrun counter.
	reservedOverrun IDType = 0xFF
)
