//go:build !ulog_id8

package ulog

// IDType is the wire width of a call-site identifier, represented in
// memory as uint16 regardless of build (the 8-bit variant simply never
// sets bits above 0xFF). Build with -tags ulog_id8 to switch to the
// 8-bit variant in id8.go (255 call-sites, no continuation flag, no
// reserved start id).
type IDType = uint16

const (
	// IDWidth is the configured id width in bits.
	IDWidth = 16

	// continuationFlag is the MSB marking packets beyond the first of a
	// multi-packet logical record.
	continuationFlag IDType = 0x8000

	// idMask strips the continuation flag to recover the base id.
	idMask IDType = 0x7FFF

	// maxCallSites is the identifier space ceiling for this width.
	maxCallSites = 32760

	// reservedStart is emitted once, before any user log, so the host can
	// resynchronize after a reconnect.
	reservedStart IDType = 0x7FFE

	// reservedOverrun carries the saturating overrun counter.
	reservedOverrun IDType = 0x7FFF
)
