package ulog

// drainState is the cooperative state machine of spec.md §4.5: a drain
// is either idle or actively draining one frame at a time. once() is
// the sole state transition point, called by the Engine (log.go) from
// Notify, from a transport completion callback, or from Flush's loop.
type drainState uint8

const (
	stateIdle drainState = iota
	stateDraining
)

// drain is the consumer-side state shared by exactly one logical drain
// task, per spec.md §4.5/§5. It owns the ring buffer, the reserved
// overrun counter's handoff, and a scratch buffer for the frame codec.
// A drain is driven by an Engine; it performs no locking of its own,
// mirroring RingBuffer.
type drain struct {
	ring    *RingBuffer
	scratch [scratchSize]byte
	body    [bodySize]byte
	state   drainState

	startSent bool
}

func newDrain(ring *RingBuffer) *drain {
	return &drain{ring: ring}
}

// once implements drain_once: under the caller's critical section, if the
// transport is ready, it drains exactly one frame -- either the pending
// start-of-stream marker, one user packet, or (if the queue just went
// empty with a nonzero overrun counter) the synthetic overrun packet --
// and hands the encoded bytes to send. It returns false, leaving the drain
// in stateIdle, when there was nothing to do; Flush uses this to stop
// looping.
func (d *drain) once(ready func() bool, send func([]byte) error) bool {
	if !ready() {
		d.state = stateIdle
		return false
	}

	if !d.startSent {
		d.startSent = true
		if pkt, ok := startPacket(); ok {
			return d.emit(pkt, send)
		}
	}

	if pkt, ok := d.ring.Dequeue(); ok {
		return d.emit(pkt, send)
	}

	if latched, count := d.ring.Overrun(); latched && count > 0 {
		d.ring.ClearOverrun()
		diag.Warn("ulog: queue overran, dropped packets")
		return d.emit(overrunPacket(count), send)
	}

	d.state = stateIdle
	return false
}

func (d *drain) emit(pkt Packet, send func([]byte) error) bool {
	d.state = stateDraining
	bn := pkt.writeBody(d.body[:])
	n := encodeFrame(d.scratch[:], d.body[:bn])
	_ = send(d.scratch[:n])
	return true
}

// flush repeatedly calls once (via tick) until the queue and overrun
// state are both drained, per spec.md §4.5's "Flush". It is not
// interrupt-safe: callers use it only at shutdown or in deterministic
// tests where no producer races the flush.
func flush(tick func() bool) {
	for tick() {
	}
}

// startPacket returns the synthetic start-of-stream packet emitted once
// before any user log, per spec.md §4.5. The 8-bit ID variant has no
// usable start identifier (reservedStart is a sentinel that never
// matches), so it is a no-op there.
func startPacket() (Packet, bool) {
	if IDWidth == 8 {
		return Packet{}, false
	}
	return newPacket(reservedStart, nil), true
}

// overrunPacket returns the synthetic overrun notification packet for
// the given saturating counter value, per spec.md §4.5 step 3.
func overrunPacket(count uint8) Packet {
	return newPacket(reservedOverrun, []byte{count})
}
