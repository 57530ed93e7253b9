package ulog

// Engine is the process-wide wiring of a RingBuffer, a drain, and a
// Port, per spec.md §4.5/§4.6. Log0..Log4 and LogStr/Log1Str operate
// against the default Engine (Default), mirroring the original's single
// global queue/port pair; a program that genuinely needs more than one
// wires its own Engine and calls its methods directly.
type Engine struct {
	port Port
	ring *RingBuffer
	d    *drain
}

// NewEngine wires a ring buffer of the given capacity to port. Capacity
// is clamped to at least 2 by NewRingBuffer.
func NewEngine(port Port, capacity int) *Engine {
	ring := NewRingBuffer(capacity)
	e := &Engine{port: port, ring: ring, d: newDrain(ring)}
	if cp, ok := port.(CompletionPort); ok {
		cp.OnSendComplete(e.onSendComplete)
	}
	if db, ok := port.(drainBinder); ok {
		db.bindDrain(e.DrainOnce)
	}
	return e
}

// drainBinder is implemented by ports (LinuxPort) that drive their own
// worker loop instead of relying on a transport completion interrupt;
// NewEngine hands such a port the DrainOnce closure to invoke whenever
// its worker wakes.
type drainBinder interface {
	bindDrain(func())
}

// Default is the process-wide Engine used by the package-level Log*
// functions. It starts out wired to a discardPort so that logging before
// Init is a safe no-op, matching the original's "logging compiles to
// nothing before the port is up" posture.
var Default = NewEngine(discardPort{}, DefaultQueueCapacity)

// Init rewires Default to port, replacing whatever it was wired to. It
// is not safe to call concurrently with in-flight log calls.
func Init(port Port) {
	Default = NewEngine(port, DefaultQueueCapacity)
}

// DrainOnce runs one iteration of the drain state machine under the
// port's critical section: state IDLE->DRAINING on a successful frame,
// DRAINING->IDLE once the queue and overrun state are both empty. It is
// the Engine's half of the IDLE/DRAINING table in spec.md §4.5; callers
// are the port's Notify wiring and send-completion callback.
func (e *Engine) DrainOnce() {
	e.port.EnterCS()
	defer e.port.ExitCS()
	e.d.once(e.port.TxReady, e.port.Send)
}

func (e *Engine) onSendComplete() {
	e.DrainOnce()
}

// Flush drains the queue to empty, including any trailing overrun
// packet, by repeatedly invoking DrainOnce. Per spec.md §4.5 it is not
// interrupt-safe and is intended for shutdown or deterministic tests.
func (e *Engine) Flush() {
	flush(func() bool {
		e.port.EnterCS()
		defer e.port.ExitCS()
		return e.d.once(e.port.TxReady, e.port.Send)
	})
}

func (e *Engine) enqueue(pkt Packet) {
	e.port.EnterCS()
	slot, ok := e.ring.Reserve()
	if ok {
		*slot = pkt
	}
	e.port.ExitCS()
	e.port.Notify()
}

// Log0 emits a zero-argument log record. A nil site (the call-site was
// elided by the severity threshold) makes this a no-op.
func Log0(site *CallSite) {
	if site == nil {
		return
	}
	Default.enqueue(newPacket(site.id, nil))
}

// Log1 emits a single-argument log record.
func Log1[A Arg](site *CallSite, a A) {
	if site == nil {
		return
	}
	payload, n := encode(a)
	Default.enqueue(newPacket(site.id, payload[:n]))
}

// Log2 emits a two-argument log record as two packets sharing site's id,
// the second carrying the continuation flag, per spec.md §4.2's
// emission rule.
func Log2[A, B Arg](site *CallSite, a A, b B) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
}

// Log3 emits a three-argument log record as three packets.
func Log3[A, B, C Arg](site *CallSite, a A, b B, c C) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
}

// Log4 emits a four-argument log record as four packets. The 16-bit ID
// build raises this ceiling to eight arguments via Log5..Log8 in
// log_wide.go.
func Log4[A, B, C, D Arg](site *CallSite, a A, b B, c C, d D) {
	if site == nil {
		return
	}
	p0, n0 := encode(a)
	Default.enqueue(newPacket(site.id, p0[:n0]))
	p1, n1 := encode(b)
	Default.enqueue(newPacket(site.id|continuationFlag, p1[:n1]))
	p2, n2 := encode(c)
	Default.enqueue(newPacket(site.id|continuationFlag, p2[:n2]))
	p3, n3 := encode(d)
	Default.enqueue(newPacket(site.id|continuationFlag, p3[:n3]))
}

// MaxStringLength is the default transmitted string length, per
// spec.md §6's MAX_STRING_LENGTH build-time default.
const MaxStringLength = 16

// LogStr emits a sole string argument as a chain of 4-byte continuation
// packets terminated by a packet whose payload contains a 0x00 byte, per
// spec.md §4.2's string encoding rule. Strings longer than
// MaxStringLength are truncated and terminated with "...\0".
func LogStr(site *CallSite, s string) {
	if site == nil {
		return
	}
	emitString(site.id, s)
}

// Log1Str emits a leading scalar argument followed by a string argument.
func Log1Str[A Arg](site *CallSite, a A, s string) {
	if site == nil {
		return
	}
	payload, n := encode(a)
	Default.enqueue(newPacket(site.id, payload[:n]))
	emitString(site.id|continuationFlag, s)
}

// emitString splits s into maxPayload-byte runs, each its own packet
// carrying firstID on the first run and firstID|continuationFlag on the
// rest, per spec.md §4.2. The runs are NUL-terminated and truncated to
// MaxStringLength with a "..." ellipsis, matching the malformed-string
// handling in spec.md §7.
func emitString(firstID IDType, s string) {
	if len(s) > MaxStringLength {
		s = s[:MaxStringLength-3] + "..."
	}
	b := append([]byte(s), 0)

	id := firstID
	for len(b) > 0 {
		n := len(b)
		if n > maxPayload {
			n = maxPayload
		}
		Default.enqueue(newPacket(id, b[:n]))
		b = b[n:]
		id = firstID | continuationFlag
	}
}

// discardPort is wired to Default before Init is called: TxReady is
// always false, so DrainOnce and Notify are harmless no-ops and queued
// packets simply accumulate (and eventually overrun) until a real port
// is installed.
type discardPort struct{}

func (discardPort) EnterCS()         {}
func (discardPort) ExitCS()          {}
func (discardPort) Notify()          {}
func (discardPort) Send([]byte) error { return nil }
func (discardPort) TxReady() bool    { return false }
