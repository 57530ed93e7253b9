package ulog

// Port binds the core to one platform, per spec.md §4.6. All operations
// are synchronous; the core never blocks waiting for one to complete
// except where documented (Send may block or may only buffer, at the
// port's discretion).
//
// EnterCS/ExitCS must nest correctly, saved-and-restored-interrupt-flag
// style: a second EnterCS while already inside a critical section must
// not unmask interrupts early when the inner ExitCS returns.
type Port interface {
	// EnterCS suspends preemption/interrupts over a short code window.
	EnterCS()
	// ExitCS resumes what EnterCS suspended.
	ExitCS()

	// Notify is idempotent and may be called from an interrupt context.
	// It schedules Engine.DrainOnce to run outside the critical section
	// "soon" -- on hosted ports this wakes the drain worker goroutine; on
	// embedded ports it is typically folled by the transport's own idle
	// hook or completion callback, and may run drain_once synchronously
	// if TxReady is already true.
	Notify()

	// Send hands an encoded frame to the transport. It returns once the
	// bytes are either fully transmitted or safely buffered by the
	// driver -- the core only requires TxScratch be reusable once Send
	// returns.
	Send(frame []byte) error

	// TxReady reports whether Send will not block or overwrite an
	// in-flight frame.
	TxReady() bool
}

// CompletionPort is implemented by ports that drive their own send
// completion callback (the embedded case: a UART TX-complete interrupt).
// Hosted ports instead loop internally and have no need of this.
type CompletionPort interface {
	Port
	// OnSendComplete registers the callback to invoke once a Send
	// completes; bound once at initialization, per spec.md §4.6.
	OnSendComplete(callback func())
}
