//go:build tinygo

package ulog

import "machine"

// TinyGoPort is the embedded Port: machine.Serial.Write as the byte
// sink, grounded on the teacher's serialLogger (logger-tinygo.go), and
// interrupt disable/restore for the critical section, the TinyGo analog
// of the original's AVR port (ulog_port.h's __AVR__ branch disables
// global interrupts with cli/sei around the reserve).
//
// ReadyPin reuses tinygoPin (pin_tinygo.go), watched on a rising edge so
// that a hardware flow-control line resuming "ready" fires the same
// send-complete callback a UART TX-complete interrupt would, exactly the
// role the teacher's IRQ pin plays for the nRF24 driver.
type TinyGoPort struct {
	uart *machine.UART

	ready Pin

	savedMask uint32
	depth     int

	onComplete func()
}

// TinyGoPortConfig configures a TinyGoPort. UART defaults to
// machine.Serial when nil. ReadyPin is optional; when not configured,
// TxReady always reports true (the common case for a plain UART TX with
// no flow control).
type TinyGoPortConfig struct {
	UART     *machine.UART
	ReadyPin machine.Pin
	HasReady bool
}

func NewTinyGoPort(cfg TinyGoPortConfig) *TinyGoPort {
	uart := cfg.UART
	if uart == nil {
		uart = machine.Serial
	}
	p := &TinyGoPort{uart: uart}
	if cfg.HasReady {
		wrapped := &tinygoPin{pin: cfg.ReadyPin}
		_ = wrapped.In(PullUp)
		_ = wrapped.Watch(RisingEdge, p.fireSendComplete)
		p.ready = wrapped
	}
	return p
}

// EnterCS disables interrupts, nesting correctly: only the outermost
// call actually masks interrupts, matching spec.md §4.6's
// saved-and-restored-interrupt-flag requirement.
func (p *TinyGoPort) EnterCS() {
	if p.depth == 0 {
		p.savedMask = machine.DisableInterrupts()
	}
	p.depth++
}

func (p *TinyGoPort) ExitCS() {
	p.depth--
	if p.depth == 0 {
		machine.EnableInterrupts(p.savedMask)
	}
}

// Notify is a no-op on this port: the drain runs synchronously from
// whatever context calls DrainOnce (typically the UART's own idle loop,
// a TX-complete interrupt, or the ready-pin watch above), so there is no
// separate scheduling step to perform.
func (p *TinyGoPort) Notify() {}

func (p *TinyGoPort) Send(frame []byte) error {
	_, err := p.uart.Write(frame)
	return err
}

func (p *TinyGoPort) TxReady() bool {
	if p.ready == nil {
		return true
	}
	return p.ready.Read() == High
}

// OnSendComplete records the callback a caller's UART TX-complete
// interrupt should invoke. TinyGoPort does not drive this itself --
// there is no portable TinyGo UART TX-complete interrupt hook in the
// corpus -- the embedding application's own interrupt handler is
// expected to call FireSendComplete directly.
func (p *TinyGoPort) OnSendComplete(callback func()) {
	p.onComplete = callback
}

// FireSendComplete is called by the platform's UART TX-complete
// interrupt handler (wired by the embedding application, not by this
// package) to resume the drain.
func (p *TinyGoPort) FireSendComplete() {
	p.fireSendComplete()
}

func (p *TinyGoPort) fireSendComplete() {
	if p.onComplete != nil {
		p.onComplete()
	}
}
