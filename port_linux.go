//go:build !tinygo

package ulog

import (
	"fmt"
	"io"
	"sync"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// LinuxPort is the hosted Port: a byte sink plus a worker goroutine that
// plays the role of the embedded transport's send-complete interrupt.
// The mutex/condvar pairing is grounded directly on the original's
// ulog_linux_gnu.h, which implements enter/exit critical section with
// pthread_mutex_lock/unlock and notify with pthread_cond_signal; sync.Cond
// is the idiomatic Go analog.
//
// There is no serial/UART library anywhere in the retrieved example
// corpus, so the sink stays at the io.Writer abstraction rather than
// fabricating a dependency; see SPEC_FULL.md §4.
type LinuxPort struct {
	sink io.Writer

	mu      sync.Mutex
	cond    *sync.Cond
	pending bool
	closed  bool

	// ready is an optional hardware "transport ready" signal, wired the
	// same way the teacher wires its IRQ pin in adapter-periph.go: a
	// realPin wrapping a periph.io gpio.PinIO, watched on both edges so
	// that a hardware ready/flow-control transition wakes the drain
	// worker directly instead of waiting for the next Notify.
	ready Pin

	drainFn func()
}

// LinuxPortConfig configures a LinuxPort. ReadyPin is optional (BCM GPIO
// numbering, as in the teacher's Config.IRQPin); when zero, the
// transport is always considered ready.
type LinuxPortConfig struct {
	Sink     io.Writer
	ReadyPin int
}

// NewLinuxPort constructs a LinuxPort. Its drain worker goroutine is
// started when the port is passed to NewEngine, which hands it DrainOnce
// via bindDrain; NewEngine will discover LinuxPort implements no
// CompletionPort (the worker drives itself instead of waiting on a
// callback), so callers pass the returned port straight to NewEngine.
func NewLinuxPort(cfg LinuxPortConfig) (*LinuxPort, error) {
	p := &LinuxPort{sink: cfg.Sink}
	p.cond = sync.NewCond(&p.mu)

	if cfg.ReadyPin != 0 {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("ulog: periph.io host init: %w", err)
		}
		name := fmt.Sprintf("GPIO%d", cfg.ReadyPin)
		gpioPin := gpioreg.ByName(name)
		if gpioPin == nil {
			return nil, fmt.Errorf("ulog: failed to open ready pin %s", name)
		}
		wrapped := &realPin{PinIO: gpioPin}
		if err := wrapped.In(PullDown); err != nil {
			return nil, fmt.Errorf("ulog: configure ready pin: %w", err)
		}
		if err := wrapped.Watch(BothEdges, p.Notify); err != nil {
			return nil, fmt.Errorf("ulog: watch ready pin: %w", err)
		}
		p.ready = wrapped
	}

	return p, nil
}

// bindDrain lets Engine give the port a callback to invoke on Notify;
// it is called from NewEngine rather than exposed publicly, since the
// core, not the port, owns DrainOnce.
func (p *LinuxPort) bindDrain(drainFn func()) {
	p.mu.Lock()
	p.drainFn = drainFn
	p.mu.Unlock()
	go p.run()
}

func (p *LinuxPort) run() {
	for {
		p.mu.Lock()
		for !p.pending && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		p.pending = false
		drainFn := p.drainFn
		p.mu.Unlock()

		if drainFn != nil {
			drainFn()
		}
	}
}

// Close stops the drain worker. It does not close the underlying sink.
func (p *LinuxPort) Close() {
	if p.ready != nil {
		_ = p.ready.Unwatch()
	}
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
}

func (p *LinuxPort) EnterCS() { p.mu.Lock() }
func (p *LinuxPort) ExitCS()  { p.mu.Unlock() }

// Notify wakes the drain worker. It takes the same mutex as EnterCS, so
// it must not be called while holding the port's critical section;
// Engine.enqueue calls it right after ExitCS, on every enqueue --
// matching spec.md's "Open question — notify at enqueue_0" resolution:
// every successful enqueue notifies.
func (p *LinuxPort) Notify() {
	p.mu.Lock()
	p.pending = true
	p.mu.Unlock()
	p.cond.Signal()
}

// Send writes frame to the sink. It runs inside DrainOnce's critical
// section (p.mu held), so it marks the worker pending directly: the
// worker then runs DrainOnce again after every frame, the way a
// send-complete interrupt would, until the queue is drained.
func (p *LinuxPort) Send(frame []byte) error {
	p.pending = true
	_, err := p.sink.Write(frame)
	if err != nil {
		diag.Warn("ulog: send failed: " + err.Error())
	}
	return err
}

// TxReady reports the ready pin's level when one is configured, or true
// unconditionally for a plain io.Writer sink (a bufio.Writer or os.File
// never "blocks" the way a half-duplex UART does).
func (p *LinuxPort) TxReady() bool {
	if p.ready == nil {
		return true
	}
	return p.ready.Read() == High
}
