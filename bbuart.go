package bringup

import (
	"errors"

	"log/slog"
)

// UARTbb is a dumb bit-bang implementation of an asynchronous serial
// transmitter hardcoded to 8N1 framing: one start bit low, eight data bits
// LSB first, one stop bit high, idle high. No parity, no flow control; a
// terminal at the same baud decodes it directly.
type UARTbb struct {
	TX Pin
	// Baud is the wire bit rate. Defaults to 19200 when zero.
	Baud uint32

	dl     *Delayer
	bit    uint32 // countdown ticks per bit period
	logger *slog.Logger
}

var (
	errBitTooShort   = errors.New("bit period shorter than one timer tick")
	errNotConfigured = errors.New("uartbb: not configured")
)

// Configure sets up the TX pin as an idle-high output and derives the bit
// period from the delayer's clock rate.
func (u *UARTbb) Configure(dl *Delayer) error {
	if u.Baud == 0 {
		u.Baud = 19200
	}
	u.bit = dl.ClockHz() / u.Baud
	if u.bit == 0 {
		return errBitTooShort
	}
	u.dl = dl
	u.TX.Configure(PinConfig{Mode: PinOutput})
	u.TX.Set(true) // serial idles high
	u.debug("uartbb:Configure",
		slog.Uint64("baud", uint64(u.Baud)),
		slog.Uint64("bitticks", uint64(u.bit)),
	)
	return nil
}

// SetLogger attaches a logger for debug and per-byte trace output. A nil
// logger (the default) is silent.
func (u *UARTbb) SetLogger(l *slog.Logger) { u.logger = l }

// BitTicks returns the countdown ticks per bit period. Zero before
// Configure.
func (u *UARTbb) BitTicks() uint32 { return u.bit }

// WriteByte transmits a single byte synchronously. It returns once the
// stop bit has been held for a full bit period, leaving the line idle.
func (u *UARTbb) WriteByte(c byte) error {
	if u.dl == nil {
		return errNotConfigured
	}
	u.trace("uartbb:tx", slog.Uint64("byte", uint64(c)))
	// Start bit: drop from idle (high) to active (low).
	u.TX.Set(false)
	u.bitDelay()
	for i := 0; i < 8; i++ {
		u.TX.Set(c&1 != 0)
		u.bitDelay()
		c >>= 1
	}
	// Stop bit: back to idle.
	u.TX.Set(true)
	u.bitDelay()
	return nil
}

// Write transmits p one byte at a time, blocking until the last stop bit
// is on the wire. Implements io.Writer.
func (u *UARTbb) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := u.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

func (u *UARTbb) bitDelay() { u.dl.Ticks(u.bit) }

// serialBufLen matches the batching buffer of the original validation
// programs.
const serialBufLen = 512

// ErrSerialBufferFull is returned when queued bytes do not fit in the
// batching buffer. Overflowing writes are truncated and reported, never
// silently wrapped into earlier data.
var ErrSerialBufferFull = errors.New("serial buffer full")

// Buffer batches bytes for a UARTbb so formatted prints pay the wire cost
// once per Flush instead of once per byte. Capacity is fixed; writes
// beyond it are rejected with ErrSerialBufferFull after accepting what
// fits.
type Buffer struct {
	u   *UARTbb
	buf [serialBufLen]byte
	n   int
}

// NewBuffer returns an empty batching buffer in front of u.
func NewBuffer(u *UARTbb) *Buffer { return &Buffer{u: u} }

// WriteByte queues c for the next Flush.
func (b *Buffer) WriteByte(c byte) error {
	if b.n == len(b.buf) {
		return ErrSerialBufferFull
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// Write queues p for the next Flush. If p does not fit it returns the
// number of bytes accepted and ErrSerialBufferFull.
func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, ErrSerialBufferFull
	}
	return n, nil
}

// Flush transmits and drains all queued bytes, blocking until the last
// stop bit is on the wire. Queued bytes are dropped on error.
func (b *Buffer) Flush() error {
	b.u.debug("uartbb:flush", slog.Int("pending", b.n))
	_, err := b.u.Write(b.buf[:b.n])
	b.n = 0
	return err
}

// Buffered returns the number of queued bytes.
func (b *Buffer) Buffered() int { return b.n }

// Free returns the remaining buffer capacity in bytes.
func (b *Buffer) Free() int { return len(b.buf) - b.n }
