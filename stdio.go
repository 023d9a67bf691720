package bringup

import "io"

// Console adapts a buffered serial transmitter to Go's stream interfaces
// so the fmt family can be retargeted onto the bit-banged line, the way a
// libc hooks its standard streams onto a serial port.
//
// Write never reports a short or negative count: when the batching buffer
// fills mid-write it is flushed to the wire and the write continues. Read
// reports no data; no input device is wired up.
type Console struct {
	b *Buffer
}

// NewConsole returns a Console writing through b.
func NewConsole(b *Buffer) *Console { return &Console{b: b} }

// Write queues p, draining the buffer to the wire whenever it fills.
// On success it returns len(p).
func (c *Console) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := c.b.Write(p)
		total += n
		p = p[n:]
		if err == nil {
			break
		}
		// Buffer full: put it on the wire and keep going.
		if err := c.b.Flush(); err != nil {
			return total, err
		}
	}
	return total, nil
}

// Read implements io.Reader. There is no input device, so it always
// reports end of input.
func (c *Console) Read(p []byte) (int, error) { return 0, io.EOF }

// Flush forces queued output onto the wire.
func (c *Console) Flush() error { return c.b.Flush() }
