package sim

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
)

// Saleae Logic 2 binary export, digital channel, version 0, so captures of
// the simulated pins go through the same logic-analyzer tooling used on
// captures of the real board:
//
//	identifier      [8]byte "<SALEAE>"
//	version         int32   0
//	type            int32   0 (digital)
//	initial state   uint32
//	begin time      float64 seconds
//	end time        float64 seconds
//	transitions     uint64
//	transition time float64 seconds, repeated

var captureMagic = [8]byte{'<', 'S', 'A', 'L', 'E', 'A', 'E', '>'}

// WriteDigital writes the given edge list as a digital capture spanning
// ticks [0, end) of a clock running at hz.
func WriteDigital(w io.Writer, hz, end uint64, initial bool, edges []Transition) error {
	if _, err := w.Write(captureMagic[:]); err != nil {
		return err
	}
	var st uint32
	if initial {
		st = 1
	}
	le := binary.LittleEndian
	head := []any{
		int32(0), // version
		int32(0), // digital
		st,
		float64(0),
		float64(end) / float64(hz),
		uint64(len(edges)),
	}
	for _, v := range head {
		if err := binary.Write(w, le, v); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := binary.Write(w, le, float64(e.Tick)/float64(hz)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCapture writes the pin's recorded waveform as a digital capture
// ending at the clock's current time.
func (p *Pin) WriteCapture(w io.Writer) error {
	return WriteDigital(w, p.clk.hz, p.clk.now, false, p.edges)
}

// SynthSerialClock builds a synthetic bit-clock channel for the given
// serial frames: a rising edge at the center of each data bit. A stock
// mode-0 SPI analyzer fed this clock against the serial data line
// recovers the frame's data bits, bit-reversed since serial is LSB first.
func SynthSerialClock(frames []uint64, bit uint64) []Transition {
	var edges []Transition
	for _, start := range frames {
		for k := uint64(0); k < 8; k++ {
			center := start + (k+1)*bit + bit/2
			edges = append(edges,
				Transition{Tick: center, Level: true},
				Transition{Tick: center + bit/4, Level: false},
			)
		}
	}
	return edges
}

// SynthSerialEnable builds a synthetic active-low enable channel spanning
// each serial frame.
func SynthSerialEnable(frames []uint64, bit uint64) []Transition {
	var edges []Transition
	for _, start := range frames {
		edges = append(edges,
			Transition{Tick: start, Level: false},
			Transition{Tick: start + 10*bit, Level: true},
		)
	}
	return edges
}

// WriteSerialCaptures writes three captures of the serial data pin to
// dir: the data line itself plus the synthetic bit clock and frame enable
// channels (data.bin, clk.bin, cs.bin), ready for SPI-analyzer based
// decoding by cmd/uartanalyze.
func WriteSerialCaptures(dir string, p *Pin, bit uint64) error {
	frames := DetectSerialFrames(p, bit)
	files := []struct {
		name    string
		initial bool
		edges   []Transition
	}{
		{"data.bin", false, p.Transitions()},
		{"clk.bin", false, SynthSerialClock(frames, bit)},
		{"cs.bin", true, SynthSerialEnable(frames, bit)},
	}
	for _, f := range files {
		fp, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			return err
		}
		err = WriteDigital(fp, p.clk.hz, p.clk.now, f.initial, f.edges)
		cerr := fp.Close()
		if err != nil {
			return err
		}
		if cerr != nil {
			return cerr
		}
	}
	return nil
}
