package sim

// Tools for picking apart a recorded bit-banged serial waveform:
// 8N1 framing, LSB first, idle high.

// DetectSerialFrames returns the start-bit tick of every serial frame in
// p's recorded waveform. bit is the bit period in ticks.
func DetectSerialFrames(p *Pin, bit uint64) []uint64 {
	var frames []uint64
	var from uint64
	for _, e := range p.Transitions() {
		if e.Level || e.Tick < from {
			continue
		}
		// Falling edge outside any frame: a start bit.
		frames = append(frames, e.Tick)
		from = e.Tick + 10*bit
	}
	return frames
}

// DecodeSerial samples p's waveform once per bit period, at bit centers,
// and returns the bytes carried by every detected frame.
func DecodeSerial(p *Pin, bit uint64) []byte {
	var out []byte
	for _, start := range DetectSerialFrames(p, bit) {
		var c byte
		for k := uint64(0); k < 8; k++ {
			if p.Sample(start + (k+1)*bit + bit/2) {
				c |= 1 << k
			}
		}
		out = append(out, c)
	}
	return out
}
