package pixel

// Quantize clears the low (8-bits) bits of every channel, so that
// visually close colors collapse onto one value. bits must be within
// [1,8]; that is the caller's contract, fixed for a whole conversion.
// Quantize(Quantize(c, bits), bits) == Quantize(c, bits).
func Quantize(c RGB, bits int) RGB {
	shift := uint(8 - bits)
	return RGB{
		R: (c.R >> shift) << shift,
		G: (c.G >> shift) << shift,
		B: (c.B >> shift) << shift,
	}
}
