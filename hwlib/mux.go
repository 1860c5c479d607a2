// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/hwmem"
)

// Mux returns the output of a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel Bit) Bit {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns the outputs of a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel Bit) (a, b Bit) {
	return And(in, Not(sel)), And(in, sel)
}

// Mux16 returns the output of a 16 bits Mux.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func Mux16(a, b Word, sel Bit) Word {
	var out Word
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// DMuxNWay returns the outputs of a 1 bit, N-Way demultiplexer where
// N = 2^len(sel). The output selected by sel carries in, all others are 0.
// sel is MSB first: with a 3 bits selector, [0 1 1] selects output 3.
//
//	Inputs: in, sel[n]
//	Outputs: out[2^n]
//	Function: out[sel] = in, out[i] = 0 for i != sel
//
func DMuxNWay(in Bit, sel hwmem.Bus) []Bit {
	out := make([]Bit, 1<<uint(len(sel)))
	dmuxTree(out, in, sel)
	return out
}

// dmuxTree splits in across out with a tree of DMux, sel[0] driving the root.
func dmuxTree(out []Bit, in Bit, sel hwmem.Bus) {
	if len(sel) == 0 {
		out[0] = in
		return
	}
	a, b := DMux(in, sel[0])
	half := len(out) / 2
	dmuxTree(out[:half], a, sel[1:])
	dmuxTree(out[half:], b, sel[1:])
}

// MuxNWay16 returns the output of a 16 bits, N-Way multiplexer where
// N = len(options) = 2^len(sel). Selector encoding matches DMuxNWay.
//
// MuxNWay16 panics with an *hwmem.InvariantError if len(options) does not
// match the selector width.
//
//	Inputs: options[n][16], sel[log2(n)]
//	Outputs: out[16]
//	Function: out = options[sel]
//
func MuxNWay16(options []Word, sel hwmem.Bus) Word {
	if len(options) != 1<<uint(len(sel)) {
		hwmem.Invariant("Mux"+strconv.Itoa(len(options))+"Way16",
			"%d options for a %d bits selector", len(options), len(sel))
	}
	if len(sel) == 0 {
		return options[0]
	}
	half := len(options) / 2
	return Mux16(MuxNWay16(options[:half], sel[1:]), MuxNWay16(options[half:], sel[1:]), sel[0])
}

// DMux4Way returns the outputs of a 1 bit, 4-Way demultiplexer.
//
//	Inputs: in, sel[2]
//	Outputs: out[4]
//	Function: out[sel] = in, out[i] = 0 for i != sel
//
func DMux4Way(in Bit, sel hwmem.Bus) (out [4]Bit) {
	hwmem.CheckWidth("DMux4Way", "sel", sel, 2)
	copy(out[:], DMuxNWay(in, sel))
	return out
}

// DMux8Way returns the outputs of a 1 bit, 8-Way demultiplexer.
//
//	Inputs: in, sel[3]
//	Outputs: out[8]
//	Function: out[sel] = in, out[i] = 0 for i != sel
//
func DMux8Way(in Bit, sel hwmem.Bus) (out [8]Bit) {
	hwmem.CheckWidth("DMux8Way", "sel", sel, 3)
	copy(out[:], DMuxNWay(in, sel))
	return out
}

// Mux4Way16 returns the output of a 16 bits, 4-Way multiplexer.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
//	Function: out = [a, b, c, d][sel]
//
func Mux4Way16(options [4]Word, sel hwmem.Bus) Word {
	hwmem.CheckWidth("Mux4Way16", "sel", sel, 2)
	return MuxNWay16(options[:], sel)
}

// Mux8Way16 returns the output of a 16 bits, 8-Way multiplexer.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Outputs: out[16]
//	Function: out = [a, b, c, d, e, f, g, h][sel]
//
func Mux8Way16(options [8]Word, sel hwmem.Bus) Word {
	hwmem.CheckWidth("Mux8Way16", "sel", sel, 3)
	return MuxNWay16(options[:], sel)
}
