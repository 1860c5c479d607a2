// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the combinational gates and the bistable primitives
// used to build the memory parts of hwmem.
//
// Every function in this package is pure: outputs depend on inputs only. The
// SR latch and the gated flip-flop take their previous state as an argument
// and return the new one; the caller owns the state.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import "github.com/db47h/hwmem"

// Bit is an alias for hwmem.Bit.
type Bit = hwmem.Bit

// Word is an alias for hwmem.Word.
type Word = hwmem.Word

// Not returns a NOT gate output.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
func Not(in Bit) Bit { return !in }

// a gate is a two inputs, one output boolean function.
type gate func(a, b Bit) Bit

var (
	and  gate = func(a, b Bit) Bit { return a && b }
	nand gate = func(a, b Bit) Bit { return !(a && b) }
	or   gate = func(a, b Bit) Bit { return a || b }
	nor  gate = func(a, b Bit) Bit { return !(a || b) }
	xor  gate = func(a, b Bit) Bit { return a && !b || !a && b }
	xnor gate = func(a, b Bit) Bit { return a && b || !a && !b }
)

// And returns a AND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
//
func And(a, b Bit) Bit { return and(a, b) }

// Nand returns a NAND gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
func Nand(a, b Bit) Bit { return nand(a, b) }

// Or returns a OR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
//
func Or(a, b Bit) Bit { return or(a, b) }

// Nor returns a NOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
func Nor(a, b Bit) Bit { return nor(a, b) }

// Xor returns a XOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b Bit) Bit { return xor(a, b) }

// Xnor returns a XNOR gate output.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
func Xnor(a, b Bit) Bit { return xnor(a, b) }

// Not16 returns a 16 bits NOT gate output.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = !in[i] }
//
func Not16(in Word) Word {
	var out Word
	for i := range in {
		out[i] = Not(in[i])
	}
	return out
}

// word applies g bitwise to a and b.
func (g gate) word(a, b Word) Word {
	var out Word
	for i := range out {
		out[i] = g(a[i], b[i])
	}
	return out
}

// And16 returns a 16 bits AND gate output.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func And16(a, b Word) Word { return and.word(a, b) }

// Or16 returns a 16 bits OR gate output.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
//	Function: for i := range out { out[i] = (a[i] || b[i]) }
//
func Or16(a, b Word) Word { return or.word(a, b) }

// OrNWay returns the output of a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(in hwmem.Bus) Bit {
	var out Bit
	for _, b := range in {
		out = Or(out, b)
	}
	return out
}

// Or8Way returns the output of a 8-Way OR gate.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[7]
//
func Or8Way(in [8]Bit) Bit { return OrNWay(in[:]) }
