// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package memory

import (
	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/hwlib"
)

// BitRegister is a 1 bit register. Use NewBitRegister to create one: the
// zero value's flip-flop starts in the {q:0 nq:0} state.
//
//	Inputs: in, load
//	Outputs: out
//	Function: if load { out = in } else { out = out(t-1) }
//
type BitRegister struct {
	state hwlib.LatchState
}

// NewBitRegister returns a new 1 bit register holding 0.
//
func NewBitRegister() *BitRegister {
	return &BitRegister{state: hwlib.ResetState}
}

// Tick runs a clock cycle and returns the register output.
//
// The flip-flop is clocked on every tick. When load is 0, the current output
// is fed back into the flip-flop instead of in.
//
func (r *BitRegister) Tick(in, load hwmem.Bit) hwmem.Bit {
	r.state = hwlib.GatedDFF(hwlib.Mux(r.state.Q, in, load), hwmem.One, r.state)
	return r.state.Q
}

// Out returns the current register output without running a clock cycle.
//
func (r *BitRegister) Out() hwmem.Bit { return r.state.Q }

// State returns the state of the underlying flip-flop.
//
func (r *BitRegister) State() hwlib.LatchState { return r.state }

// Register is a 16 bits register.
//
//	Inputs: in[16], load
//	Outputs: out[16]
//	Function: for i := range out { out[i] = BitRegister(in[i], load) }
//
type Register struct {
	bits [hwmem.WordSize]BitRegister
}

// NewRegister returns a new 16 bits register holding 0.
//
func NewRegister() *Register {
	r := new(Register)
	for i := range r.bits {
		r.bits[i].state = hwlib.ResetState
	}
	return r
}

// Tick runs a clock cycle of every bit register with the same load signal and
// returns the register output.
//
func (r *Register) Tick(in hwmem.Word, load hwmem.Bit) hwmem.Word {
	var out hwmem.Word
	for i := range r.bits {
		out[i] = r.bits[i].Tick(in[i], load)
	}
	return out
}

// Out returns the current register output without running a clock cycle.
//
func (r *Register) Out() hwmem.Word {
	var out hwmem.Word
	for i := range r.bits {
		out[i] = r.bits[i].Out()
	}
	return out
}

// register wraps a Register into a Unit with a 0 bits address bus.
type register struct {
	Register
}

func (r *register) Tick(in hwmem.Word, addr hwmem.Bus, load hwmem.Bit) hwmem.Word {
	hwmem.CheckWidth("Register", "address", addr, 0)
	return r.Register.Tick(in, load)
}

func (r *register) AddressBits() int { return 0 }
func (r *register) Words() int       { return 1 }
