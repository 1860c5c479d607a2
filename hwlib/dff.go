// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// LatchState is the state of a bistable primitive: its output Q and the
// inverted output NQ.
//
// NQ is normally !Q. When set and reset are both asserted, SRLatch produces
// {Q: 0, NQ: 0}; that state is kept as is.
//
type LatchState struct {
	Q  Bit
	NQ Bit
}

// ResetState is the state of a latch holding 0.
//
var ResetState = LatchState{Q: false, NQ: true}

// Valid reports whether NQ is the complement of Q.
//
func (s LatchState) Valid() bool { return s.NQ == Not(s.Q) }

func (s LatchState) String() string {
	return "{q:" + s.Q.String() + " nq:" + s.NQ.String() + "}"
}

// SRLatch returns the next state of a set/reset latch.
//
//	Inputs: set, reset, prev
//	Outputs: q, nq
//	Function:
//	    set reset | q       nq
//	     0    0   | prev.q  prev.nq
//	     0    1   | 0       1
//	     1    0   | 1       0
//	     1    1   | 0       0
//
func SRLatch(set, reset Bit, prev LatchState) LatchState {
	return LatchState{
		Q:  And(Not(reset), Or(set, prev.Q)),
		NQ: And(Not(set), Or(reset, prev.NQ)),
	}
}

// GatedDFF returns the next state of a gated D flip-flop.
//
//	Inputs: data, enable, prev
//	Outputs: q, nq
//	Function: if enable == 1 { q = data; nq = !data } else { q = prev.q; nq = prev.nq }
//
func GatedDFF(data, enable Bit, prev LatchState) LatchState {
	return SRLatch(And(data, enable), And(Not(data), enable), prev)
}
