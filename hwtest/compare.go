// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing memory units.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/memory"
)

// Model is a reference model of a memory unit: a plain slice of words.
//
type Model []uint16

// Tick applies one clock cycle to the model and returns the expected output.
//
func (m Model) Tick(in uint16, addr uint, load bool) uint16 {
	if load {
		m[addr] = in
	}
	return m[addr]
}

// Op is a single clock cycle applied to a unit.
//
type Op struct {
	In   uint16
	Addr uint
	Load bool
}

func (o Op) String() string {
	l := 0
	if o.Load {
		l = 1
	}
	return fmt.Sprintf("in=%#04x, address=%d, load=%d", o.In, o.Addr, l)
}

// RandomOps returns n random operations for a unit of the given word count.
// About one operation in three is a write.
//
func RandomOps(rng *rand.Rand, words int, n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{
			In:   uint16(rng.Intn(1 << 16)),
			Addr: uint(rng.Intn(words)),
			Load: rng.Intn(3) == 0,
		}
	}
	return ops
}

// Dump reads every word of u, in address order. Each read is a clock cycle.
//
func Dump(u memory.Unit) []uint16 {
	d := memory.NewDriver(u)
	out := make([]uint16, u.Words())
	for a := range out {
		out[a] = d.Read(uint(a))
	}
	return out
}

// CompareModel runs iter random operations on u and on a reference Model and
// compares their outputs after each cycle. u must be freshly created.
//
func CompareModel(t testing.TB, u memory.Unit, iter int) {
	t.Helper()

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	d := memory.NewDriver(u)
	m := make(Model, u.Words())

	start := time.Now()
	for _, op := range RandomOps(rng, u.Words(), iter) {
		exp := m.Tick(op.In, op.Addr, op.Load)
		if got := d.Tick(op.In, op.Addr, op.Load); got != exp {
			t.Fatalf("seed %d, tick %d: %v\nExpected out=%#04x\nGot %#04x", seed, d.Ticks(), op, exp, got)
		}
	}
	logRate(t, u, d.Ticks(), time.Since(start))

	if diff := cmp.Diff([]uint16(m), Dump(u)); diff != "" {
		t.Fatalf("seed %d: memory contents mismatch (-model +unit):\n%s", seed, diff)
	}
}

// CompareUnits takes two units and compares their outputs given the same
// inputs. Both units must have the same address width and be freshly created.
//
func CompareUnits(t testing.TB, u1, u2 memory.Unit, iter int) {
	t.Helper()

	if u1.AddressBits() != u2.AddressBits() {
		t.Fatalf("u1.AddressBits() = %d != u2.AddressBits() = %d", u1.AddressBits(), u2.AddressBits())
	}
	if u1.Words() != u2.Words() {
		t.Fatalf("u1.Words() = %d != u2.Words() = %d", u1.Words(), u2.Words())
	}

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))
	bits := u1.AddressBits()

	for i, op := range RandomOps(rng, u1.Words(), iter) {
		in, addr, load := hwmem.FromUint16(op.In), hwmem.Address(op.Addr, bits), hwmem.Bit(op.Load)
		o1 := u1.Tick(in, addr, load)
		o2 := u2.Tick(in, addr, load)
		if o1 != o2 {
			t.Fatalf("seed %d, tick %d: %v\nu1 out=%v\nu2 out=%v", seed, i+1, op, o1, o2)
		}
	}
}

func logRate(t testing.TB, u memory.Unit, ticks uint, elapsed time.Duration) {
	t.Helper()
	name := fmt.Sprintf("%d words unit", u.Words())
	if b, ok := u.(*memory.Bank); ok {
		name = b.Name()
	}
	t.Logf("%s: %d clock ticks in %v => %.2f Hz", name, ticks, elapsed, float64(ticks)/(float64(elapsed)/float64(time.Second)))
}
