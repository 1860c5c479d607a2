// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package memory

import (
	"strconv"

	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/hwlib"
)

// A Unit is an addressable, clocked storage part.
//
// Tick runs one clock cycle: if load is 1, in is stored at addr. It returns
// the word stored at addr once the cycle completes. addr must be exactly
// AddressBits() wide, MSB first.
//
type Unit interface {
	Tick(in hwmem.Word, addr hwmem.Bus, load hwmem.Bit) hwmem.Word
	// AddressBits returns the width of the address bus.
	AddressBits() int
	// Words returns the number of words the unit stores.
	Words() int
}

// A Bank composes 2^n identical units into a larger one addressed by n more
// bits. The n most significant address bits select the part, the remaining
// bits are passed down to it.
//
//	Inputs: in[16], address[n+k], load
//	Outputs: out[16]
//	Function: out = part[address[0..n-1]](in, address[n..], load && selected)
//
type Bank struct {
	name  string
	sel   int // selector width
	parts []Unit
	bits  int
	words int
	outs  []hwmem.Word // scratch buffer for part outputs
}

// NewBank returns a Bank of 2^selBits units created by newPart.
// newPart must return units with identical address widths.
//
func NewBank(name string, selBits int, newPart func() Unit) *Bank {
	n := 1 << uint(selBits)
	b := &Bank{
		name:  name,
		sel:   selBits,
		parts: make([]Unit, n),
		outs:  make([]hwmem.Word, n),
	}
	for i := range b.parts {
		p := newPart()
		if p == nil {
			hwmem.Invariant(name, "part %d is nil", i)
		}
		if i > 0 && p.AddressBits() != b.parts[0].AddressBits() {
			hwmem.Invariant(name, "part %d has a %d bits address bus, expected %d", i, p.AddressBits(), b.parts[0].AddressBits())
		}
		b.parts[i] = p
	}
	b.bits = selBits + b.parts[0].AddressBits()
	b.words = n * b.parts[0].Words()
	return b
}

// Tick implements Unit.
//
// Every part is clocked on each tick, in index order, with the same input and
// address suffix. At most one of them gets a load signal.
//
func (b *Bank) Tick(in hwmem.Word, addr hwmem.Bus, load hwmem.Bit) hwmem.Word {
	hwmem.CheckWidth(b.name, "address", addr, b.bits)
	sel, rest := addr[:b.sel], addr[b.sel:]
	enable := hwlib.DMuxNWay(load, sel)
	if len(enable) != len(b.parts) {
		hwmem.Invariant(b.name, "decoder has %d outputs for %d parts", len(enable), len(b.parts))
	}
	for i, p := range b.parts {
		b.outs[i] = p.Tick(in, rest, enable[i])
	}
	return hwlib.MuxNWay16(b.outs, sel)
}

// AddressBits implements Unit.
//
func (b *Bank) AddressBits() int { return b.bits }

// Words implements Unit.
//
func (b *Bank) Words() int { return b.words }

// Name returns the bank name, like "RAM512".
//
func (b *Bank) Name() string { return b.name }

// NewWord returns a Unit wrapping a single Register. Its address bus is 0 bits
// wide.
//
func NewWord() Unit {
	return &register{Register: *NewRegister()}
}

// NewRAM returns a RAM of 8^k words of 16 bits, k >= 1, with a 3*k bits
// address bus. Banks are built recursively: a RAM of 8^k words is made of 8
// RAMs of 8^(k-1) words, down to 8 registers.
//
func NewRAM(k int) *Bank {
	if k < 1 {
		hwmem.Invariant("RAM", "invalid RAM size 8^%d", k)
	}
	if k == 1 {
		return NewBank(ramName(8), 3, NewWord)
	}
	return NewBank(ramName(1<<uint(3*k)), 3, func() Unit { return NewRAM(k - 1) })
}

func ramName(words int) string {
	switch {
	case words >= 1024 && words%1024 == 0:
		return "RAM" + strconv.Itoa(words/1024) + "K"
	default:
		return "RAM" + strconv.Itoa(words)
	}
}

// NewRAM8 returns a RAM of 8 words with a 3 bits address bus.
//
func NewRAM8() *Bank { return NewRAM(1) }

// NewRAM64 returns a RAM of 64 words with a 6 bits address bus.
//
func NewRAM64() *Bank { return NewRAM(2) }

// NewRAM512 returns a RAM of 512 words with a 9 bits address bus.
//
func NewRAM512() *Bank { return NewRAM(3) }

// NewRAM4K returns a RAM of 4096 words with a 12 bits address bus.
//
func NewRAM4K() *Bank { return NewRAM(4) }

// NewRAM16K returns a RAM of 16384 words with a 14 bits address bus, made of
// four RAM4K.
//
func NewRAM16K() *Bank {
	return NewBank(ramName(16384), 2, func() Unit { return NewRAM4K() })
}

var ramSizes = map[int]func() *Bank{
	8:     NewRAM8,
	64:    NewRAM64,
	512:   NewRAM512,
	4096:  NewRAM4K,
	16384: NewRAM16K,
	32768: func() *Bank { return NewRAM(5) },
}

// CheckSize returns an ErrSize if NewRAMWords does not support the given word
// count.
//
func CheckSize(words int) error {
	if _, ok := ramSizes[words]; !ok {
		return ErrSize{words}
	}
	return nil
}

// NewRAMWords returns a RAM for the given word count. Supported sizes are
// 8, 64, 512, 4096, 16384 and 32768.
//
func NewRAMWords(words int) (*Bank, error) {
	if err := CheckSize(words); err != nil {
		return nil, err
	}
	return ramSizes[words](), nil
}

// ErrSize is returned by NewRAMWords for unsupported RAM sizes.
//
type ErrSize struct {
	Words int
}

func (e ErrSize) Error() string {
	return "unsupported RAM size " + strconv.Itoa(e.Words)
}
