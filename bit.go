// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwmem

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Bit is the state of a single wire.
//
type Bit bool

// Bit values.
//
const (
	Zero Bit = false
	One  Bit = true
)

// B converts an int to a Bit. Any non-zero value is One.
//
func B(v int) Bit { return v != 0 }

func (b Bit) String() string {
	if b {
		return "1"
	}
	return "0"
}

// Bus is an ordered sequence of bits, most significant bit first.
//
type Bus []Bit

// Address returns the bits wide bus for address a. Bits of a above the bus
// width are dropped.
//
func Address(a uint, bits int) Bus {
	b := make(Bus, bits)
	for i := range b {
		b[bits-i-1] = a&(1<<uint(i)) != 0
	}
	return b
}

// Uint returns the unsigned value of the bus.
//
func (b Bus) Uint() uint {
	var v uint
	for _, bit := range b {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

func (b Bus) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteString(bit.String())
	}
	return sb.String()
}

// WordSize is the width of a Word.
//
const WordSize = 16

// Word is a 16 bits bus. Word[0] is the most significant bit.
//
type Word [WordSize]Bit

// Predefined words.
//
var (
	AllZero = Word{}
	AllOnes = FromUint16(0xffff)
)

// FromUint16 returns the Word for v.
//
func FromUint16(v uint16) Word {
	var w Word
	for i := range w {
		w[WordSize-i-1] = v&(1<<uint(i)) != 0
	}
	return w
}

// Uint16 returns the value of w.
//
func (w Word) Uint16() uint16 {
	var v uint16
	for _, bit := range w {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v
}

// Bus returns w as a Bus sharing no memory with w.
//
func (w Word) Bus() Bus {
	b := make(Bus, WordSize)
	copy(b, w[:])
	return b
}

func (w Word) String() string {
	return Bus(w[:]).String()
}

// ParseBus parses a binary literal like "101" or "0000_1111" into a Bus. The
// first digit is the most significant bit.
//
func ParseBus(s string) (Bus, error) {
	b := make(Bus, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			b = append(b, Zero)
		case '1':
			b = append(b, One)
		case '_':
		default:
			return nil, errors.Errorf("in %q at pos %d: invalid bit %q", s, i+1, r)
		}
	}
	if len(b) == 0 {
		return nil, errors.Errorf("in %q: empty bus", s)
	}
	return b, nil
}

// ParseWord parses a 16 bits value. Accepted forms are a decimal number,
// a 0x prefixed hexadecimal number, a 0b prefixed binary literal, or a plain
// binary literal of exactly 16 digits (underscores allowed).
//
func ParseWord(s string) (Word, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "0b"):
		b, err := ParseBus(s[2:])
		if err != nil {
			return Word{}, err
		}
		if len(b) > WordSize {
			return Word{}, errors.Errorf("in %q: %d bits literal overflows a word", s, len(b))
		}
		return FromUint16(uint16(b.Uint())), nil
	case len(strings.Replace(s, "_", "", -1)) == WordSize && strings.Trim(s, "01_") == "":
		b, err := ParseBus(s)
		if err != nil {
			return Word{}, err
		}
		var w Word
		copy(w[:], b)
		return w, nil
	}
	digits, base := strings.Replace(s, "_", "", -1), 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	v, err := strconv.ParseUint(digits, base, WordSize)
	if err != nil {
		return Word{}, errors.Wrapf(err, "parse word %q", s)
	}
	return FromUint16(uint16(v)), nil
}
