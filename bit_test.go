package hwmem_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/hwmem"
)

func TestWord(t *testing.T) {
	f := func(v uint16) bool {
		w := hw.FromUint16(v)
		return w.Uint16() == v && w.Bus().Uint() == uint(v)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
	w := hw.FromUint16(0x8001)
	if !w[0] || !w[15] || w[1] {
		t.Fatalf("FromUint16(0x8001) = %v, expected MSB first", w)
	}
	if s := w.String(); s != "1000000000000001" {
		t.Fatalf("got %q", s)
	}
	if hw.AllOnes.Uint16() != 0xffff || hw.AllZero.Uint16() != 0 {
		t.Fatal("bad predefined words")
	}
}

func TestAddress(t *testing.T) {
	td := []struct {
		a    uint
		bits int
		s    string
	}{
		{0, 3, "000"},
		{1, 3, "001"},
		{4, 3, "100"},
		{7, 3, "111"},
		{9, 3, "001"},
		{0x1a5, 9, "110100101"},
		{5, 0, ""},
	}
	for _, d := range td {
		b := hw.Address(d.a, d.bits)
		if len(b) != d.bits || b.String() != d.s {
			t.Errorf("Address(%d, %d) = %q, expected %q", d.a, d.bits, b, d.s)
		}
	}
}

func TestParseBus(t *testing.T) {
	b, err := hw.ParseBus("1_01")
	if err != nil {
		t.Fatal(err)
	}
	if b.Uint() != 5 || len(b) != 3 {
		t.Fatalf("ParseBus(\"1_01\") = %v", b)
	}
	for _, s := range []string{"", "_", "012", "1 0"} {
		if _, err := hw.ParseBus(s); err == nil {
			t.Errorf("ParseBus(%q): expected error", s)
		}
	}
	_, err = hw.ParseBus("10x")
	if err == nil || err.Error() != `in "10x" at pos 3: invalid bit 'x'` {
		t.Fatalf("got error %v", err)
	}
}

func TestParseWord(t *testing.T) {
	td := []struct {
		in  string
		out uint16
		err bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"0xBEEF", 0xbeef, false},
		{"0x_ff_ff", 0xffff, false},
		{"0b101", 5, false},
		{"1111000011110000", 0xf0f0, false},
		{"1111_0000_1111_0000", 0xf0f0, false},
		{" 65535 ", 0xffff, false},
		{"65536", 0, true},
		{"0b11111111111111111", 0, true},
		{"-1", 0, true},
		{"foo", 0, true},
	}
	for _, d := range td {
		w, err := hw.ParseWord(d.in)
		if d.err {
			if err == nil {
				t.Errorf("ParseWord(%q): expected error", d.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWord(%q): %v", d.in, err)
			continue
		}
		if w.Uint16() != d.out {
			t.Errorf("ParseWord(%q) = %#x, expected %#x", d.in, w.Uint16(), d.out)
		}
	}
}

func TestInvariant(t *testing.T) {
	var err error
	func() {
		defer hw.Recover(&err)
		hw.CheckWidth("TEST", "sel", hw.Address(0, 2), 3)
	}()
	ie, ok := err.(*hw.InvariantError)
	if !ok {
		t.Fatalf("expected *InvariantError, got %v", err)
	}
	if ie.Part != "TEST" || err.Error() != "TEST: broken invariant: sel bus is 2 bits wide, expected 3" {
		t.Fatalf("got %q", err)
	}

	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected boom panic, got %v", r)
		}
	}()
	func() {
		defer hw.Recover(&err)
		panic("boom")
	}()
}
