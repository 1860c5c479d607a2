package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/db47h/hwmem"
	hl "github.com/db47h/hwmem/hwlib"
)

func TestMux(t *testing.T) {
	// a, b, sel
	for i := 0; i < 8; i++ {
		a, b, sel := hwmem.B(i&4), hwmem.B(i&2), hwmem.B(i&1)
		exp := a
		if sel {
			exp = b
		}
		if out := hl.Mux(a, b, sel); out != exp {
			t.Errorf("Mux(%v, %v, %v) = %v, expected %v", a, b, sel, out, exp)
		}
	}
}

func TestDMux(t *testing.T) {
	td := []struct {
		in, sel hwmem.Bit
		a, b    hwmem.Bit
	}{
		{false, false, false, false},
		{false, true, false, false},
		{true, false, true, false},
		{true, true, false, true},
	}
	for _, d := range td {
		if a, b := hl.DMux(d.in, d.sel); a != d.a || b != d.b {
			t.Errorf("DMux(%v, %v) = %v, %v, expected %v, %v", d.in, d.sel, a, b, d.a, d.b)
		}
	}
}

func TestMux16(t *testing.T) {
	f := func(x, y uint16, sel bool) bool {
		out := hl.Mux16(hwmem.FromUint16(x), hwmem.FromUint16(y), hwmem.Bit(sel))
		if sel {
			return out.Uint16() == y
		}
		return out.Uint16() == x
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestDMux8Way(t *testing.T) {
	for s := uint(0); s < 8; s++ {
		sel := hwmem.Address(s, 3)
		out := hl.DMux8Way(hwmem.One, sel)
		var exp [8]hwmem.Bit
		exp[s] = hwmem.One
		if diff := cmp.Diff(exp, out); diff != "" {
			t.Errorf("DMux8Way(1, %v) mismatch (-want +got):\n%s", sel, diff)
		}
		if out := hl.DMux8Way(hwmem.Zero, sel); out != [8]hwmem.Bit{} {
			t.Errorf("DMux8Way(0, %v) = %v, expected all 0", sel, out)
		}
	}
}

func TestDMux4Way(t *testing.T) {
	td := []struct {
		sel string
		out [4]hwmem.Bit
	}{
		{"00", [4]hwmem.Bit{true, false, false, false}},
		{"01", [4]hwmem.Bit{false, true, false, false}},
		{"10", [4]hwmem.Bit{false, false, true, false}},
		{"11", [4]hwmem.Bit{false, false, false, true}},
	}
	for _, d := range td {
		sel, err := hwmem.ParseBus(d.sel)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(d.out, hl.DMux4Way(hwmem.One, sel)); diff != "" {
			t.Errorf("DMux4Way(1, %s) mismatch (-want +got):\n%s", d.sel, diff)
		}
	}
}

func TestMux8Way16(t *testing.T) {
	for s := uint(0); s < 8; s++ {
		var ones, zeros [8]hwmem.Word
		for i := range ones {
			ones[i], zeros[i] = hwmem.AllOnes, hwmem.AllZero
		}
		ones[s], zeros[s] = hwmem.AllZero, hwmem.AllOnes
		sel := hwmem.Address(s, 3)
		if out := hl.Mux8Way16(zeros, sel); out != hwmem.AllOnes {
			t.Errorf("Mux8Way16 sel=%v = %v, expected all ones", sel, out)
		}
		if out := hl.Mux8Way16(ones, sel); out != hwmem.AllZero {
			t.Errorf("Mux8Way16 sel=%v = %v, expected all zeros", sel, out)
		}
	}
}

func TestMux4Way16(t *testing.T) {
	opts := [4]hwmem.Word{
		hwmem.FromUint16(0x1111),
		hwmem.FromUint16(0x2222),
		hwmem.FromUint16(0x3333),
		hwmem.FromUint16(0x4444),
	}
	for s := uint(0); s < 4; s++ {
		if out := hl.Mux4Way16(opts, hwmem.Address(s, 2)); out != opts[s] {
			t.Errorf("Mux4Way16 sel=%d = %04x, expected %04x", s, out.Uint16(), opts[s].Uint16())
		}
	}
}

// MuxNWay16 must select the one output that DMuxNWay asserts.
func TestMuxNWay16_dual(t *testing.T) {
	for bits := 0; bits <= 5; bits++ {
		n := 1 << uint(bits)
		opts := make([]hwmem.Word, n)
		for i := range opts {
			opts[i] = hwmem.FromUint16(uint16(i*31 + 7))
		}
		for s := 0; s < n; s++ {
			sel := hwmem.Address(uint(s), bits)
			en := hl.DMuxNWay(hwmem.One, sel)
			hot := -1
			for i, b := range en {
				if b {
					if hot >= 0 {
						t.Fatalf("DMuxNWay(1, %v) is not one-hot: %v", sel, hwmem.Bus(en))
					}
					hot = i
				}
			}
			if hot != s {
				t.Fatalf("DMuxNWay(1, %v) selects %d, expected %d", sel, hot, s)
			}
			if out := hl.MuxNWay16(opts, sel); out != opts[hot] {
				t.Fatalf("MuxNWay16(%v) = %v, expected %v", sel, out, opts[hot])
			}
		}
	}
}

func TestMuxNWay16_invariant(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*hwmem.InvariantError); !ok {
			t.Fatalf("expected *hwmem.InvariantError panic, got %v", r)
		}
	}()
	hl.MuxNWay16(make([]hwmem.Word, 7), hwmem.Address(0, 3))
}

func TestMux8Way16_width(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*hwmem.InvariantError); !ok {
			t.Fatalf("expected *hwmem.InvariantError panic, got %v", r)
		}
	}()
	hl.Mux8Way16([8]hwmem.Word{}, hwmem.Address(0, 2))
}
