package hwtest_test

import (
	"math/rand"
	"testing"

	"github.com/db47h/hwmem/hwtest"
	"github.com/db47h/hwmem/memory"
)

func TestCompareModel(t *testing.T) {
	hwtest.CompareModel(t, memory.NewRAM8(), 500)
	hwtest.CompareModel(t, memory.NewRAM64(), 500)
	hwtest.CompareModel(t, memory.NewRAM512(), 200)
}

func TestCompareUnits(t *testing.T) {
	// a 64 words RAM made of 8 RAM8, built by hand.
	ram64 := memory.NewBank("myRAM64", 3, func() memory.Unit { return memory.NewRAM8() })
	hwtest.CompareUnits(t, memory.NewRAM64(), ram64, 500)
}

func TestModel(t *testing.T) {
	m := make(hwtest.Model, 8)
	if out := m.Tick(0x1234, 3, true); out != 0x1234 {
		t.Fatalf("write returned %#04x", out)
	}
	if out := m.Tick(0, 3, false); out != 0x1234 {
		t.Fatalf("read returned %#04x", out)
	}
	ops := hwtest.RandomOps(rand.New(rand.NewSource(1)), 8, 100)
	for _, op := range ops {
		if op.Addr >= 8 {
			t.Fatalf("op %v out of range", op)
		}
	}
}
