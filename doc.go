// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hwmem simulates the memory fabric of a 16-bit computer, built bottom-up
from boolean gates to addressable RAM.

The root package provides the value types shared by every part: Bit, Bus and
Word. Combinational gates, the SR latch and the gated flip-flop live in the
hwlib sub-package. Registers and RAM banks live in the memory sub-package.

Time is modeled by call ordering only: every call to a unit's Tick method is
one clock cycle, and state committed during a tick is visible to the next call
on the same unit. There is no propagation delay and no concurrent clocking.

Buses are MSB first. A 3 bit selector [0 0 1] selects index 1 and [1 0 0]
selects index 4. Word[0] is the most significant bit of a word.

Wiring defects (a bus of the wrong width, a decoder producing an index with no
matching part) are not errors: they panic with an *InvariantError.
*/
package hwmem
