// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/db47h/hwmem/hwtest"
	"github.com/db47h/hwmem/internal/script"
	"github.com/db47h/hwmem/memory"
)

func newBenchCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run random ticks on a RAM and check them against a reference model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := bench(o, o.logger())
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&o.size, "size", "512", "RAM size in words: 8, 64, 512, 4k, 16k or 32k")
	fs.IntVar(&o.ticks, "ticks", 10000, "number of clock cycles to run")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 = time based)")
	return cmd
}

// bench returns the simulated clock rate in Hz.
func bench(o *options, logger logrus.FieldLogger) (float64, error) {
	words, err := script.ParseSize(o.size)
	if err != nil {
		return 0, err
	}
	ram, err := memory.NewRAMWords(words)
	if err != nil {
		return 0, err
	}
	if o.ticks <= 0 {
		return 0, errors.Errorf("invalid tick count %d", o.ticks)
	}
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l := logger.WithFields(logrus.Fields{"ram": ram.Name(), "ticks": o.ticks, "seed": seed})
	l.Info("starting")

	d := memory.NewDriver(ram)
	m := make(hwtest.Model, words)
	start := time.Now()
	for _, op := range hwtest.RandomOps(rand.New(rand.NewSource(seed)), words, o.ticks) {
		exp := m.Tick(op.In, op.Addr, op.Load)
		if got := d.Tick(op.In, op.Addr, op.Load); got != exp {
			l.WithFields(logrus.Fields{"tick": d.Ticks(), "op": op.String()}).Errorf("expected %#04x, got %#04x", exp, got)
			return 0, errors.Errorf("output mismatch at tick %d", d.Ticks())
		}
	}
	elapsed := time.Since(start)
	hz := float64(d.Ticks()) / elapsed.Seconds()
	l.WithFields(logrus.Fields{"elapsed": elapsed, "hz": hz}).Info("done")
	return hz, nil
}
