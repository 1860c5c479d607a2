// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package script loads and runs tick scripts: a RAM size and a list of clock
// cycles with optional expected outputs.
//
//	size: 8
//	steps:
//	  - {in: 0xffff, addr: 0, load: true, expect: 0xffff}
//	  - {in: 0, addr: 0, expect: 0xffff}
//	  - {in: 0, addr: 7, expect: 0}
//
package script

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/memory"
)

// Script is a parsed tick script.
//
type Script struct {
	Size  string `yaml:"size"`
	Steps []Step `yaml:"steps"`

	words int
}

// Step is one clock cycle. In and Expect accept any form supported by
// hwmem.ParseWord. An empty Expect disables the output check.
//
type Step struct {
	In     string `yaml:"in"`
	Addr   uint   `yaml:"addr"`
	Load   bool   `yaml:"load"`
	Expect string `yaml:"expect"`

	in     uint16
	expect uint16
	check  bool
}

// Words returns the RAM size of the script, in words.
//
func (s *Script) Words() int { return s.words }

// ParseSize parses a RAM size like "512", "4k" or "16K".
//
func ParseSize(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	mul := 1
	if strings.HasSuffix(s, "k") {
		s, mul = s[:len(s)-1], 1024
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid RAM size %q", s)
	}
	return n * mul, nil
}

// Load reads and validates a script.
//
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode script")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if s.Size == "" {
		return errors.New("missing RAM size")
	}
	n, err := ParseSize(s.Size)
	if err != nil {
		return err
	}
	if err = memory.CheckSize(n); err != nil {
		return err
	}
	s.words = n
	if len(s.Steps) == 0 {
		return errors.New("no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		if st.Addr >= uint(n) {
			return errors.Wrapf(memory.ErrAddressRange, "step %d: address %d in a %d words RAM", i+1, st.Addr, n)
		}
		if st.In != "" {
			w, err := hwmem.ParseWord(st.In)
			if err != nil {
				return errors.Wrapf(err, "step %d: in", i+1)
			}
			st.in = w.Uint16()
		}
		if st.Expect != "" {
			w, err := hwmem.ParseWord(st.Expect)
			if err != nil {
				return errors.Wrapf(err, "step %d: expect", i+1)
			}
			st.expect, st.check = w.Uint16(), true
		}
	}
	return nil
}

// MismatchError reports a step whose output differs from the expected one.
//
type MismatchError struct {
	Step     int // 1-based step number
	Expected uint16
	Got      uint16
}

func (e *MismatchError) Error() string {
	return "step " + strconv.Itoa(e.Step) + ": expected " + hex(e.Expected) + ", got " + hex(e.Got)
}

func hex(v uint16) string {
	s := strconv.FormatUint(uint64(v), 16)
	return "0x" + strings.Repeat("0", 4-len(s)) + s
}

// Result holds the outputs of a script run.
//
type Result struct {
	Outputs []uint16
	Ticks   uint
}

// Run runs s on a new RAM and returns the output of every step. It stops at
// the first step whose output does not match its expected value and returns
// a *MismatchError along with the outputs so far.
//
func Run(s *Script, log logrus.FieldLogger) (Result, error) {
	var res Result
	ram, err := memory.NewRAMWords(s.words)
	if err != nil {
		return res, err
	}
	d := memory.NewDriver(ram)
	log.WithFields(logrus.Fields{"ram": ram.Name(), "steps": len(s.Steps)}).Info("running script")

	for i, st := range s.Steps {
		out := d.Tick(st.in, st.Addr, st.Load)
		res.Outputs = append(res.Outputs, out)
		res.Ticks = d.Ticks()
		l := log.WithFields(logrus.Fields{
			"step": i + 1,
			"in":   hex(st.in),
			"addr": st.Addr,
			"load": st.Load,
			"out":  hex(out),
		})
		if st.check && out != st.expect {
			l.WithField("expect", hex(st.expect)).Error("output mismatch")
			return res, &MismatchError{Step: i + 1, Expected: st.expect, Got: out}
		}
		l.Debug("tick")
	}
	return res, nil
}
