// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/hwmem"
	"github.com/db47h/hwmem/internal/script"
)

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run script.yaml",
		Short: "Run a tick script and check its expected outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return runScript(f, cmd.OutOrStdout(), o)
		},
	}
}

func runScript(r io.Reader, w io.Writer, o *options) (err error) {
	defer hwmem.Recover(&err)

	logger := o.logger()
	s, err := script.Load(r)
	if err != nil {
		logger.WithError(err).Error("invalid script")
		return err
	}
	res, err := script.Run(s, logger)
	for i, out := range res.Outputs {
		fmt.Fprintf(w, "%4d 0x%04x\n", i+1, out)
	}
	if err != nil {
		return errors.Wrap(err, "script failed")
	}
	logger.WithField("ticks", res.Ticks).Info("script passed")
	return nil
}
