// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwmem drives simulated RAM units: it runs tick scripts and
// benchmarks banks against a reference model.
//
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	debug bool
	size  string
	ticks int
	seed  int64
}

func (o *options) bindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.debug, "debug", false, "use debug log level")
}

func (o *options) logger() *logrus.Logger {
	logger := logrus.New()
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:          "hwmem",
		Short:        "Drive simulated 16 bits RAM units",
		SilenceUsage: true,
	}
	o.bindFlags(cmd.PersistentFlags())
	cmd.AddCommand(newRunCmd(o), newBenchCmd(o))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
