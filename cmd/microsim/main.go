// Copyright 2025, MaXin-noob (github.com/MaXin-noob/principles-of-Computer)

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/MaXin-noob/principles-of-Computer/asm"
	"github.com/MaXin-noob/principles-of-Computer/emulator"
)

var ErrNoProgram = errors.New("no program to run (use -c)")

type options struct {
	Compile    string
	Trace      string
	Dump       bool
	Listing    bool
	Limit      int
	Verbose    bool
	ProfileDir string
}

func main() {
	var opts options

	flag.StringVar(&opts.Compile, "c", "", ".asm file to compile and run")
	flag.StringVar(&opts.Trace, "t", "", "Micro-order trace output ('-' for stdout)")
	flag.BoolVar(&opts.Dump, "d", false, "Dump the final machine state")
	flag.BoolVar(&opts.Listing, "l", false, "Print the assembler listing, do not execute")
	flag.IntVar(&opts.Limit, "n", emulator.STEP_LIMIT, "Instruction step limit")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose mode")
	flag.StringVar(&opts.ProfileDir, "p", "", "Write a CPU profile to this directory")

	flag.Parse()

	if flag.NArg() != 0 {
		logrus.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Exit only once run's deferred cleanup is done.
	err := run(opts, os.Stdout)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) (err error) {
	if len(opts.ProfileDir) != 0 {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.ProfileDir), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	if len(opts.Compile) == 0 {
		err = ErrNoProgram
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose

	inf, err := os.Open(opts.Compile)
	if err != nil {
		return
	}
	defer inf.Close()

	assm := &asm.Assembler{Verbose: opts.Verbose}
	for key, value := range emu.Defines() {
		assm.Predefine(key, value)
	}
	emu.Program, err = assm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.Compile, err)
		return
	}

	if opts.Listing {
		fmt.Fprint(stdout, emu.Program.Listing())
		return
	}

	switch opts.Trace {
	case "":
	case "-":
		emu.Trace = stdout
	default:
		var ouf *os.File
		ouf, err = os.Create(opts.Trace)
		if err != nil {
			return
		}
		defer func() {
			err = errors.Join(err, ouf.Close())
		}()
		emu.Trace = ouf
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	steps, err := emu.Run(opts.Limit)
	if err != nil {
		err = fmt.Errorf("%v: %w", opts.Compile, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"steps": steps,
		"pc":    fmt.Sprintf("%04X", uint16(emu.Registers().PC)),
	}).Info("halted")

	if opts.Dump {
		pp.Fprintln(stdout, emu.Snapshot())
	} else {
		fmt.Fprint(stdout, emu.Simulator.String())
	}

	return
}
