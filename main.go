// Package main implements a self-hosting FORTH core: a byte-addressed
// dictionary arena, parameter and return stacks, a threaded-code inner
// interpreter, and an outer interpreter that compiles or executes tokens
// according to mode and each word's immediate flag. The primitive set is
// deliberately small; control structures, comments and the dynamic tick
// operator are bootstrapped from startup.f, a startup script written in
// the language itself.
//
// Dictionary entries live in a single fixed-size byte arena. here and
// latest are not ordinary variables: they are the addresses of two
// reserved cells at the very start of the arena, so that the primitives
// operating on them (here, latest, @, !) are themselves and build on
// nothing beyond what the inner interpreter already provides.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jcorbin/thirdcore/internal/logio"
)

func main() {
	var (
		timeout     time.Duration
		trace       bool
		dump        bool
		startupPath string
	)
	flag.DurationVar(&timeout, "timeout", 0, "time limit, checked only before the run starts")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a dictionary/stack dump after execution")
	flag.StringVar(&startupPath, "startup", "", "override the embedded startup.f with a file on disk")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	opts := []VMOption{
		WithLogf(log.Leveledf("TRACE")),
		WithTrace(trace),
		WithStdin(os.Stdin),
		WithOutput(os.Stdout),
	}
	if startupPath != "" {
		f, err := os.Open(startupPath)
		if err != nil {
			log.Errorf("%+v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithStartup(f))
	}

	vm := New(opts...)
	defer vm.Close()

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer vmDumper{vm: vm, out: lw}.dump()
	}

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	log.ErrorIf(vm.Run(ctx))
}
