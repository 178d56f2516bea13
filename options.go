package main

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/jcorbin/thirdcore/internal/flushio"
)

// VMOption configures a VM at construction time, in the same
// functional-options shape as the rest of the pack.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	WithStdin(strings.NewReader("")),
	WithOutput(ioutil.Discard),
)

func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

// WithStdin supplies the reader fed to the VM once the bootstrap script
// hands control back via (resume-stdin). Defaults to an empty reader; main
// overrides it with os.Stdin.
func WithStdin(r io.Reader) VMOption { return withStdin{r} }

// WithStartup overrides the embedded bootstrap script, for tests that want
// to exercise a trimmed-down or deliberately broken startup sequence.
func WithStartup(r io.Reader) VMOption { return withStartup{r} }

// WithOutput sets the VM's emit/tell sink. Defaults to ioutil.Discard.
func WithOutput(w io.Writer) VMOption { return withOutput{w} }

// WithTee additionally mirrors output to w, alongside whatever WithOutput
// already set (or the default discard sink).
func WithTee(w io.Writer) VMOption { return withTee{w} }

// WithLogf wires up the diagnostic/trace sink; nil disables both.
func WithLogf(logf func(string, ...interface{})) VMOption { return withLogf(logf) }

// WithTrace turns on the per-step inner-interpreter trace log (requires
// WithLogf to actually be visible anywhere).
func WithTrace(trace bool) VMOption { return withTrace(trace) }

type withStdin struct{ io.Reader }
type withStartup struct{ io.Reader }
type withOutput struct{ io.Writer }
type withTee struct{ io.Writer }
type withLogf func(string, ...interface{})
type withTrace bool

func (o withStdin) apply(vm *VM)   { vm.stdinReader = o.Reader }
func (o withStartup) apply(vm *VM) { vm.startupReader = o.Reader }

func (o withOutput) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (o withTee) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (logf withLogf) apply(vm *VM) { vm.logf = logf }
func (t withTrace) apply(vm *VM)   { vm.trace = bool(t) }
