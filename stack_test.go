package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopRoundTrip(t *testing.T) {
	vm := newVM()
	s := newStack("t", 0)
	s.push(vm, 1)
	s.push(vm, 2)
	s.push(vm, 3)
	assert.Equal(t, Cell(3), s.pop(vm))
	assert.Equal(t, Cell(2), s.pop(vm))
	assert.Equal(t, Cell(1), s.pop(vm))
	assert.Equal(t, 0, s.len())
}

func TestStackUnderflowHalts(t *testing.T) {
	vm := newVM()
	s := newStack("t", 0)
	assert.Panics(t, func() { s.pop(vm) })
}

func TestStackOverflowHalts(t *testing.T) {
	vm := newVM()
	s := newStack("t", 2)
	s.push(vm, 1)
	s.push(vm, 2)
	assert.Panics(t, func() { s.push(vm, 3) })
}

func TestStackSnapshotIsACopy(t *testing.T) {
	vm := newVM()
	s := newStack("t", 0)
	s.push(vm, 9)
	snap := s.snapshot()
	snap[0] = 100
	assert.Equal(t, Cell(9), s.pop(vm), "mutating a snapshot must not affect the live stack")
}

func TestStackReset(t *testing.T) {
	vm := newVM()
	s := newStack("t", 0)
	s.push(vm, 1)
	s.push(vm, 2)
	s.reset()
	assert.Equal(t, 0, s.len())

	s.reset(5, 6, 7)
	assert.Equal(t, []Cell{5, 6, 7}, s.snapshot())
}

func TestDataStackRespectsCapacity(t *testing.T) {
	vm := newVM()
	for i := 0; i < stackCapacity; i++ {
		vm.data.push(vm, Cell(i))
	}
	assert.Panics(t, func() { vm.data.push(vm, 0) }, "data stack should halt past stackCapacity")
}
