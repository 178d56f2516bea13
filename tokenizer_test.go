package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/thirdcore/internal/iostream"
)

func newTokVM(t *testing.T, src string) *VM {
	t.Helper()
	vm := newVM()
	s := iostream.Open("test", strings.NewReader(src))
	vm.streams.Register(s)
	vm.in = s
	return vm
}

func TestScanTokenSkipsWhitespace(t *testing.T) {
	vm := newTokVM(t, "  \t\n foo \n  bar\t")
	tok, ok := vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "foo", tok)

	tok, ok = vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "bar", tok)

	_, ok = vm.scanToken()
	assert.False(t, ok)
}

func TestScanTokenSkipsHashComments(t *testing.T) {
	vm := newTokVM(t, "# this whole line is a comment\nfoo # trailing comment\nbar")
	tok, ok := vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "foo", tok)

	tok, ok = vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "bar", tok)
}

func TestScanTokenCommentWithoutTrailingNewlineIsEOF(t *testing.T) {
	vm := newTokVM(t, "foo # unterminated comment runs to EOF")
	tok, ok := vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "foo", tok)

	_, ok = vm.scanToken()
	assert.False(t, ok)
}

func TestScanTokenTruncatesAtNameBufCap(t *testing.T) {
	long := strings.Repeat("x", nameBufCap+20)
	vm := newTokVM(t, long)
	tok, ok := vm.scanToken()
	require.True(t, ok)
	assert.Len(t, tok, nameBufCap)
}

func TestScanTokenCleanEOF(t *testing.T) {
	vm := newTokVM(t, "")
	_, ok := vm.scanToken()
	assert.False(t, ok)

	vm2 := newTokVM(t, "   \n\t  ")
	_, ok = vm2.scanToken()
	assert.False(t, ok)
}

func TestScanTokenLastTokenNoTrailingWhitespace(t *testing.T) {
	vm := newTokVM(t, "onlyone")
	tok, ok := vm.scanToken()
	require.True(t, ok)
	assert.Equal(t, "onlyone", tok)
}

func TestParseNumberValid(t *testing.T) {
	cases := map[string]Cell{
		"0":   0,
		"42":  42,
		"-7":  -7,
		"007": 7,
		"-0":  0,
	}
	for tok, want := range cases {
		got, ok := parseNumber(tok)
		require.True(t, ok, tok)
		assert.Equal(t, want, got, tok)
	}
}

func TestParseNumberInvalid(t *testing.T) {
	for _, tok := range []string{"", "-", "+", "+7", "foo", "12foo", "1-2", "--1"} {
		_, ok := parseNumber(tok)
		assert.False(t, ok, tok)
	}
}
