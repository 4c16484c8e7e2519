package debug

import (
	"strings"
	"testing"
)

func TestFailCallsHook(t *testing.T) {
	var gotFile, gotFn, gotMsg string
	var gotLine int
	OnFail = func(file string, line int, fn, message string) {
		gotFile, gotLine, gotFn, gotMsg = file, line, fn, message
	}
	defer func() {
		OnFail = nil
		if r := recover(); r != "nvic: irq out of range" {
			t.Errorf("panic value: got %v", r)
		}
		if gotMsg != "nvic: irq out of range" {
			t.Errorf("hook message: got %q", gotMsg)
		}
		if !strings.HasSuffix(gotFile, "hook_test.go") {
			t.Errorf("hook file: got %q", gotFile)
		}
		if gotLine == 0 {
			t.Error("hook line not set")
		}
		if !strings.Contains(gotFn, "TestFailCallsHook") {
			t.Errorf("hook fn: got %q", gotFn)
		}
	}()

	assertStandin("nvic: irq out of range")
}

// assertStandin fails like Assert does, independent of the debug build tag.
func assertStandin(msg string) {
	fail(msg)
}

func TestFailWithoutHookPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("panic value: got %v", r)
		}
	}()
	fail("boom")
}
