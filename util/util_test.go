package util

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestBoolToU8(t *testing.T) {
	if BoolToU8(true) != 1 || BoolToU8(false) != 0 {
		t.Fatalf("BoolToU8: unexpected conversion")
	}
}

func TestTrace(t *testing.T) {
	var out bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&out)
	defer log.SetOutput(orig)
	defer DisableTrace()

	Trace("hidden %d", 1)
	EnableTrace()
	Trace("shown %d", 2)
	DisableTrace()
	Trace("hidden %d", 3)

	got := out.String()
	if strings.Contains(got, "hidden") || !strings.Contains(got, "shown 2") {
		t.Fatalf("trace output = %q", got)
	}
}
