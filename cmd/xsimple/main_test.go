package main

import (
	"flag"
	"strings"
	"testing"

	"github.com/ushitora-anqou/handmade/x11"
)

func mustParse(t *testing.T, args ...string) *options {
	t.Helper()
	fs := flag.NewFlagSet("xsimple", flag.ContinueOnError)
	opts, err := parseFlags(fs, args)
	if err != nil {
		t.Fatal(err)
	}
	return opts
}

func TestResolvePrecedence(t *testing.T) {
	file, err := x11.ParseResources(strings.NewReader(`
xsimple.title: from file
xsimple.borderWidth: 5
*geometry: 100x100
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args []string
		want settings
	}{
		{nil, settings{title: "from file", geometry: "100x100", bw: 5}},
		{[]string{"-xrm", "xsimple.title: from xrm", "-xrm", "*borderWidth: 9"},
			settings{title: "from xrm", geometry: "100x100", bw: 5}},
		{[]string{"-xrm", "xsimple.title: from xrm", "-title", "from flag", "-bw", "0", "-geometry", "+1+1"},
			settings{title: "from flag", geometry: "+1+1", bw: 0}},
	}
	for _, tc := range tests {
		db := x11.NewDatabase()
		db.Merge(file)
		got, err := resolve("xsimple", db, mustParse(t, tc.args...))
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.args, got, tc.want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	got, err := resolve("xsimple", x11.NewDatabase(), mustParse(t))
	if err != nil {
		t.Fatal(err)
	}
	if want := (settings{title: defaultTitle, bw: defaultBW}); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestResolveErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-xrm", "no colon"},
		{"-xrm", "xsimple.borderWidth: wide"},
	} {
		if _, err := resolve("xsimple", x11.NewDatabase(), mustParse(t, args...)); err == nil {
			t.Fatalf("%q: no error", args)
		}
	}
}

func TestPlacement(t *testing.T) {
	tests := []struct {
		geometry string
		want     x11.WindowOptions
	}{
		{"", x11.WindowOptions{Title: "t", Width: 640, Height: 360, BorderWidth: 2}},
		{"200x100", x11.WindowOptions{Title: "t", Width: 200, Height: 100, BorderWidth: 2}},
		{"-0+10", x11.WindowOptions{Title: "t", X: 1920 - 640 - 4, Y: 10, Width: 640, Height: 360, BorderWidth: 2}},
	}
	for _, tc := range tests {
		got, err := placement(settings{title: "t", geometry: tc.geometry, bw: 2}, 1920, 1080)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.geometry, got, tc.want)
		}
	}
	if _, err := placement(settings{geometry: "huge"}, 1920, 1080); err == nil {
		t.Fatal("bad geometry accepted")
	}
}
