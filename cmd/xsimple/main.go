// Command xsimple opens a plain window for a few seconds.
//
// Settings come from, in increasing priority: <progname>.resources in the
// working directory, -xrm resource lines, and the other command-line flags.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ushitora-anqou/handmade/util"
	"github.com/ushitora-anqou/handmade/x11"
)

const (
	className    = "XSimple"
	defaultTitle = "Simple Window"
	defaultBW    = 2
	showFor      = 4 * time.Second
)

type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	display  string
	geometry string
	title    string
	bw       int
	xrm      stringList
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{bw: -1}
	fs.StringVar(&opts.display, "display", "", "X server to connect to")
	fs.StringVar(&opts.geometry, "geometry", "", "window geometry, WxH+X+Y")
	fs.StringVar(&opts.title, "title", "", "window title")
	fs.IntVar(&opts.bw, "bw", -1, "border width in pixels")
	fs.Var(&opts.xrm, "xrm", "resource specification, may be repeated")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

type settings struct {
	title    string
	geometry string
	bw       int
}

// resolve merges the resource database and the flags.
func resolve(prog string, db *x11.Database, opts *options) (settings, error) {
	s := settings{title: defaultTitle, bw: defaultBW}

	cmdline := x11.NewDatabase()
	for _, line := range opts.xrm {
		if err := cmdline.PutLine(line); err != nil {
			return settings{}, fmt.Errorf("-xrm %q: %w", line, err)
		}
	}
	db.Merge(cmdline)

	if v, ok := db.Get(prog+".title", className+".Title"); ok {
		s.title = v
	}
	if v, ok := db.Get(prog+".geometry", className+".Geometry"); ok {
		s.geometry = v
	}
	if v, ok := db.Get(prog+".borderWidth", className+".BorderWidth"); ok {
		bw, err := strconv.Atoi(v)
		if err != nil || bw < 0 {
			return settings{}, fmt.Errorf("invalid borderWidth resource %q", v)
		}
		s.bw = bw
	}

	if opts.title != "" {
		s.title = opts.title
	}
	if opts.geometry != "" {
		s.geometry = opts.geometry
	}
	if opts.bw >= 0 {
		s.bw = opts.bw
	}
	return s, nil
}

// placement puts the window at the top-left corner, a third of the display
// in each direction, unless the geometry says otherwise.
func placement(s settings, displayWidth, displayHeight int) (x11.WindowOptions, error) {
	def := x11.WindowOptions{
		Title:       s.title,
		Width:       displayWidth / 3,
		Height:      displayHeight / 3,
		BorderWidth: s.bw,
	}
	g, err := x11.ParseGeometry(s.geometry)
	if err != nil {
		return x11.WindowOptions{}, err
	}
	return g.Place(def, displayWidth, displayHeight), nil
}

func run(prog string, opts *options) error {
	db, err := x11.LoadResourceFile(prog + ".resources")
	if err != nil {
		return err
	}
	s, err := resolve(prog, db, opts)
	if err != nil {
		return err
	}

	conn, err := x11.Connect(opts.display)
	if err != nil {
		return err
	}
	defer conn.Close()

	width, height := conn.DisplaySize()
	wopts, err := placement(s, width, height)
	if err != nil {
		return err
	}
	log.Printf("window %dx%d+%d+%d on a %dx%d display", wopts.Width, wopts.Height, wopts.X, wopts.Y, width, height)

	win, err := conn.CreateSimpleWindow(wopts)
	if err != nil {
		return err
	}
	defer win.Destroy()
	if err := win.Map(); err != nil {
		return err
	}
	conn.Sync()

	time.Sleep(showFor)
	return nil
}

func main() {
	util.SetupLogger("xsimple")
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(filepath.Base(os.Args[0]), opts); err != nil {
		log.Fatal(err)
	}
}
