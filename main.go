package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/handmade/game"
	"github.com/ushitora-anqou/handmade/util"
)

var screenshotPath = flag.String("screenshot", "", "write the last frame to this BMP file on exit")

func startCPUProfile() (func(), error) {
	filename := os.Getenv("HANDMADE_CPUPROFILE")
	if filename == "" {
		return func() {}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

func saveScreenshot(h *game.Handmade) error {
	if *screenshotPath == "" {
		return nil
	}
	file, err := os.Create(*screenshotPath)
	if err != nil {
		return err
	}
	if err := h.Buffer().WriteBMP(file); err != nil {
		file.Close()
		return fmt.Errorf("write screenshot: %w", err)
	}
	return file.Close()
}

func main() {
	util.SetupLogger("handmade")
	flag.Parse()

	stopProfile, err := startCPUProfile()
	if err != nil {
		fatal(err)
	}
	err = run()
	stopProfile()
	if err != nil {
		fatal(err)
	}
}
