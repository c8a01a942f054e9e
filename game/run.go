package game

import (
	"github.com/ushitora-anqou/handmade/constant"
	"github.com/ushitora-anqou/handmade/util"
	"github.com/ushitora-anqou/handmade/window"
)

// Run drives h through wind at the target frame rate until the window asks
// to quit.
func Run(wind window.Window, h *Handmade) error {
	return run(wind, h, window.NewFramePacer(constant.TARGET_FPS))
}

func run(wind window.Window, h *Handmade, pacer *window.FramePacer) error {
	for {
		quit, event := wind.HandleEvents()
		if quit {
			return nil
		}
		if err := h.Update(event); err != nil {
			return err
		}
		if err := wind.UpdateScreen(h.Buffer()); err != nil {
			return err
		}
		if overshoot := pacer.MaySleep(); overshoot > 0 {
			util.Trace("game: frame late by %v", overshoot)
		}
	}
}
