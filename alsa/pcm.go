//go:build linux

package alsa

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/ushitora-anqou/handmade/util"
)

// PCM is an open playback stream.
type PCM struct {
	lib        *lib
	handle     uintptr
	cfg        Config
	bufferSize int
	periodSize int
}

// Open opens cfg.Device for playback and applies the hardware and software
// parameters. The returned PCM must be closed.
func Open(cfg Config) (*PCM, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l, err := getLib()
	if err != nil {
		return nil, err
	}

	pcm := &PCM{lib: l, cfg: cfg}
	res := l.pcmOpen(&pcm.handle, cfg.Device, SND_PCM_STREAM_PLAYBACK, 0)
	if err := l.check(fmt.Sprintf("could not open PCM device %q", cfg.Device), int(res)); err != nil {
		return nil, err
	}
	if err := pcm.setHWParams(); err != nil {
		pcm.Close()
		return nil, fmt.Errorf("could not set hw params: %w", err)
	}
	if err := pcm.setSWParams(); err != nil {
		pcm.Close()
		return nil, fmt.Errorf("could not set sw params: %w", err)
	}
	util.Trace("alsa: %s: rate %d, channels %d, buffer %d frames, period %d frames",
		cfg.Device, cfg.Rate, cfg.Channels, pcm.bufferSize, pcm.periodSize)
	return pcm, nil
}

func (p *PCM) setHWParams() error {
	l := p.lib
	var params uintptr
	if err := l.check("hw_params_malloc", int(l.hwParamsMalloc(&params))); err != nil {
		return err
	}
	defer l.hwParamsFree(params)

	// Start from the full configuration space of the card.
	if err := l.check("broken configuration for playback: no configurations available",
		int(l.hwParamsAny(p.handle, params))); err != nil {
		return err
	}
	resample := uint32(util.BoolToU8(p.cfg.Resample))
	if err := l.check("resampling setup failed for playback",
		int(l.hwParamsSetRateResample(p.handle, params, resample))); err != nil {
		return err
	}
	if err := l.check("access type not available for playback",
		int(l.hwParamsSetAccess(p.handle, params, SND_PCM_ACCESS_RW_INTERLEAVED))); err != nil {
		return err
	}
	if err := l.check("sample format not available for playback",
		int(l.hwParamsSetFormat(p.handle, params, SND_PCM_FORMAT_S16_LE))); err != nil {
		return err
	}
	if err := l.check(fmt.Sprintf("channels count (%d) not available for playback", p.cfg.Channels),
		int(l.hwParamsSetChannels(p.handle, params, uint32(p.cfg.Channels)))); err != nil {
		return err
	}

	rate := uint32(p.cfg.Rate)
	if err := l.check(fmt.Sprintf("rate %dHz not available for playback", p.cfg.Rate),
		int(l.hwParamsSetRateNear(p.handle, params, &rate, nil))); err != nil {
		return err
	}
	if int(rate) != p.cfg.Rate {
		return fmt.Errorf("alsa: rate doesn't match (requested %dHz, got %dHz)", p.cfg.Rate, rate)
	}

	var dir int32
	bufferTime := uint32(p.cfg.BufferTime / time.Microsecond)
	if err := l.check(fmt.Sprintf("unable to set buffer time %d for playback", bufferTime),
		int(l.hwParamsSetBufferTimeNear(p.handle, params, &bufferTime, &dir))); err != nil {
		return err
	}
	var size uint
	if err := l.check("unable to get buffer size for playback",
		int(l.hwParamsGetBufferSize(params, &size))); err != nil {
		return err
	}
	p.bufferSize = int(size)

	periodTime := uint32(p.cfg.PeriodTime / time.Microsecond)
	if err := l.check(fmt.Sprintf("unable to set period time %d for playback", periodTime),
		int(l.hwParamsSetPeriodTimeNear(p.handle, params, &periodTime, &dir))); err != nil {
		return err
	}
	if err := l.check("unable to get period size for playback",
		int(l.hwParamsGetPeriodSize(params, &size, &dir))); err != nil {
		return err
	}
	p.periodSize = int(size)

	return l.check("unable to set hw params for playback", int(l.hwParams(p.handle, params)))
}

func (p *PCM) setSWParams() error {
	l := p.lib
	var params uintptr
	if err := l.check("sw_params_malloc", int(l.swParamsMalloc(&params))); err != nil {
		return err
	}
	defer l.swParamsFree(params)

	if err := l.check("unable to determine current sw_params for playback",
		int(l.swParamsCurrent(p.handle, params))); err != nil {
		return err
	}
	// Start the transfer when the buffer is almost full.
	threshold := uint(p.bufferSize / p.periodSize * p.periodSize)
	if err := l.check("unable to set start threshold mode for playback",
		int(l.swParamsSetStartThreshold(p.handle, params, threshold))); err != nil {
		return err
	}
	availMin := uint(p.periodSize)
	if p.cfg.PeriodEvent {
		availMin = uint(p.bufferSize)
	}
	if err := l.check("unable to set avail min for playback",
		int(l.swParamsSetAvailMin(p.handle, params, availMin))); err != nil {
		return err
	}
	if p.cfg.PeriodEvent {
		if err := l.check("unable to set period event",
			int(l.swParamsSetPeriodEvent(p.handle, params, 1))); err != nil {
			return err
		}
	}
	return l.check("unable to set sw params for playback", int(l.swParams(p.handle, params)))
}

func (p *PCM) FrameSize() int {
	return p.cfg.FrameSize()
}

func (p *PCM) PeriodSize() int {
	return p.periodSize
}

func (p *PCM) BufferSize() int {
	return p.bufferSize
}

// Write writes whole frames from buf and returns how many frames the device
// accepted.
func (p *PCM) Write(buf []byte) (int, error) {
	frames := len(buf) / p.FrameSize()
	if frames == 0 {
		return 0, nil
	}
	res := p.lib.pcmWritei(p.handle, unsafe.Pointer(&buf[0]), uint(frames))
	if err := p.lib.check("write", res); err != nil {
		return 0, err
	}
	return res, nil
}

func (p *PCM) Prepare() error {
	return p.lib.check("prepare", int(p.lib.pcmPrepare(p.handle)))
}

func (p *PCM) Resume() error {
	return p.lib.check("resume", int(p.lib.pcmResume(p.handle)))
}

// Drain blocks until everything written so far has been played.
func (p *PCM) Drain() error {
	return p.lib.check("drain", int(p.lib.pcmDrain(p.handle)))
}

func (p *PCM) Close() error {
	if p.handle == 0 {
		return nil
	}
	err := p.lib.check("close", int(p.lib.pcmClose(p.handle)))
	p.handle = 0
	return err
}
