// Command tone plays a sine wave until interrupted.
//
// By default it plays on an ALSA device and recovers from underruns and
// suspends. With -o it renders -duration of the tone to a WAV file instead.
// Built with the portaudio tag, -portaudio plays through the default
// portaudio device.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/ushitora-anqou/handmade/alsa"
	"github.com/ushitora-anqou/handmade/sound"
	"github.com/ushitora-anqou/handmade/util"
)

type options struct {
	cfg       alsa.Config
	freq      float64
	output    string
	duration  time.Duration
	portaudio bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	def := alsa.DefaultConfig()
	opts := &options{}
	fs.StringVar(&opts.cfg.Device, "device", def.Device, "playback device")
	fs.IntVar(&opts.cfg.Rate, "rate", def.Rate, "stream rate in Hz")
	fs.IntVar(&opts.cfg.Channels, "channels", def.Channels, "count of channels")
	fs.Float64Var(&opts.freq, "frequency", 440, "sine wave frequency in Hz")
	fs.DurationVar(&opts.cfg.BufferTime, "buffer", def.BufferTime, "ring buffer length")
	fs.DurationVar(&opts.cfg.PeriodTime, "period", def.PeriodTime, "period length")
	fs.BoolVar(&opts.cfg.Resample, "resample", def.Resample, "enable alsa-lib resampling")
	fs.BoolVar(&opts.cfg.PeriodEvent, "pevent", def.PeriodEvent, "wake up once per period")
	fs.StringVar(&opts.output, "o", "", "write a WAV file instead of playing")
	fs.DurationVar(&opts.duration, "duration", 0, "stop after this long; 0 plays until interrupted")
	fs.BoolVar(&opts.portaudio, "portaudio", false, "play through portaudio")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case opts.cfg.Rate < 4000 || opts.cfg.Rate > 196000:
		return nil, fmt.Errorf("rate %d out of range 4000-196000", opts.cfg.Rate)
	case opts.cfg.Channels < 1 || opts.cfg.Channels > 1024:
		return nil, fmt.Errorf("channels %d out of range 1-1024", opts.cfg.Channels)
	case opts.freq < 50 || opts.freq > 5000:
		return nil, fmt.Errorf("frequency %g out of range 50-5000", opts.freq)
	case opts.duration < 0:
		return nil, fmt.Errorf("duration must not be negative")
	case opts.output != "" && opts.duration == 0:
		return nil, fmt.Errorf("-o needs a positive -duration")
	}
	return opts, nil
}

func run(ctx context.Context, opts *options) error {
	wave := sound.NewSineWave(opts.freq, opts.cfg.Rate, opts.cfg.Channels)
	log.Printf("%g Hz sine, %d Hz, %d channels", opts.freq, opts.cfg.Rate, opts.cfg.Channels)

	switch {
	case opts.output != "":
		return writeWAV(opts.output, wave, opts.duration)
	case opts.portaudio:
		return playPortAudio(ctx, wave)
	default:
		return playALSA(ctx, opts, wave)
	}
}

func main() {
	util.SetupLogger("tone")
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
