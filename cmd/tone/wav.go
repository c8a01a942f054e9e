package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ushitora-anqou/handmade/sound"
)

const wavChunkFrames = 4096

func writeWAV(path string, wave *sound.SineWave, duration time.Duration) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeWAV(file, wave, duration); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func encodeWAV(w io.WriteSeeker, wave *sound.SineWave, duration time.Duration) error {
	const wavFormatPCM = 1
	enc := wav.NewEncoder(w, wave.Rate, 16, wave.Channels, wavFormatPCM)

	total := int(duration.Seconds() * float64(wave.Rate))
	samples := make([]int16, wavChunkFrames*wave.Channels)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wave.Channels,
			SampleRate:  wave.Rate,
		},
		SourceBitDepth: 16,
	}
	for done := 0; done < total; {
		frames := wavChunkFrames
		if total-done < frames {
			frames = total - done
		}
		chunk := samples[:frames*wave.Channels]
		wave.FillFrames(chunk)

		buf.Data = buf.Data[:0]
		for _, v := range chunk {
			buf.Data = append(buf.Data, int(v))
		}
		if err := enc.Write(buf); err != nil {
			return err
		}
		done += frames
	}
	return enc.Close()
}
