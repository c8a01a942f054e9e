//go:build linux

// Package alsa plays interleaved signed 16-bit PCM through libasound.
//
// The library is opened at run time with purego, so binaries build without
// cgo and still start on machines that have no ALSA installed. Callers that
// can live without sound check Load first.
package alsa

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const libName = "libasound.so.2"

const (
	SND_PCM_STREAM_PLAYBACK       = 0
	SND_PCM_ACCESS_RW_INTERLEAVED = 3
	SND_PCM_FORMAT_S16_LE         = 2
)

type lib struct {
	pcmOpen    func(pcm *uintptr, name string, stream, mode int32) int32
	pcmClose   func(pcm uintptr) int32
	pcmPrepare func(pcm uintptr) int32
	pcmResume  func(pcm uintptr) int32
	pcmDrain   func(pcm uintptr) int32
	pcmWritei  func(pcm uintptr, buf unsafe.Pointer, frames uint) int

	hwParamsMalloc            func(params *uintptr) int32
	hwParamsFree              func(params uintptr)
	hwParamsAny               func(pcm, params uintptr) int32
	hwParamsSetRateResample   func(pcm, params uintptr, val uint32) int32
	hwParamsSetAccess         func(pcm, params uintptr, access int32) int32
	hwParamsSetFormat         func(pcm, params uintptr, format int32) int32
	hwParamsSetChannels       func(pcm, params uintptr, val uint32) int32
	hwParamsSetRateNear       func(pcm, params uintptr, val *uint32, dir *int32) int32
	hwParamsSetBufferTimeNear func(pcm, params uintptr, val *uint32, dir *int32) int32
	hwParamsGetBufferSize     func(params uintptr, val *uint) int32
	hwParamsSetPeriodTimeNear func(pcm, params uintptr, val *uint32, dir *int32) int32
	hwParamsGetPeriodSize     func(params uintptr, val *uint, dir *int32) int32
	hwParams                  func(pcm, params uintptr) int32

	swParamsMalloc            func(params *uintptr) int32
	swParamsFree              func(params uintptr)
	swParamsCurrent           func(pcm, params uintptr) int32
	swParamsSetStartThreshold func(pcm, params uintptr, val uint) int32
	swParamsSetAvailMin       func(pcm, params uintptr, val uint) int32
	swParamsSetPeriodEvent    func(pcm, params uintptr, val int32) int32
	swParams                  func(pcm, params uintptr) int32

	strerror func(errnum int32) string
}

var (
	loadOnce  sync.Once
	loaded    *lib
	errLoaded error
)

// Load opens libasound once. Every later call returns the same result.
func Load() error {
	_, err := getLib()
	return err
}

func getLib() (*lib, error) {
	loadOnce.Do(func() {
		loaded, errLoaded = openLib()
	})
	return loaded, errLoaded
}

func openLib() (*lib, error) {
	handle, err := purego.Dlopen(libName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("alsa: %s not available: %w", libName, err)
	}

	l := &lib{}
	symbols := []struct {
		fptr interface{}
		name string
	}{
		{&l.pcmOpen, "snd_pcm_open"},
		{&l.pcmClose, "snd_pcm_close"},
		{&l.pcmPrepare, "snd_pcm_prepare"},
		{&l.pcmResume, "snd_pcm_resume"},
		{&l.pcmDrain, "snd_pcm_drain"},
		{&l.pcmWritei, "snd_pcm_writei"},
		{&l.hwParamsMalloc, "snd_pcm_hw_params_malloc"},
		{&l.hwParamsFree, "snd_pcm_hw_params_free"},
		{&l.hwParamsAny, "snd_pcm_hw_params_any"},
		{&l.hwParamsSetRateResample, "snd_pcm_hw_params_set_rate_resample"},
		{&l.hwParamsSetAccess, "snd_pcm_hw_params_set_access"},
		{&l.hwParamsSetFormat, "snd_pcm_hw_params_set_format"},
		{&l.hwParamsSetChannels, "snd_pcm_hw_params_set_channels"},
		{&l.hwParamsSetRateNear, "snd_pcm_hw_params_set_rate_near"},
		{&l.hwParamsSetBufferTimeNear, "snd_pcm_hw_params_set_buffer_time_near"},
		{&l.hwParamsGetBufferSize, "snd_pcm_hw_params_get_buffer_size"},
		{&l.hwParamsSetPeriodTimeNear, "snd_pcm_hw_params_set_period_time_near"},
		{&l.hwParamsGetPeriodSize, "snd_pcm_hw_params_get_period_size"},
		{&l.hwParams, "snd_pcm_hw_params"},
		{&l.swParamsMalloc, "snd_pcm_sw_params_malloc"},
		{&l.swParamsFree, "snd_pcm_sw_params_free"},
		{&l.swParamsCurrent, "snd_pcm_sw_params_current"},
		{&l.swParamsSetStartThreshold, "snd_pcm_sw_params_set_start_threshold"},
		{&l.swParamsSetAvailMin, "snd_pcm_sw_params_set_avail_min"},
		{&l.swParamsSetPeriodEvent, "snd_pcm_sw_params_set_period_event"},
		{&l.swParams, "snd_pcm_sw_params"},
		{&l.strerror, "snd_strerror"},
	}
	for _, sym := range symbols {
		addr, err := purego.Dlsym(handle, sym.name)
		if err != nil {
			purego.Dlclose(handle)
			return nil, fmt.Errorf("alsa: %s: missing symbol %s: %w", libName, sym.name, err)
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	return l, nil
}
