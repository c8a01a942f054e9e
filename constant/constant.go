package constant

const (
	WINDOW_TITLE       = "Handmade Hero"
	WINDOW_WIDTH       = 1280
	WINDOW_HEIGHT      = 720
	BACKBUFFER_WIDTH   = 1280
	BACKBUFFER_HEIGHT  = 720
	BYTES_PER_PIXEL    = 4
	TARGET_FPS         = 60
	SAMPLES_PER_SECOND = 40000
	CHANNELS           = 2
	BYTES_PER_SAMPLE   = 2 * CHANNELS // int16 per channel
	SOUND_BUFFER_SIZE  = SAMPLES_PER_SECOND * BYTES_PER_SAMPLE
	AUDIO_SAMPLES      = 1024 // frames per device callback
	TONE_HZ            = 256
	TONE_VOLUME        = 3000
	OFFSET_STEP        = 4
)
