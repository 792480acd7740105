package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// decode opens and decodes an audio file by extension. The returned closer
// releases the underlying file handle once the streamer is done with.
func decode(path string) (beep.StreamSeekCloser, func() error, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return nil, nil, beep.Format{}, err
	}

	return streamer, f.Close, format, nil
}

// Probe returns the duration in seconds of the audio file at path without
// touching the speaker.
func Probe(path string) (float64, error) {
	streamer, closer, format, err := decode(path)
	if err != nil {
		return 0, err
	}
	defer closer()
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()).Seconds(), nil
}
