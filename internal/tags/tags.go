// Package tags reads display metadata from audio files.
package tags

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// Info holds the metadata shown in the player and recorded in history.
type Info struct {
	Title  string
	Artist string
}

// Read reads tag metadata from a music file. Files without usable tags
// fall back to the base file name as title; this never fails for a
// readable file.
func Read(path string) Info {
	info := Info{Title: filepath.Base(path)}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	return info
}

// Display returns "Artist - Title", or just the title when the artist
// is unknown.
func (i Info) Display() string {
	if i.Artist == "" {
		return i.Title
	}
	return i.Artist + " - " + i.Title
}
