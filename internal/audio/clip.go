package audio

import (
	"bytes"
	"encoding/base64"
	"io"
)

// Clip is a synthesized audio buffer together with what was spoken.
type Clip struct {
	Data   []byte
	Format string // "mp3" or "wav"
	Lang   string
	Text   string
	Slow   bool
}

// MIMEType returns the media type of the clip data
func (c *Clip) MIMEType() string {
	switch c.Format {
	case "wav":
		return "audio/wav"
	case "opus":
		return "audio/ogg"
	case "aac":
		return "audio/aac"
	case "flac":
		return "audio/flac"
	default:
		return "audio/mpeg"
	}
}

// DataURI returns the clip as a base64 data URI for embedding in a page
func (c *Clip) DataURI() string {
	return "data:" + c.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(c.Data)
}

// Reader returns a reader over the clip data
func (c *Clip) Reader() io.Reader {
	return bytes.NewReader(c.Data)
}
