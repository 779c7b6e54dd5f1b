package wavstrip

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// FmtChunk stores the fixed fields of a PCM fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// Format returns the go-audio description of the stream.
func (f *FmtChunk) Format() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.NumChannels),
		SampleRate:  int(f.SampleRate),
	}
}

func (f *FmtChunk) String() string {
	if f == nil {
		return "<nil>"
	}

	return fmt.Sprintf("format %d, %d ch, %d Hz, %d bytes/s, align %d, %d bits",
		f.FormatTag, f.NumChannels, f.SampleRate, f.AvgBytesPerSec, f.BlockAlign, f.BitsPerSample)
}

// decodeFmtChunk parses the 16 byte PCM layout. b must hold FmtChunkSize
// bytes.
func decodeFmtChunk(b []byte) *FmtChunk {
	return &FmtChunk{
		FormatTag:      binary.LittleEndian.Uint16(b[0:2]),
		NumChannels:    binary.LittleEndian.Uint16(b[2:4]),
		SampleRate:     binary.LittleEndian.Uint32(b[4:8]),
		AvgBytesPerSec: binary.LittleEndian.Uint32(b[8:12]),
		BlockAlign:     binary.LittleEndian.Uint16(b[12:14]),
		BitsPerSample:  binary.LittleEndian.Uint16(b[14:16]),
	}
}

func (f *FmtChunk) appendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint16(b, f.FormatTag)
	b = binary.LittleEndian.AppendUint16(b, f.NumChannels)
	b = binary.LittleEndian.AppendUint32(b, f.SampleRate)
	b = binary.LittleEndian.AppendUint32(b, f.AvgBytesPerSec)
	b = binary.LittleEndian.AppendUint16(b, f.BlockAlign)

	return binary.LittleEndian.AppendUint16(b, f.BitsPerSample)
}
