package wavstrip

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Header is the 12 byte RIFF container header.
type Header struct {
	ID [4]byte
	// Size counts every byte after the size field itself.
	Size   uint32
	Format [4]byte
}

func (h Header) String() string {
	return fmt.Sprintf("%s (%d bytes) %s", h.ID[:], h.Size, h.Format[:])
}

func decodeHeader(b []byte) Header {
	var h Header
	copy(h.ID[:], b[0:4])
	h.Size = binary.LittleEndian.Uint32(b[4:8])
	copy(h.Format[:], b[8:12])

	return h
}

// ChunkHeader is the 8 byte header in front of every chunk payload.
type ChunkHeader struct {
	ID [4]byte
	// Size is the payload length, without the header and the pad byte.
	Size uint32
}

// Padded reports whether the payload is followed by a pad byte.
func (c ChunkHeader) Padded() bool {
	return c.Size%2 == 1
}

func (c ChunkHeader) String() string {
	return fmt.Sprintf("%q (%d bytes)", c.ID[:], c.Size)
}

func decodeChunkHeader(b []byte) ChunkHeader {
	var c ChunkHeader
	copy(c.ID[:], b[0:4])
	c.Size = binary.LittleEndian.Uint32(b[4:8])

	return c
}

// Container holds what a scan keeps from a WAVE file.
type Container struct {
	Header    Header
	FmtHeader ChunkHeader
	Fmt       *FmtChunk
	// DataHeader.Size is the number of sample bytes actually read, which can
	// be smaller than what the source declared.
	DataHeader ChunkHeader
	Data       []byte
	// Dropped lists the chunks that were discarded, in file order.
	Dropped []ChunkHeader
}

// Complete reports whether both the fmt and the data chunk were found.
func (c *Container) Complete() bool {
	return c != nil && c.Fmt != nil && c.DataHeader.ID != [4]byte{}
}

// Size returns the RIFF size field of the stripped container.
func (c *Container) Size() uint32 {
	if c == nil {
		return containerSize(0)
	}

	return containerSize(len(c.Data))
}

// Duration returns the playback time of the sample data.
func (c *Container) Duration() time.Duration {
	if c == nil || c.Fmt == nil {
		return 0
	}

	return bytesDuration(len(c.Data), c.Fmt.AvgBytesPerSec)
}
