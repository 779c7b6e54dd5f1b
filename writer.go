package wavstrip

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var errNilWriter = errors.New("can't write to a nil writer")

// Writer emits minimal WAVE containers.
type Writer struct {
	w io.Writer

	WrittenBytes int
}

// NewWriter creates a writer over w. The underlying writer is never closed.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits c as RIFF header, fmt chunk and data chunk, in that order.
// The RIFF size is recomputed from the data length. An odd data length gets
// a pad byte that the size field does not count.
//
// Data longer than the 32 bit size field allows is rejected with
// ErrDataTooLarge before anything is written. If a write fails partway the
// destination holds a partial file.
func (wr *Writer) Write(c *Container) error {
	if wr == nil || wr.w == nil {
		return errNilWriter
	}

	if !c.Complete() {
		return ErrIncompleteContainer
	}

	if err := checkDataLen(uint64(len(c.Data))); err != nil {
		return err
	}

	fmtID := c.FmtHeader.ID
	if fmtID == [4]byte{} {
		fmtID = CIDFmt
	}

	buf := make([]byte, 0, riffHeaderSize+chunkHeaderSize+FmtChunkSize+chunkHeaderSize)

	// riff header
	buf = append(buf, riff.RiffID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, c.Size())
	buf = append(buf, riff.WavFormatID[:]...)
	// fmt chunk, always declared as the 16 byte PCM layout even when the
	// source declared less; readers that expect a full PCM header accept it.
	buf = append(buf, fmtID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, FmtChunkSize)
	buf = c.Fmt.appendBinary(buf)
	// data header, sized by what was actually read
	buf = append(buf, c.DataHeader.ID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Data)))

	if err := wr.add(buf, "headers"); err != nil {
		return err
	}

	if err := wr.add(c.Data, "sample data"); err != nil {
		return err
	}

	if len(c.Data)%2 == 1 {
		return wr.add([]byte{0}, "data padding")
	}

	return nil
}

func (wr *Writer) add(b []byte, what string) error {
	if len(b) == 0 {
		return nil
	}

	n, err := wr.w.Write(b)
	wr.WrittenBytes += n

	if err != nil {
		return fmt.Errorf("failed to write %s: %w", what, err)
	}

	return nil
}
