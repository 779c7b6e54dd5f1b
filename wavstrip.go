package wavstrip

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-audio/riff"
)

const (
	// WavFormatPCM is the fmt chunk format code for linear PCM.
	WavFormatPCM = 1

	riffHeaderSize  = 12
	chunkHeaderSize = 8
	// FmtChunkSize is the fixed payload size of a PCM fmt chunk.
	FmtChunkSize = 16
	listTypeSize = 4
)

var (
	// CIDFmt is the chunk ID for the fmt chunk.
	CIDFmt = riff.FmtID
	// CIDData is the chunk ID for the data chunk.
	CIDData = riff.DataFormatID
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDFact is the chunk ID for the fact chunk.
	CIDFact = [4]byte{'f', 'a', 'c', 't'}
)

var (
	// ErrTruncatedInput is returned when the source ends inside a fixed size
	// field: the RIFF header, a chunk header, the fmt payload or a LIST type.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrBadContainer is returned when the file is not a RIFF/WAVE container.
	ErrBadContainer = errors.New("not a RIFF/WAVE container")
	// ErrUnsupportedCodec is returned for non PCM fmt chunks and for any fact
	// chunk, which only exists in compressed files.
	ErrUnsupportedCodec = errors.New("unsupported codec, only linear PCM is supported")
	// ErrOversizedFormatChunk is returned when the fmt chunk declares more than
	// the 16 bytes of the PCM layout.
	ErrOversizedFormatChunk = errors.New("fmt chunk larger than the PCM layout")
	// ErrDuplicateFormatChunk is returned when a second fmt chunk is found.
	ErrDuplicateFormatChunk = errors.New("duplicate fmt chunk")
	// ErrIncompleteContainer is returned when the fmt or the data chunk is
	// missing.
	ErrIncompleteContainer = errors.New("incomplete container, fmt or data chunk missing")
	// ErrDataTooLarge is returned when the sample data does not fit the 32 bit
	// RIFF size field.
	ErrDataTooLarge = errors.New("data too large for a RIFF container")
)

// maxDataLen is the largest data payload whose RIFF size field, 36 bytes of
// fixed layout on top of the data, still fits in 32 bits.
const maxDataLen = math.MaxUint32 - (4 + chunkHeaderSize + FmtChunkSize + chunkHeaderSize)

func checkDataLen(n uint64) error {
	if n > maxDataLen {
		return fmt.Errorf("%w: %d bytes, at most %d", ErrDataTooLarge, n, uint64(maxDataLen))
	}

	return nil
}

// containerSize is the RIFF size field of a stripped file carrying dataLen
// sample bytes: WAVE tag, fmt header and payload, data header and payload.
func containerSize(dataLen int) uint32 {
	return uint32(4 + chunkHeaderSize + FmtChunkSize + chunkHeaderSize + dataLen)
}

func bytesDuration(n int, avgBytesPerSec uint32) time.Duration {
	if avgBytesPerSec == 0 {
		return 0
	}

	return time.Duration(n) * time.Second / time.Duration(avgBytesPerSec)
}
