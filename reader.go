package wavstrip

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var (
	errNilReader      = errors.New("can't scan a nil reader")
	errAlreadyScanned = errors.New("reader already scanned")
)

type scanState int

const (
	stateStart scanState = iota
	stateHaveHeader
	stateScanning
	stateHaveFormat
	stateHaveData
	stateFailed
)

func (s scanState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateHaveHeader:
		return "have-header"
	case stateScanning:
		return "scanning"
	case stateHaveFormat:
		return "have-format"
	case stateHaveData:
		return "have-data"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("scanState(%d)", int(s))
	}
}

// Reader walks the chunks of a WAVE container and keeps the fmt and data
// chunks. A Reader scans its source once.
type Reader struct {
	r      io.Reader
	policy *Policy
	state  scanState
	hdr    Header
	err    error
}

// NewReader creates a reader using DefaultPolicy. r must be positioned at
// the start of the RIFF header. If r is an io.Seeker, dropped chunks are
// skipped with Seek instead of being read.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r:      r,
		policy: DefaultPolicy(),
	}
}

// Scan reads a container from r with the default policy.
func Scan(r io.Reader) (*Container, error) {
	return NewReader(r).Read()
}

// SetPolicy replaces the chunk disposition table. A nil policy restores the
// default one.
func (rd *Reader) SetPolicy(p *Policy) {
	if rd == nil {
		return
	}

	if p == nil {
		p = DefaultPolicy()
	}

	rd.policy = p
}

// Err returns the error that failed the scan, if any.
func (rd *Reader) Err() error {
	if rd == nil {
		return nil
	}

	return rd.err
}

// ReadHeader reads and validates the 12 byte RIFF header without touching
// the chunks. Read continues from there.
func (rd *Reader) ReadHeader() (Header, error) {
	if rd == nil || rd.r == nil {
		return Header{}, errNilReader
	}

	if rd.state != stateStart {
		return Header{}, fmt.Errorf("%w (state %s)", errAlreadyScanned, rd.state)
	}

	hdr, err := rd.readHeader()
	if err != nil {
		return Header{}, rd.fail(err)
	}

	rd.hdr = hdr
	rd.state = stateHaveHeader

	return hdr, nil
}

// Read scans the whole source up to and including the data chunk. Chunks
// after the data chunk are never read.
func (rd *Reader) Read() (*Container, error) {
	if rd == nil || rd.r == nil {
		return nil, errNilReader
	}

	if rd.state == stateStart {
		if _, err := rd.ReadHeader(); err != nil {
			return nil, err
		}
	}

	if rd.state != stateHaveHeader {
		return nil, fmt.Errorf("%w (state %s)", errAlreadyScanned, rd.state)
	}

	acc := &Container{Header: rd.hdr}
	rd.state = stateScanning

	for rd.state != stateHaveData {
		ch, err := rd.readChunkHeader()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, rd.fail(err)
		}

		if err := rd.dispatch(acc, ch); err != nil {
			return nil, rd.fail(err)
		}
	}

	if !acc.Complete() {
		missing := "data"
		if acc.Fmt == nil {
			missing = "fmt"
		}

		return nil, rd.fail(fmt.Errorf("%w: no %s chunk before end of file", ErrIncompleteContainer, missing))
	}

	return acc, nil
}

func (rd *Reader) fail(err error) error {
	rd.state = stateFailed
	rd.err = err

	return err
}

func (rd *Reader) readHeader() (Header, error) {
	var buf [riffHeaderSize]byte

	if err := rd.readFull(buf[:], "RIFF header"); err != nil {
		return Header{}, err
	}

	hdr := decodeHeader(buf[:])
	if hdr.ID != riff.RiffID {
		return hdr, fmt.Errorf("%w: container tag %q - %w", ErrBadContainer, hdr.ID[:], riff.ErrFmtNotSupported)
	}

	if hdr.Format != riff.WavFormatID {
		return hdr, fmt.Errorf("%w: format tag %q - %w", ErrBadContainer, hdr.Format[:], riff.ErrFmtNotSupported)
	}

	return hdr, nil
}

// readChunkHeader returns io.EOF when the source ends exactly on a chunk
// boundary.
func (rd *Reader) readChunkHeader() (ChunkHeader, error) {
	var buf [chunkHeaderSize]byte

	_, err := io.ReadFull(rd.r, buf[:])
	if errors.Is(err, io.EOF) {
		return ChunkHeader{}, io.EOF
	}

	if err != nil {
		return ChunkHeader{}, truncated(err, "chunk header")
	}

	return decodeChunkHeader(buf[:]), nil
}

func (rd *Reader) dispatch(acc *Container, ch ChunkHeader) error {
	switch d := rd.policy.Lookup(ch.ID); d {
	case ParseFormat:
		return rd.parseFormat(acc, ch)
	case ParseDataAndStop:
		return rd.parseData(acc, ch)
	case SkimSubfield:
		var listType [listTypeSize]byte
		if err := rd.readFull(listType[:], fmt.Sprintf("%q list type", ch.ID[:])); err != nil {
			return err
		}

		acc.Dropped = append(acc.Dropped, ch)

		return nil
	case Reject:
		return fmt.Errorf("%w: found a %q chunk", ErrUnsupportedCodec, ch.ID[:])
	case SkipWithPadding:
		if err := rd.skip(ch); err != nil {
			return err
		}

		acc.Dropped = append(acc.Dropped, ch)

		return nil
	default:
		return fmt.Errorf("unhandled disposition %s for %s", d, ch)
	}
}

func (rd *Reader) parseFormat(acc *Container, ch ChunkHeader) error {
	if acc.Fmt != nil {
		return fmt.Errorf("%w: second %s", ErrDuplicateFormatChunk, ch)
	}

	if ch.Size > FmtChunkSize {
		return fmt.Errorf("%w: %s", ErrOversizedFormatChunk, ch)
	}

	// A short declared size still carries the full PCM field set.
	var buf [FmtChunkSize]byte
	if err := rd.readFull(buf[:], "fmt chunk"); err != nil {
		return err
	}

	f := decodeFmtChunk(buf[:])
	if f.FormatTag != WavFormatPCM {
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedCodec, f.FormatTag)
	}

	acc.FmtHeader = ch
	acc.Fmt = f
	rd.state = stateHaveFormat

	return nil
}

func (rd *Reader) parseData(acc *Container, ch ChunkHeader) error {
	chunk := &riff.Chunk{
		ID:   ch.ID,
		Size: int(ch.Size),
		R:    io.LimitReader(rd.r, int64(ch.Size)),
	}

	// A short data chunk ends the file; keep what is there.
	data, err := io.ReadAll(chunk)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ch, err)
	}

	acc.Data = data
	acc.DataHeader = ChunkHeader{ID: ch.ID, Size: uint32(len(data))}
	rd.state = stateHaveData

	return nil
}

// skip moves past the payload and its pad byte. Running out of input here is
// not an error, the next chunk header read reports the end of file. Any other
// read failure is returned.
func (rd *Reader) skip(ch ChunkHeader) error {
	n := int64(ch.Size)
	if ch.Padded() {
		n++
	}

	if s, ok := rd.r.(io.Seeker); ok {
		if _, err := s.Seek(n, io.SeekCurrent); err != nil {
			return fmt.Errorf("failed to skip %s: %w", ch, err)
		}

		return nil
	}

	chunk := &riff.Chunk{
		ID:   ch.ID,
		Size: int(n),
		R:    io.LimitReader(rd.r, n),
	}
	if _, err := io.CopyN(io.Discard, chunk, n); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to skip %s: %w", ch, err)
	}

	return nil
}

func (rd *Reader) readFull(buf []byte, what string) error {
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return truncated(err, what)
	}

	return nil
}

func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s", ErrTruncatedInput, what)
	}

	return fmt.Errorf("failed to read %s: %w", what, err)
}
