package wavstrip

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

type testChunk struct {
	id string
	// size is the declared payload length; it may differ from len(data).
	size uint32
	data []byte
}

func rawChunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func pcmFmtPayload(formatTag, channels uint16, sampleRate uint32, bitsPerSample uint16) []byte {
	blockAlign := channels * bitsPerSample / 8

	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], formatTag)
	binary.LittleEndian.PutUint16(b[2:4], channels)
	binary.LittleEndian.PutUint32(b[4:8], sampleRate)
	binary.LittleEndian.PutUint32(b[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[12:14], blockAlign)
	binary.LittleEndian.PutUint16(b[14:16], bitsPerSample)

	return b
}

func stereoFmt() testChunk {
	return rawChunk("fmt ", pcmFmtPayload(1, 2, 44100, 16))
}

func samples(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}

	return b
}

// buildWav writes a RIFF/WAVE file around chunks. Payloads with an odd
// length get a pad byte.
func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	return buildContainer(t, "RIFF", "WAVE", chunks...)
}

func buildContainer(t *testing.T, riffID, format string, chunks ...testChunk) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(format)

	for _, ch := range chunks {
		if len(ch.id) != 4 {
			t.Fatalf("bad chunk id %q", ch.id)
		}

		body.WriteString(ch.id)
		binary.Write(&body, binary.LittleEndian, ch.size)
		body.Write(ch.data)

		if len(ch.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	var b bytes.Buffer
	b.WriteString(riffID)
	binary.Write(&b, binary.LittleEndian, uint32(body.Len()))
	b.Write(body.Bytes())

	return b.Bytes()
}

// splitChunks lists the chunks of a written file, checking that every
// declared payload and pad byte is present.
func splitChunks(t *testing.T, b []byte) []testChunk {
	t.Helper()

	r := bytes.NewReader(b)

	var hdr struct {
		ID     [4]byte
		Size   uint32
		Format [4]byte
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		t.Fatalf("container header: %v", err)
	}

	if string(hdr.ID[:]) != "RIFF" || string(hdr.Format[:]) != "WAVE" {
		t.Fatalf("container header %q/%q", hdr.ID[:], hdr.Format[:])
	}

	var chunks []testChunk

	for r.Len() > 0 {
		var ch struct {
			ID   [4]byte
			Size uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &ch); err != nil {
			t.Fatalf("chunk header at %d: %v", int(r.Size())-r.Len(), err)
		}

		payload := make([]byte, ch.Size)
		if _, err := io.ReadFull(r, payload); err != nil {
			t.Fatalf("chunk %q payload: %v", ch.ID[:], err)
		}

		if ch.Size%2 == 1 {
			if pad, err := r.ReadByte(); err != nil || pad != 0 {
				t.Fatalf("chunk %q pad byte %d: %v", ch.ID[:], pad, err)
			}
		}

		chunks = append(chunks, testChunk{id: string(ch.ID[:]), size: ch.Size, data: payload})
	}

	return chunks
}

func chunkIDs(chunks []testChunk) []string {
	out := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		out = append(out, ch.id)
	}

	return out
}

func droppedIDs(c *Container) []string {
	out := make([]string, 0, len(c.Dropped))
	for _, ch := range c.Dropped {
		out = append(out, string(ch.ID[:]))
	}

	return out
}

// streamOnly hides the io.Seeker of the wrapped reader.
type streamOnly struct {
	r *bytes.Reader
}

func (s streamOnly) Read(p []byte) (int, error) {
	return s.r.Read(p)
}
