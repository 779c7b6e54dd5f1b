package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeWav(t *testing.T, extra ...string) string {
	t.Helper()

	var body bytes.Buffer
	body.WriteString("WAVE")

	for _, id := range extra {
		body.WriteString(id)
		binary.Write(&body, binary.LittleEndian, uint32(2))
		body.Write([]byte{0, 0})
	}

	body.WriteString("fmt ")
	binary.Write(&body, binary.LittleEndian, uint32(16))
	binary.Write(&body, binary.LittleEndian, []uint16{1, 2})
	binary.Write(&body, binary.LittleEndian, []uint32{44100, 176400})
	binary.Write(&body, binary.LittleEndian, []uint16{4, 16})

	body.WriteString("data")
	binary.Write(&body, binary.LittleEndian, uint32(17640))
	body.Write(make([]byte, 17640))

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(body.Len()))
	b.Write(body.Bytes())

	path := filepath.Join(t.TempDir(), "in.wav")

	err := os.WriteFile(path, b.Bytes(), 0o644)
	if err != nil {
		t.Fatalf("write temp input: %v", err)
	}

	return path
}

func TestRunRequiresPath(t *testing.T) {
	var out bytes.Buffer

	err := run(nil, &out)
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunPrintsFormat(t *testing.T) {
	var outBuf bytes.Buffer

	err := run([]string{makeWav(t, "JUNK", "bext")}, &outBuf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := outBuf.String()
	checks := []string{
		"Channels: 2",
		"SampleRate: 44100",
		"BitDepth: 16",
		"DataBytes: 17640",
		"Duration: 100ms",
		`chunk [0]:	"JUNK" (2 bytes)`,
		`chunk [1]:	"bext" (2 bytes)`,
	}

	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected output to contain %q\nfull output:\n%s", c, out)
		}
	}
}

func TestRunNoExtraChunks(t *testing.T) {
	var outBuf bytes.Buffer

	err := run([]string{makeWav(t)}, &outBuf)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(outBuf.String(), "No extra chunks present") {
		t.Fatalf("unexpected output:\n%s", outBuf.String())
	}
}

func TestRunInvalidPath(t *testing.T) {
	var outBuf bytes.Buffer

	err := run([]string{"/nonexistent/path.wav"}, &outBuf)
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}
