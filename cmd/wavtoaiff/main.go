// This tool converts a PCM wav file into an aiff file with the same samples
// and stores it in the same folder as the source.
// Only the fmt and data chunks are carried over.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavstrip"
	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

var (
	errMissingPath       = errors.New("you must set the -path flag")
	errUnhandledBitDepth = errors.New("unhandled bit depth")
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)
	flagSet.SetOutput(out)

	flagPath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	flagOut := flagSet.String("o", "", "The aiff file to write, defaults to the source path with an .aif extension")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *flagPath == "" {
		return errMissingPath
	}

	sourcePath := expandHome(*flagPath)

	file, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}
	defer file.Close()

	c, err := wavstrip.Scan(file)
	if err != nil {
		return fmt.Errorf("invalid WAV file: %w", err)
	}

	outPath := *flagOut
	if outPath == "" {
		outPath = sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"
	}

	intBuf, err := pcmToIntBuffer(c)
	if err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(c.Fmt.SampleRate), int(c.Fmt.BitsPerSample), int(c.Fmt.NumChannels))

	if err := encoder.Write(intBuf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", outPath, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	usr, err := user.Current()
	if err != nil {
		log.Println("Failed to get the user home directory")
		return path
	}

	return strings.Replace(path, "~", usr.HomeDir, 1)
}

// pcmToIntBuffer unpacks the little endian samples of the data chunk. 8 bit
// wav samples are unsigned and get recentered around zero since aiff stores
// them signed. A trailing partial sample is dropped.
func pcmToIntBuffer(c *wavstrip.Container) (*audio.IntBuffer, error) {
	bitDepth := int(c.Fmt.BitsPerSample)
	bytesPerSample := (bitDepth-1)/8 + 1

	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d", errUnhandledBitDepth, bitDepth)
	}

	data := c.Data
	samples := make([]int, len(data)/bytesPerSample)

	for i := range samples {
		b := data[i*bytesPerSample : (i+1)*bytesPerSample]

		switch bytesPerSample {
		case 1:
			samples[i] = int(b[0]) - 128
		case 2:
			samples[i] = int(int16(binary.LittleEndian.Uint16(b)))
		case 3:
			samples[i] = int(audio.Int24LETo32(b))
		case 4:
			samples[i] = int(int32(binary.LittleEndian.Uint32(b)))
		}
	}

	return &audio.IntBuffer{
		Format:         c.Fmt.Format(),
		Data:           samples,
		SourceBitDepth: bitDepth,
	}, nil
}
