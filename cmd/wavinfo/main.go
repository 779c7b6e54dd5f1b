// This tool prints the format, length and chunk layout of wav files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavstrip"
)

const missingPathMessage = "You must pass the path of at least one wav file"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	for _, path := range args {
		if err := describe(path, out); err != nil {
			return err
		}
	}

	return nil
}

func describe(path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	c, err := wavstrip.Scan(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	format := c.Fmt.Format()

	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Channels: %d\n", format.NumChannels)
	fmt.Fprintf(out, "SampleRate: %d\n", format.SampleRate)
	fmt.Fprintf(out, "BitDepth: %d\n", c.Fmt.BitsPerSample)
	fmt.Fprintf(out, "BlockAlign: %d\n", c.Fmt.BlockAlign)
	fmt.Fprintf(out, "DataBytes: %d\n", len(c.Data))
	fmt.Fprintf(out, "Duration: %s\n", c.Duration())

	if len(c.Dropped) == 0 {
		fmt.Fprintln(out, "No extra chunks present")
		return nil
	}

	fmt.Fprintln(out, "Extra chunks:")

	for i, ch := range c.Dropped {
		fmt.Fprintf(out, "\tchunk [%d]:\t%s\n", i, ch)
	}

	return nil
}
