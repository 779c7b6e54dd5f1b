// This tool removes every chunk but fmt and data from wav files.
// A single file is written next to the source (or to -o), a directory is
// processed into a wavstrip folder inside it. Existing files are only
// replaced with -overwrite.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavstrip"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}

	log.Fatal(err)
}

var (
	errMissingInput      = errors.New("pass a wav file or -dir")
	errOutputMulti       = errors.New("-o only works with a single input file")
	errNotWav            = errors.New("not a .wav file")
	errDestinationExists = errors.New("destination file already exists, use -overwrite to replace it")
)

type options struct {
	verbose   bool
	overwrite bool
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavstrip", flag.ContinueOnError)
	flagSet.SetOutput(out)

	output := flagSet.String("o", "", "destination file, defaults to <name>_stripped.wav next to the source")
	dir := flagSet.String("dir", "", "directory containing the wav files to strip")
	verbose := flagSet.Bool("v", false, "list the dropped chunks")
	overwrite := flagSet.Bool("overwrite", false, "replace existing destination files")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	files := flagSet.Args()
	if len(files) == 0 && *dir == "" {
		return errMissingInput
	}

	if *output != "" && (len(files) != 1 || *dir != "") {
		return errOutputMulti
	}

	opts := options{verbose: *verbose, overwrite: *overwrite}

	if *output != "" {
		return stripOne(files[0], *output, opts, out)
	}

	var failed int

	for _, src := range files {
		if err := stripOne(src, defaultOutputPath(src), opts, out); err != nil {
			fmt.Fprintf(out, "Something went wrong stripping %s - %v\n", src, err)
			failed++
		}
	}

	if *dir != "" {
		n, err := stripDir(*dir, opts, out)
		if err != nil {
			return err
		}

		failed += n
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) could not be stripped", failed)
	}

	return nil
}

func stripDir(dir string, opts options, out io.Writer) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	outDir := filepath.Join(dir, "wavstrip")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var failed int

	for _, entry := range entries {
		if entry.IsDir() || !isWav(entry.Name()) {
			continue
		}

		src := filepath.Join(dir, entry.Name())

		err := stripOne(src, filepath.Join(outDir, entry.Name()), opts, out)
		if err != nil {
			fmt.Fprintf(out, "Something went wrong stripping %s - %v\n", src, err)
			failed++
		}
	}

	return failed, nil
}

func stripOne(src, dst string, opts options, out io.Writer) error {
	for _, p := range []string{src, dst} {
		if !isWav(p) {
			return fmt.Errorf("%w: %s", errNotWav, p)
		}
	}

	if !opts.overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("%s: %w", dst, errDestinationExists)
		}
	}

	c, err := wavstrip.StripFile(src, dst)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s -> %s (%d sample bytes, %d chunk(s) dropped)\n", src, dst, len(c.Data), len(c.Dropped))

	if opts.verbose {
		for _, ch := range c.Dropped {
			fmt.Fprintf(out, "\tdropped %s\n", ch)
		}
	}

	return nil
}

func isWav(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".wav")
}

func defaultOutputPath(src string) string {
	ext := filepath.Ext(src)

	return src[:len(src)-len(ext)] + "_stripped" + ext
}
