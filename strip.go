package wavstrip

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

// Strip scans src completely and then writes the stripped container to dst.
// Nothing is written to dst when the scan fails.
func Strip(dst io.Writer, src io.Reader) (*Container, error) {
	c, err := Scan(src)
	if err != nil {
		return nil, err
	}

	if err := NewWriter(dst).Write(c); err != nil {
		return c, err
	}

	return c, nil
}

// StripMetadata rewrites the WAVE file at srcPath into dstPath keeping only
// the fmt and data chunks. The destination is created only after the source
// was fully validated, so a rejected input leaves dstPath untouched.
func StripMetadata(srcPath, dstPath string) error {
	c, err := scanFile(srcPath)
	if err != nil {
		return err
	}

	return writeFile(dstPath, c)
}

// StripFile works like StripMetadata but writes to a temporary file next to
// dstPath and renames it into place on success. The scanned container is
// returned for reporting. The result gets the permissions of the file it
// replaces, or the same umask based mode os.Create would give a new file.
func StripFile(srcPath, dstPath string) (*Container, error) {
	c, err := scanFile(srcPath)
	if err != nil {
		return nil, err
	}

	tmp, err := createTemp(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file for %s: %w", dstPath, err)
	}

	tmpPath := tmp.Name()

	if fi, statErr := os.Stat(dstPath); statErr == nil {
		if err := tmp.Chmod(fi.Mode().Perm()); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return nil, fmt.Errorf("failed to set mode of %s: %w", tmpPath, err)
		}
	}

	err = writeTo(tmp, c)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", tmpPath, closeErr)
	}

	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to move %s into place: %w", dstPath, err)
	}

	return c, nil
}

// createTemp opens a new hidden file next to dstPath. Unlike os.CreateTemp
// the file is created with mode 0666 before umask.
func createTemp(dstPath string) (*os.File, error) {
	dir, base := filepath.Split(dstPath)

	for i := 0; i < 100; i++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")

		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, os.ErrExist) {
			continue
		}

		return f, err
	}

	return nil, fmt.Errorf("no free temp name for %s: %w", dstPath, os.ErrExist)
}

func scanFile(path string) (*Container, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	c, err := Scan(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func writeFile(path string, c *Container) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = writeTo(out, c)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, closeErr)
	}

	return err
}

func writeTo(f *os.File, c *Container) error {
	if err := NewWriter(f).Write(c); err != nil {
		return fmt.Errorf("%s: %w", f.Name(), err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", f.Name(), err)
	}

	return nil
}
