package puzzle

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound indicates the named input file does not exist.
var ErrInputNotFound = errors.New("puzzle: input not found")

// InputPath returns the file ReadInput would open for name.
func InputPath(name string, opts ...Option) string {
	o := gatherOptions(opts)
	return filepath.Join(o.dir, name+".txt")
}

// ReadInput returns the lines of <dir>/<name>.txt. Both "\n" and "\r\n"
// terminators are accepted and a final terminator does not produce an
// empty trailing line. A missing file yields ErrInputNotFound.
func ReadInput(name string, opts ...Option) ([]string, error) {
	path := InputPath(name, opts...)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("puzzle: read %s: %w", path, err)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines the way ReadInput does.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// MD5 returns the lowercase hex MD5 digest of s, always 32 characters.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
