package lfs

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// PointerVersion is the only pointer format understood by git-lfs today.
	PointerVersion = "https://git-lfs.github.com/spec/v1"
	// MaxPointerSize bounds the blobs worth inspecting as pointer candidates.
	MaxPointerSize = 1024

	oidPrefix = "sha256:"
)

var (
	ErrNotPointer = errors.New("not a git-lfs pointer")

	oidPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

// Pointer is the small text stub committed to git in place of a large file.
type Pointer struct {
	Oid  string
	Size int64
}

// ParsePointer decodes the v1 pointer format. Unknown extra keys are
// accepted; version, oid and size are mandatory.
func ParsePointer(data []byte) (Pointer, error) {
	if len(data) == 0 || len(data) > MaxPointerSize {
		return Pointer{}, ErrNotPointer
	}

	values := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, " ")
		if !found {
			return Pointer{}, ErrNotPointer
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return Pointer{}, err
	}

	if values["version"] != PointerVersion {
		return Pointer{}, ErrNotPointer
	}

	oid, ok := strings.CutPrefix(values["oid"], oidPrefix)
	if !ok || !oidPattern.MatchString(oid) {
		return Pointer{}, fmt.Errorf("%w: invalid oid %q", ErrNotPointer, values["oid"])
	}

	size, err := strconv.ParseInt(values["size"], 10, 64)
	if err != nil || size < 0 {
		return Pointer{}, fmt.Errorf("%w: invalid size %q", ErrNotPointer, values["size"])
	}

	return Pointer{Oid: oid, Size: size}, nil
}

// Encode renders p in the canonical pointer form.
func (p Pointer) Encode() []byte {
	return []byte(fmt.Sprintf("version %s\noid %s%s\nsize %d\n", PointerVersion, oidPrefix, p.Oid, p.Size))
}
