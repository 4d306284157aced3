package platform

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gp-oxid/oxskel/internal/skelerr"
)

// Default modes for scaffolded directories and files, before umask.
const (
	DirPerm  os.FileMode = 0777
	FilePerm os.FileMode = 0644
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ParseMode parses an octal permission string such as "0644" or "755".
func ParseMode(s string) (os.FileMode, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o7777 {
		return 0, skelerr.InvalidOption("permission %q is not an octal file mode", s)
	}
	return os.FileMode(v), nil
}

// IsEmptyDir reports whether path is a directory without entries. The second
// result is false when path does not exist.
func IsEmptyDir(path string) (empty bool, exists bool, err error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	if !info.IsDir() {
		return false, true, skelerr.InvalidOption("path is not a directory [%s]", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return false, true, err
	}
	defer f.Close()

	names, err := f.Readdirnames(1)
	if len(names) > 0 {
		return false, true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, true, err
	}
	return true, true, nil
}
