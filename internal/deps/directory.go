package deps

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckDirectory verifies the scan directory is usable: it must exist, be a
// directory, be readable and writable (outputs land beside the sources),
// and have some headroom for intermediate WAVs.
func CheckDirectory(path string) Status {
	status := Status{
		Name:        "Media directory",
		Command:     path,
		Description: "Scanned folder; outputs are written beside sources",
	}

	info, err := os.Stat(path)
	if err != nil {
		status.Detail = fmt.Sprintf("not accessible: %v", err)
		return status
	}
	if !info.IsDir() {
		status.Detail = "not a directory"
		return status
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		status.Detail = fmt.Sprintf("insufficient permissions: %v", err)
		return status
	}

	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		status.Detail = fmt.Sprintf("statfs failed: %v", err)
		return status
	}
	freeMiB := fs.Bavail * uint64(fs.Bsize) / (1 << 20)
	status.Available = true
	status.Detail = fmt.Sprintf("%d MiB free", freeMiB)
	return status
}
