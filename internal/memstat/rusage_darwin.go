//go:build darwin

package memstat

import "golang.org/x/sys/unix"

// maxRSS returns the peak resident set size. Darwin reports ru_maxrss in bytes.
func maxRSS() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return int64(ru.Maxrss)
}
