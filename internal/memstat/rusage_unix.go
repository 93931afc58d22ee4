//go:build linux || freebsd

package memstat

import "golang.org/x/sys/unix"

// maxRSS returns the peak resident set size. Linux reports ru_maxrss in KiB.
func maxRSS() int64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return int64(ru.Maxrss) * 1024
}
