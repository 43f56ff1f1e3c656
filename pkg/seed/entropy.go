package seed

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrEntropySourceUnavailable marks an entropy input that could not be read.
var ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

// Entropy supplies the weak inputs mixed into a derived seed.
type Entropy interface {
	// Now returns wall-clock seconds since the epoch.
	Now() int64
	// PID returns the current process identifier.
	PID() int64
	// Uptime returns whole seconds since boot.
	Uptime() (int64, error)
}

// DefaultUptimePath is the Linux uptime file.
const DefaultUptimePath = "/proc/uptime"

// SystemEntropy reads the entropy inputs from the running system.
type SystemEntropy struct {
	UptimePath string
}

// NewSystemEntropy returns a SystemEntropy reading DefaultUptimePath.
func NewSystemEntropy() *SystemEntropy {
	return &SystemEntropy{UptimePath: DefaultUptimePath}
}

func (s *SystemEntropy) Now() int64 { return time.Now().Unix() }

func (s *SystemEntropy) PID() int64 { return int64(os.Getpid()) }

// Uptime parses the integer part of the first field of the uptime file.
func (s *SystemEntropy) Uptime() (int64, error) {
	path := s.UptimePath
	if path == "" {
		path = DefaultUptimePath
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: uptime: %v", ErrEntropySourceUnavailable, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: uptime: empty %s", ErrEntropySourceUnavailable, path)
	}
	return parseUptime(line)
}

func parseUptime(line string) (int64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: uptime: no value", ErrEntropySourceUnavailable)
	}
	whole, _, _ := strings.Cut(fields[0], ".")
	secs, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: uptime: %v", ErrEntropySourceUnavailable, err)
	}
	return secs, nil
}

// FixedEntropy returns constant inputs. A non-nil UptimeErr makes Uptime fail.
type FixedEntropy struct {
	Time      int64
	Process   int64
	Up        int64
	UptimeErr error
}

func (f FixedEntropy) Now() int64 { return f.Time }

func (f FixedEntropy) PID() int64 { return f.Process }

func (f FixedEntropy) Uptime() (int64, error) {
	if f.UptimeErr != nil {
		return 0, f.UptimeErr
	}
	return f.Up, nil
}
