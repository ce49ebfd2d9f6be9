package quote

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Numberer hands out quote numbers.
type Numberer interface {
	Next(t time.Time) string
}

// TimestampNumbers issues "#YYYYMMDD-<epoch millis>" numbers. The millis
// part never repeats within a process: a second call in the same
// millisecond gets the next one.
type TimestampNumbers struct {
	mu   sync.Mutex
	last int64
}

func (n *TimestampNumbers) Next(t time.Time) string {
	ms := t.UnixMilli()
	n.mu.Lock()
	if ms <= n.last {
		ms = n.last + 1
	}
	n.last = ms
	n.mu.Unlock()
	return "#" + t.Format("20060102") + "-" + strconv.FormatInt(ms, 10)
}

// UUIDNumbers issues "#YYYYMMDD-<uuid>" numbers, safe across instances.
type UUIDNumbers struct{}

func (UUIDNumbers) Next(t time.Time) string {
	return "#" + t.Format("20060102") + "-" + uuid.NewString()
}

// NewNumberer picks a generator by mode name; unknown modes fall back to
// timestamps.
func NewNumberer(mode string) Numberer {
	if mode == "uuid" {
		return UUIDNumbers{}
	}
	return &TimestampNumbers{}
}
