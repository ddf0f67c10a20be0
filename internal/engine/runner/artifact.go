package runner

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// resultEntry is the artifact published to the remote build cache after a
// successful run.
type resultEntry struct {
	Task        string    `json:"task"`
	Type        string    `json:"type"`
	Actions     []string  `json:"actions"`
	Incremental bool      `json:"incremental"`
	FinishedAt  time.Time `json:"finished_at"`
}

// cacheKey derives a stable store key from the entry's identity. Values
// are separated by a zero byte so adjacent fields cannot collide. The
// finish time is excluded so repeated runs of the same task map to the
// same entry.
func cacheKey(entry resultEntry) string {
	h := xxhash.New()
	_, _ = h.WriteString(entry.Task)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(entry.Type)
	_, _ = h.Write([]byte{0})
	for _, action := range entry.Actions {
		_, _ = h.WriteString(action)
		_, _ = h.Write([]byte{0})
	}
	if entry.Incremental {
		_, _ = h.Write([]byte{1})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
