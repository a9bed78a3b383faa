package workspace

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CurrentDateTag returns today's date as an 8-digit yyyymmdd tag.
func CurrentDateTag() string {
	return time.Now().Format("20060102")
}

// NextIndex returns the next free numeric suffix for directories named
// "<dateTag>_NNN" under baseDir. A missing baseDir yields 1. Children whose
// suffix is not a positive number are skipped.
func NextIndex(baseDir, dateTag string) int {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return 1
	}
	prefix := dateTag + "_"
	max := 0
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(e.Name(), prefix))
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}

// FormatName renders a workspace directory name from a date tag and an index.
// The index is zero-padded to three digits and widens past 999.
func FormatName(dateTag string, index int) string {
	return fmt.Sprintf("%s_%03d", dateTag, index)
}
