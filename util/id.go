package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRoomID builds a room identifier from the current millisecond timestamp
// and a short random suffix. Not a security-sensitive identifier; unique in
// practice.
func NewRoomID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s", ts, suffix)
}
