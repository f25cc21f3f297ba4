package uid

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// GenerateGameID returns a short random hex ID used to tag one game's log lines.
func GenerateGameID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(bytes)
}
