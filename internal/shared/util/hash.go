package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPrompt returns a stable hex digest of a prompt so telemetry can
// correlate LLM calls without logging resume text.
func HashPrompt(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
