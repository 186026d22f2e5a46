package user

import (
	"os"
	"os/user"
	"strings"
)

// Env overrides the name recorded as the actor of board changes
const Env = "EMBUDO_USER"

// Name returns the name recorded in the activity feed.
// It tries, in order: the EMBUDO_USER variable, the OS account, the USER
// variable, and finally "unknown" so the value is never empty.
func Name() string {
	if name := strings.TrimSpace(os.Getenv(Env)); name != "" {
		return name
	}
	if current, err := user.Current(); err == nil && current.Username != "" {
		return current.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
