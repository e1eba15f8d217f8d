package configs

import (
	"strings"
	"time"
)

// Launchpad configures the settlement engine.
type Launchpad struct {
	// EscrowAccount custodies sale assets and collected proceeds.
	EscrowAccount string `env:"ESCROW_ACCOUNT" envDefault:"launchpad-escrow"`
	// Operators may open campaigns. Empty lets any caller do so.
	Operators []string `env:"OPERATORS" envSeparator:","`
	// Storage selects the backend: "postgres" (default) or "memory".
	Storage string `env:"STORAGE" envDefault:"postgres"`
	// LockTimeout bounds how long an operation waits for the settlement
	// lock. Zero waits for the request context.
	LockTimeout time.Duration `env:"LOCK_TIMEOUT" envDefault:"5s"`
}

// InMemory reports whether the in-process backend is selected.
func (c Launchpad) InMemory() bool {
	return strings.EqualFold(c.Storage, "memory")
}

// OnPostgres reports whether the PostgreSQL backend is selected.
func (c Launchpad) OnPostgres() bool {
	return strings.EqualFold(c.Storage, "postgres")
}
