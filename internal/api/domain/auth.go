package domain

import (
	"crypto/subtle"
	"strings"
)

// AccessLevel is the authorization tier granted by a token.
type AccessLevel int

const (
	// LevelNone means the token matched neither secret.
	LevelNone AccessLevel = iota
	// LevelTech grants access to the caller's own jobs only.
	LevelTech
	// LevelAdmin grants unrestricted access, including delete.
	LevelAdmin
)

func (l AccessLevel) String() string {
	switch l {
	case LevelTech:
		return "tech"
	case LevelAdmin:
		return "admin"
	default:
		return "none"
	}
}

// Credentials holds the two shared secrets. They are opaque values supplied
// by configuration, never hardcoded.
type Credentials struct {
	TechToken  string
	AdminToken string
}

// Verify classifies a presented token. Comparisons are constant-time.
func (c Credentials) Verify(token string) AccessLevel {
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.AdminToken)) == 1 {
		return LevelAdmin
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.TechToken)) == 1 {
		return LevelTech
	}
	return LevelNone
}

// Identity is the authenticated caller: an access level plus, for
// technician callers, the tech name they act as. The shared tech token
// carries no identity of its own, so the name is caller-supplied.
type Identity struct {
	Level    AccessLevel
	TechName string
}

// CanAccess is the single ownership predicate applied before any read or
// mutation of an existing job: admins reach every job, technicians only
// their own.
func (id Identity) CanAccess(job *Job) bool {
	if id.Level == LevelAdmin {
		return true
	}
	if id.Level != LevelTech {
		return false
	}
	name := strings.TrimSpace(id.TechName)
	return name != "" && name == strings.TrimSpace(job.TechName)
}
