package domain

import (
	"time"

	"github.com/google/uuid"
)

// PinCredential stores the transaction PIN as a salted hash together
// with lockout bookkeeping. The raw PIN is never persisted.
//
// States: Unset (no row) -> Set-Unlocked -> Locked (after the failure
// threshold) -> Set-Unlocked again once LockedUntil passes or a check
// succeeds.
type PinCredential struct {
	OwnerID     uuid.UUID  `json:"owner_id"`
	Hash        string     `json:"-"`
	Attempts    int        `json:"attempts"`
	LockedUntil *time.Time `json:"locked_until,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsLocked reports whether failed attempts have the credential
// time-boxed at the given instant.
func (p *PinCredential) IsLocked(now time.Time) bool {
	return p.LockedUntil != nil && p.LockedUntil.After(now)
}

// ValidPinFormat reports whether a raw PIN is 4 to 6 digits.
func ValidPinFormat(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
