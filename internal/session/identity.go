package session

import "strings"

// Identity is the canonical record for the signed-in customer.
// Some upstream responses carry a single combined "name" field; those
// are split at this boundary (SplitName) so the rest of the code only
// ever sees firstName/lastName.
type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// DisplayName is the one place a combined name is reassembled for
// rendering.
func (i Identity) DisplayName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// SplitName breaks a combined display name into first and last parts.
// Everything after the first space becomes the last name, matching how
// the storefront has always stored it.
func SplitName(name string) (firstName, lastName string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
