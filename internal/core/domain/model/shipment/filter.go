package shipment

import (
	"strings"
)

// Filter selects shipments for listing and statistics. The zero Filter
// matches every shipment.
type Filter struct {
	// Search is a case-insensitive substring of the 6-digit id or of the
	// recipient name.
	Search string

	// Status, when set, must equal the shipment status.
	Status *Status

	// ClientID, when set, restricts results to one owner.
	ClientID *int64
}

// Validate checks the status criterion if one is set.
func (f Filter) Validate() error {
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}

// SearchTerm returns the normalized search text (trimmed, lower case).
func (f Filter) SearchTerm() string {
	return strings.ToLower(strings.TrimSpace(f.Search))
}

// Matches reports whether s satisfies every criterion of the filter.
func (f Filter) Matches(s *Shipment) bool {
	if f.Status != nil && s.Status() != *f.Status {
		return false
	}
	if f.ClientID != nil && s.ClientID() != *f.ClientID {
		return false
	}
	term := f.SearchTerm()
	if term == "" {
		return true
	}
	return strings.Contains(s.ID().String(), term) ||
		strings.Contains(strings.ToLower(s.Recipient().Name()), term)
}
