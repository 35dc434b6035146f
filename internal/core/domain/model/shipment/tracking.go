package shipment

import (
	"fmt"
	"slices"
	"time"

	"courier/internal/pkg/errs"
)

// Record is one immutable entry of the tracking history: the status a
// shipment entered and when. A Record with ID 0 has not been persisted yet.
type Record struct {
	id        int64
	status    Status
	createdAt time.Time
}

// RestoreRecord reconstructs a persisted ledger record.
func RestoreRecord(id int64, status Status, createdAt time.Time) (Record, error) {
	if id <= 0 {
		return Record{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking record id",
			fmt.Errorf("%d is not greater than 0", id),
		)
	}
	if err := status.Validate(); err != nil {
		return Record{}, err
	}
	if createdAt.IsZero() {
		return Record{}, errs.NewValueIsRequiredError("tracking record created at")
	}
	return Record{id: id, status: status, createdAt: normalizeTime(createdAt)}, nil
}

func (r Record) ID() int64 {
	return r.id
}

func (r Record) Status() Status {
	return r.status
}

func (r Record) CreatedAt() time.Time {
	return r.createdAt
}

// IsSaved reports whether the record has been persisted.
func (r Record) IsSaved() bool {
	return r.id != 0
}

// History is the append-only ledger of a shipment's status changes.
//
// Invariants:
//   - the first record is PENDING_PICKUP, stamped with the shipment creation time
//   - timestamps never decrease
//   - records are never modified or removed
type History struct {
	records []Record
}

func newHistory(createdAt time.Time) History {
	return History{records: []Record{{status: PendingPickup, createdAt: createdAt}}}
}

// restoreHistory rebuilds a ledger loaded from storage in insertion order and
// re-checks its invariants against the owning shipment.
func restoreHistory(createdAt time.Time, records []Record) (History, error) {
	if len(records) == 0 {
		return History{}, errs.NewValueIsRequiredError("tracking history")
	}

	first := records[0]
	if first.status != PendingPickup || !first.createdAt.Equal(createdAt) {
		return History{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking history",
			fmt.Errorf("first record is %s at %s, want %s at %s",
				first.status, first.createdAt.Format(time.RFC3339Nano),
				PendingPickup, createdAt.Format(time.RFC3339Nano)),
		)
	}

	for i := 1; i < len(records); i++ {
		if records[i].createdAt.Before(records[i-1].createdAt) {
			return History{}, errs.NewValueIsInvalidErrorWithCause(
				"tracking history",
				fmt.Errorf("record %d is older than the record before it", records[i].id),
			)
		}
	}

	return History{records: slices.Clone(records)}, nil
}

// Len returns the number of records in the ledger.
func (h History) Len() int {
	return len(h.records)
}

// Last returns the most recent record.
func (h History) Last() Record {
	return h.records[len(h.records)-1]
}

// Records returns a copy of the ledger, oldest first.
func (h History) Records() []Record {
	return slices.Clone(h.records)
}

// Chronological returns a copy of the ledger, newest first.
func (h History) Chronological() []Record {
	out := slices.Clone(h.records)
	slices.Reverse(out)
	return out
}

// Unsaved returns the records appended since the ledger was last persisted,
// oldest first.
func (h History) Unsaved() []Record {
	var out []Record
	for _, r := range h.records {
		if !r.IsSaved() {
			out = append(out, r)
		}
	}
	return out
}

func (h *History) append(status Status, at time.Time) {
	h.records = append(h.records, Record{status: status, createdAt: at})
}

// assignIDs hands out ids to unsaved records in order.
func (h *History) assignIDs(ids []int64) error {
	unsaved := 0
	for _, r := range h.records {
		if !r.IsSaved() {
			unsaved++
		}
	}
	if unsaved != len(ids) {
		return errs.NewValueIsInvalidErrorWithCause(
			"tracking record ids",
			fmt.Errorf("got %d ids for %d unsaved records", len(ids), unsaved),
		)
	}

	for _, id := range ids {
		if id <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tracking record ids",
				fmt.Errorf("%d is not greater than 0", id),
			)
		}
	}

	next := 0
	for i := range h.records {
		if !h.records[i].IsSaved() {
			h.records[i].id = ids[next]
			next++
		}
	}
	return nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
