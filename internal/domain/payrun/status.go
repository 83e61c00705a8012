package payrun

type BatchStatus string

const (
	StatusDraft       BatchStatus = "DRAFT"
	StatusCalculating BatchStatus = "CALCULATING"
	StatusCalculated  BatchStatus = "CALCULATED"
	StatusReviewed    BatchStatus = "REVIEWED"
	StatusApproved    BatchStatus = "APPROVED"
	StatusLocked      BatchStatus = "LOCKED"
	StatusRemitted    BatchStatus = "REMITTED"
	StatusCancelled   BatchStatus = "CANCELLED"
)

// Review is optional: a batch may be approved straight from CALCULATED.
var transitions = map[BatchStatus][]BatchStatus{
	StatusDraft:       {StatusCalculating, StatusCancelled},
	StatusCalculating: {StatusCalculated, StatusDraft, StatusCancelled},
	StatusCalculated:  {StatusReviewed, StatusApproved, StatusCalculating, StatusCancelled},
	StatusReviewed:    {StatusApproved, StatusCancelled},
	StatusApproved:    {StatusLocked, StatusCancelled},
	StatusLocked:      {StatusRemitted},
	StatusRemitted:    {},
	StatusCancelled:   {},
}

func (s BatchStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s BatchStatus) CanTransitionTo(next BatchStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsLocked reports whether payslip snapshots are frozen.
func (s BatchStatus) IsLocked() bool {
	return s == StatusLocked || s == StatusRemitted
}

// CanRecalculate reports whether the batch may re-enter CALCULATING.
func (s BatchStatus) CanRecalculate() bool {
	return s.CanTransitionTo(StatusCalculating)
}

func (s BatchStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}
