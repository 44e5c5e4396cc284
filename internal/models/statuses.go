package models

// ApprovalStatus is the shared moderation lifecycle for lawyer profiles and
// reviews: pending -> approved | rejected.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// IsValid reports whether s is one of the known lifecycle statuses.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsDecision reports whether s is a moderation outcome an admin may set.
func (s ApprovalStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}
