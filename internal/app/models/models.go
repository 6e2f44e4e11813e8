package models

// Batch is one of the fixed set of class batches a student can belong to.
type Batch string

const (
	BatchForenoon Batch = "Forenoon"
	BatchEvening1 Batch = "Evening 1"
	BatchEvening2 Batch = "Evening 2"
)

// ValidBatch reports whether b is one of the known batches.
func ValidBatch(b Batch) bool {
	switch b {
	case BatchForenoon, BatchEvening1, BatchEvening2:
		return true
	}
	return false
}

// SwapRequestStatus is the lifecycle state of a swap request. Pending is the
// only non-terminal state.
type SwapRequestStatus string

const (
	SwapStatusPending   SwapRequestStatus = "pending"
	SwapStatusAccepted  SwapRequestStatus = "accepted"
	SwapStatusRejected  SwapRequestStatus = "rejected"
	SwapStatusCancelled SwapRequestStatus = "cancelled"
)

// ValidSwapRequestStatus reports whether s is one of the known statuses.
func ValidSwapRequestStatus(s SwapRequestStatus) bool {
	switch s {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCancelled:
		return true
	}
	return false
}
