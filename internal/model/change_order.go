package model

type ChangeOrderStatus string

const (
	ChangeOrderProposed ChangeOrderStatus = "Proposed"
	ChangeOrderInReview ChangeOrderStatus = "In Review"
	ChangeOrderApproved ChangeOrderStatus = "Approved"
	ChangeOrderRejected ChangeOrderStatus = "Rejected"
)

// ChangeOrderStatuses returns every status in legend order. Aggregations rely
// on this to emit zero counts for statuses absent from the data.
func ChangeOrderStatuses() []ChangeOrderStatus {
	return []ChangeOrderStatus{
		ChangeOrderProposed,
		ChangeOrderInReview,
		ChangeOrderApproved,
		ChangeOrderRejected,
	}
}

// ChangeOrder is a contract-scope change. Actual is nil until the change is
// realized; a nil Actual means "no variance yet", not zero.
type ChangeOrder struct {
	ID          string            `json:"id"`
	Pkg         string            `json:"pkg"`
	Title       string            `json:"title"`
	Status      ChangeOrderStatus `json:"status"`
	Estimated   float64           `json:"estimated"`
	Actual      *float64          `json:"actual"`
	Date        string            `json:"date"`
	Description string            `json:"description,omitempty"`
	PrevCycle   string            `json:"prevCycle,omitempty"` // agenda id from the previous committee cycle, empty for first-time items
}
