package model

type ClaimStatus string

const (
	ClaimSubmitted ClaimStatus = "Submitted"
	ClaimInReview  ClaimStatus = "In Review"
	ClaimApproved  ClaimStatus = "Approved"
	ClaimRejected  ClaimStatus = "Rejected"
)

func ClaimStatuses() []ClaimStatus {
	return []ClaimStatus{
		ClaimSubmitted,
		ClaimInReview,
		ClaimApproved,
		ClaimRejected,
	}
}

// Claim is a contractor claim against a contract. Certified is nil until the
// engineer certifies an amount. DaysOpen is the stored value from the
// register; when zero the effective value is derived from Date.
type Claim struct {
	ID          string      `json:"id"`
	Pkg         string      `json:"pkg"`
	Title       string      `json:"title"`
	Status      ClaimStatus `json:"status"`
	Claimed     float64     `json:"claimed"`
	Certified   *float64    `json:"certified"`
	DaysOpen    int         `json:"daysOpen"`
	Date        string      `json:"date"`
	Description string      `json:"description,omitempty"`
}
