package model

type IPCStatus string

const (
	IPCCertified IPCStatus = "Certified"
	IPCSubmitted IPCStatus = "Submitted"
	IPCInReview  IPCStatus = "In Review"
)

func IPCStatuses() []IPCStatus {
	return []IPCStatus{
		IPCCertified,
		IPCSubmitted,
		IPCInReview,
	}
}

// IPC is an interim payment certificate against a contract.
type IPC struct {
	Pkg       string    `json:"pkg"`
	Number    string    `json:"ipcNo"`
	Date      string    `json:"date"`
	Claimed   *float64  `json:"claimed"`
	Certified float64   `json:"certified"`
	Status    IPCStatus `json:"status"`
}

// AdvancePayment is the advance granted on a package and its recovery state.
type AdvancePayment struct {
	Pkg       string  `json:"pkg"`
	Amount    float64 `json:"amount"`
	Recovered float64 `json:"recovered"`
}

// Outstanding is the unrecovered remainder, floored at zero so over-recovered
// garbage data cannot surface as a negative balance.
func (a AdvancePayment) Outstanding() float64 {
	out := a.Amount - a.Recovered
	if out < 0 {
		return 0
	}
	return out
}
