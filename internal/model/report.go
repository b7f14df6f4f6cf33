package model

import "time"

// View types pair an entity with the scalars derived for display. The
// embedded record keeps its JSON shape; derived fields ride alongside.

type ContractView struct {
	Contract
	PercentPaid int `json:"percentPaid"`
}

type ChangeOrderView struct {
	ChangeOrder
	Variance *float64 `json:"variance"`
}

// ClaimView carries the effective days-open (stored value or derived from
// the claim date) in the embedded Claim.
type ClaimView struct {
	Claim
	Variance *float64 `json:"variance"`
	Aging    string   `json:"aging"`
}

type IPCView struct {
	IPC
	Variance *float64 `json:"variance"`
}

type AdvanceView struct {
	AdvancePayment
	Outstanding     float64 `json:"outstanding"`
	RecoveryPercent int     `json:"recoveryPercent"`
}

// Report is the full governance snapshot handed to the XLSX and PDF
// generators.
type Report struct {
	GeneratedAt  time.Time
	Currency     string
	Packages     []string
	Summary      DashboardSummary
	Contracts    []ContractView
	Provisionals []ProvisionalSum
	ChangeOrders []ChangeOrderView
	Claims       []ClaimView
	IPCs         []IPCView
	Advances     []AdvanceView
}
