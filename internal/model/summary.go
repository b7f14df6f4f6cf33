package model

// PackagePaid is one bar of the payments-by-package chart.
type PackagePaid struct {
	Pkg         string `json:"pkg"`
	PercentPaid int    `json:"percentPaid"`
}

// AgendaSplit sizes the next committee-cycle agenda: items carried over from
// the previous cycle versus items tabled for the first time.
type AgendaSplit struct {
	CarryOver int `json:"carryOver"`
	FirstTime int `json:"firstTime"`
}

// DashboardSummary carries every scalar and breakdown the dashboard header
// renders for the current filter selection.
type DashboardSummary struct {
	TotalValue           float64                   `json:"totalValue"`
	TotalPaid            float64                   `json:"totalPaid"`
	OverallPercentPaid   int                       `json:"overallPercentPaid"`
	ContractCount        int                       `json:"contractCount"`
	ChangeOrderCount     int                       `json:"changeOrderCount"`
	ClaimCount           int                       `json:"claimCount"`
	ChangeOrdersByStatus map[ChangeOrderStatus]int `json:"changeOrdersByStatus"`
	ClaimsByStatus       map[ClaimStatus]int       `json:"claimsByStatus"`
	PaidByPackage        []PackagePaid             `json:"paidByPackage"`
	Agenda               AgendaSplit               `json:"agenda"`
}
