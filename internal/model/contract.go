package model

// Contract is a work-package contract lot. Pkg is the primary partition key
// shared by every other entity ("A", "B", ..., "PMEC").
type Contract struct {
	Pkg           string  `json:"pkg"`
	Title         string  `json:"title"`
	ContractValue float64 `json:"contractValue"`
	PaidToDate    float64 `json:"paidToDate"`
}

// ProvisionalSum tracks budget-allowance utilization per package. The three
// values are independent percentages in [0,100]; they are not required to sum
// to 100.
type ProvisionalSum struct {
	Pkg      string  `json:"pkg"`
	Used     float64 `json:"used"`
	Approved float64 `json:"approved"`
	Pending  float64 `json:"pending"`
}
