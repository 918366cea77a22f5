package catalog

import "time"

// Fine is the full fine record including associations.
type Fine struct {
	ID          int64      `json:"id"`
	Amount      float64    `json:"amount"`
	Reason      string     `json:"reason,omitempty"`
	PaidDate    *time.Time `json:"paidDate,omitempty"`
	LoanID      int64      `json:"loanId"`
	Loan        *Loan      `json:"loan,omitempty"`
	UserID      int64      `json:"userId"`
	User        *User      `json:"user,omitempty"`
	CreatedTime time.Time  `json:"createdTime"`
	UpdatedTime time.Time  `json:"updatedTime"`
}

// FineView is the flattened read model served by /Fines.
type FineView struct {
	LoanID      int64      `json:"loanId"`
	UserID      int64      `json:"userId"`
	Username    string     `json:"username,omitempty"`
	Amount      float64    `json:"amount"`
	Reason      string     `json:"reason,omitempty"`
	PaidDate    *time.Time `json:"paidDate,omitempty"`
	CreatedTime time.Time  `json:"createdTime"`
}
