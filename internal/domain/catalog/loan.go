package catalog

import "time"

// Loan is the full loan record including associations.
type Loan struct {
	ID          int64      `json:"id"`
	LoanDate    time.Time  `json:"loanDate"`
	DueDate     time.Time  `json:"dueDate"`
	ReturnDate  *time.Time `json:"returnDate,omitempty"`
	BookID      int64      `json:"bookId"`
	Book        *Book      `json:"book,omitempty"`
	UserID      int64      `json:"userId"`
	User        *User      `json:"user,omitempty"`
	Fine        *Fine      `json:"fine,omitempty"`
	CreatedTime time.Time  `json:"createdTime"`
	UpdatedTime time.Time  `json:"updatedTime"`
}

// LoanView is the flattened read model served by /Loans.
type LoanView struct {
	Title      string     `json:"title,omitempty"`
	Username   string     `json:"username,omitempty"`
	LoanDate   time.Time  `json:"loanDate"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
}

// EditLoan is the write model for creating and updating loans.
type EditLoan struct {
	BookID  int64      `json:"bookId"`
	UserID  int64      `json:"userId"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}
