package entity

// LoanDetail bundles a loan with its book and the book's owning author.
// Returned by the joined active-loan query to avoid N+1 lookups when
// aggregating statistics.
type LoanDetail struct {
	Loan   *Loan
	Book   *Book
	Author *Author
}
