package library

// Book represents metadata and current availability of a book in the catalog.
// The Available flag is the single source of truth for whether a new loan
// may be created.
type Book struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// Loan is an active borrowing of a book by a user.
type Loan struct {
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`
}

// WaitlistEntry is a borrow request that could not be satisfied when it was made.
type WaitlistEntry struct {
	UserID int64 `json:"user_id"`
	BookID int64 `json:"book_id"`
}
