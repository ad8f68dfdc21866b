package library

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Outcome classifies the result of a catalog operation.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeBorrowed
	OutcomeWaitlisted
	OutcomeReturned
	OutcomeAutoAssigned
	OutcomeNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeBorrowed:
		return "borrowed"
	case OutcomeWaitlisted:
		return "waitlisted"
	case OutcomeReturned:
		return "returned"
	case OutcomeAutoAssigned:
		return "auto_assigned"
	case OutcomeNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes what an operation did. Message is the text shown to users.
type Result struct {
	Outcome Outcome
	Message string
	// AssignedUserID is the waitlisted user who received the book on return.
	// Only meaningful when Outcome is OutcomeAutoAssigned.
	AssignedUserID int64
	// Dropped is the waitlist head a return discarded because it was waiting
	// for a different book.
	Dropped *WaitlistEntry
}

func (r Result) String() string { return r.Message }

// Catalog ties the book index, the loan ledger and the waitlist together.
// Each exported method runs under a single mutex, so the three structures
// are never observed half-updated.
type Catalog struct {
	mu       sync.Mutex
	books    *BookIndex
	loans    *LoanLedger
	waitlist *WaitQueue
	logger   *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for operation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		books:    NewBookIndex(),
		loans:    NewLoanLedger(),
		waitlist: NewWaitQueue(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ------------------ Books ------------------

// AddBook inserts a book. It always succeeds, even for an ID that is
// already present; see BookIndex for how duplicates are stored.
func (c *Catalog) AddBook(id int64, title, author string) string {
	return c.Add(id, title, author).Message
}

// Add is AddBook returning the full Result.
func (c *Catalog) Add(id int64, title, author string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books.Insert(id, title, author)
	c.logger.Debug("book added", "book_id", id, "title", title, "books", c.books.Len())
	return Result{
		Outcome: OutcomeAdded,
		Message: fmt.Sprintf("Added book: %s by %s (ID: %d)", title, author, id),
	}
}

// ------------------ Circulation ------------------

// BorrowBook lends the book to the user if it exists and is available.
// Otherwise the request joins the waitlist, including requests for IDs
// that were never added.
func (c *Catalog) BorrowBook(userID, bookID int64) string {
	return c.Borrow(userID, bookID).Message
}

// Borrow is BorrowBook returning the full Result.
func (c *Catalog) Borrow(userID, bookID int64) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.borrowLocked(userID, bookID)
}

func (c *Catalog) borrowLocked(userID, bookID int64) Result {
	book, ok := c.books.Find(bookID)
	if ok && book.Available {
		book.Available = false
		c.loans.Add(userID, bookID)
		c.logger.Debug("book borrowed", "user_id", userID, "book_id", bookID)
		return Result{
			Outcome: OutcomeBorrowed,
			Message: fmt.Sprintf("User %d has borrowed book %s", userID, book.Title),
		}
	}

	c.waitlist.Enqueue(userID, bookID)
	c.logger.Debug("borrow waitlisted",
		"user_id", userID, "book_id", bookID, "known", ok, "waitlist", c.waitlist.Len())
	return Result{
		Outcome: OutcomeWaitlisted,
		Message: fmt.Sprintf("Book not available. User %d added to waiting list", userID),
	}
}

// ReturnBook marks the book available again and drops the user's loan.
//
// If anyone is waiting, the head of the waitlist is dequeued whatever book
// it is for. When it is for this book, the book is lent to that user right
// away; when it is for another book, the entry is discarded.
func (c *Catalog) ReturnBook(userID, bookID int64) string {
	return c.Return(userID, bookID).Message
}

// Return is ReturnBook returning the full Result.
func (c *Catalog) Return(userID, bookID int64) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, ok := c.books.Find(bookID)
	if !ok {
		c.logger.Debug("return of unknown book", "user_id", userID, "book_id", bookID)
		return Result{Outcome: OutcomeNotFound, Message: "Book not found"}
	}

	book.Available = true
	if !c.loans.Remove(userID, bookID) {
		c.logger.Debug("return without matching loan", "user_id", userID, "book_id", bookID)
	}
	res := Result{
		Outcome: OutcomeReturned,
		Message: fmt.Sprintf("User %d has returned book %s", userID, book.Title),
	}

	next, ok := c.waitlist.Dequeue()
	if !ok {
		return res
	}
	if next.BookID != bookID {
		// The head was waiting for another book; it loses its place.
		c.logger.Warn("waitlist entry discarded",
			"user_id", next.UserID, "book_id", next.BookID, "returned_book_id", bookID)
		res.Dropped = &next
		return res
	}

	c.borrowLocked(next.UserID, next.BookID)
	c.logger.Info("book auto-assigned from waitlist", "user_id", next.UserID, "book_id", bookID)
	res.Outcome = OutcomeAutoAssigned
	res.AssignedUserID = next.UserID
	res.Message += fmt.Sprintf("\nBook automatically borrowed by next user in waiting list: %d", next.UserID)
	return res
}

// ------------------ Listings ------------------

// ListBooks returns all books in ascending ID order.
func (c *Catalog) ListBooks() []Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.books.ListAscending()
}

// ListBorrowings returns active loans in the order they were made.
func (c *Catalog) ListBorrowings() []Loan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loans.List()
}

// ListWaitlist returns pending requests, oldest first.
func (c *Catalog) ListWaitlist() []WaitlistEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.waitlist.Snapshot()
}
