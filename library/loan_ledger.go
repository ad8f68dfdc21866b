package library

type loanNode struct {
	loan Loan
	next *loanNode
}

// LoanLedger keeps active loans in the order they were created.
// It is a plain singly linked list; no tail pointer is kept.
type LoanLedger struct {
	head *loanNode
	size int
}

// NewLoanLedger returns an empty ledger.
func NewLoanLedger() *LoanLedger { return &LoanLedger{} }

// Add appends a loan at the tail.
func (ll *LoanLedger) Add(userID, bookID int64) {
	n := &loanNode{loan: Loan{UserID: userID, BookID: bookID}}
	ll.size++
	if ll.head == nil {
		ll.head = n
		return
	}
	cur := ll.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// Remove unlinks the first loan matching (userID, bookID), scanning from the
// head. It reports whether a loan was removed; a miss is not an error.
func (ll *LoanLedger) Remove(userID, bookID int64) bool {
	for link := &ll.head; *link != nil; link = &(*link).next {
		if l := (*link).loan; l.UserID == userID && l.BookID == bookID {
			*link = (*link).next
			ll.size--
			return true
		}
	}
	return false
}

// List returns the active loans in creation order.
func (ll *LoanLedger) List() []Loan {
	loans := make([]Loan, 0, ll.size)
	for cur := ll.head; cur != nil; cur = cur.next {
		loans = append(loans, cur.loan)
	}
	return loans
}

// Len returns the number of active loans.
func (ll *LoanLedger) Len() int { return ll.size }
