package library

// bookNode is a single node of the BookIndex tree. The node owns its Book.
type bookNode struct {
	book        Book
	left, right *bookNode
}

// BookIndex is an ordered, unbalanced binary search tree keyed by book ID.
//
// Keys smaller than a node go to its left subtree, keys greater than or
// equal to it go right, so inserting an existing ID adds a second node to
// the right of the first. Nothing is ever rebalanced: inserting IDs in
// sorted order degrades the tree into a list.
type BookIndex struct {
	root *bookNode
	size int
}

// NewBookIndex returns an empty index.
func NewBookIndex() *BookIndex { return &BookIndex{} }

// Insert adds a new, available book.
func (bi *BookIndex) Insert(id int64, title, author string) {
	n := &bookNode{book: Book{ID: id, Title: title, Author: author, Available: true}}
	bi.size++
	if bi.root == nil {
		bi.root = n
		return
	}
	cur := bi.root
	for {
		if id < cur.book.ID {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
			continue
		}
		if cur.right == nil {
			cur.right = n
			return
		}
		cur = cur.right
	}
}

// Find returns the first node on the search path whose ID equals id. The
// returned pointer aliases the stored record, so callers may flip its
// availability in place.
func (bi *BookIndex) Find(id int64) (*Book, bool) {
	cur := bi.root
	for cur != nil {
		switch {
		case id == cur.book.ID:
			return &cur.book, true
		case id < cur.book.ID:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, false
}

// ListAscending returns copies of all books in ascending ID order.
func (bi *BookIndex) ListAscending() []Book {
	books := make([]Book, 0, bi.size)
	var stack []*bookNode
	cur := bi.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		books = append(books, cur.book)
		cur = cur.right
	}
	return books
}

// Len returns the number of nodes, duplicates included.
func (bi *BookIndex) Len() int { return bi.size }
