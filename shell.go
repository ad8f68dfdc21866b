package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"library-catalog/library"
)

// shell is the line-oriented front-end over a catalog.
type shell struct {
	in          io.Reader
	out         io.Writer
	catalog     *library.Catalog
	interactive bool

	sc *bufio.Scanner
}

func (s *shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func (s *shell) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *shell) run() error {
	s.sc = bufio.NewScanner(s.in)

	if s.interactive {
		s.println("Welcome to the Library Management System!")
		s.printHelp()
	}

	for {
		if s.interactive {
			s.printf("\n> ")
		}
		if !s.sc.Scan() {
			break
		}
		cmd := strings.TrimSpace(s.sc.Text())

		switch cmd {
		case "":
			continue
		case "add book":
			s.handleAddBook()
		case "borrow":
			s.handleBorrow()
		case "return":
			s.handleReturn()
		case "list books":
			s.handleListBooks()
		case "list borrowings":
			s.handleListBorrowings()
		case "list waitlist":
			s.handleListWaitlist()
		case "help":
			s.printHelp()
		case "exit":
			s.println("Goodbye!")
			return nil
		default:
			s.println("Unknown command. Type 'help' to see the available commands.")
		}
	}
	return s.sc.Err()
}

func (s *shell) printHelp() {
	s.println("Available commands:")
	s.println("  Books: add book, list books")
	s.println("  Circulation: borrow, return, list borrowings, list waitlist")
	s.println("  System: help, exit")
}

// prompt reads one trimmed line. ok is false at end of input.
func (s *shell) prompt(label string) (string, bool) {
	if s.interactive {
		s.printf("%s: ", label)
	}
	if !s.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.sc.Text()), true
}

// promptID reads a positive integer ID and reports parse failures itself.
func (s *shell) promptID(label string) (int64, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		s.printf("Invalid %s: %s\n", label, raw)
		return 0, false
	}
	return id, true
}

func (s *shell) handleAddBook() {
	id, ok := s.promptID("Book ID")
	if !ok {
		return
	}
	title, ok := s.prompt("Title")
	if !ok {
		return
	}
	author, ok := s.prompt("Author")
	if !ok {
		return
	}
	if title == "" || author == "" {
		s.println("Error: Please fill in all fields")
		return
	}
	s.println(s.catalog.AddBook(id, title, author))
}

// promptLoan reads the user and book IDs shared by borrow and return.
func (s *shell) promptLoan() (userID, bookID int64, ok bool) {
	if userID, ok = s.promptID("User ID"); !ok {
		return 0, 0, false
	}
	if bookID, ok = s.promptID("Book ID"); !ok {
		return 0, 0, false
	}
	return userID, bookID, true
}

func (s *shell) handleBorrow() {
	userID, bookID, ok := s.promptLoan()
	if !ok {
		return
	}
	res := s.catalog.Borrow(userID, bookID)
	if res.Outcome == library.OutcomeWaitlisted {
		s.printf("Warning: %s\n", res.Message)
		return
	}
	s.println(res.Message)
}

func (s *shell) handleReturn() {
	userID, bookID, ok := s.promptLoan()
	if !ok {
		return
	}
	res := s.catalog.Return(userID, bookID)
	if res.Outcome == library.OutcomeNotFound {
		s.printf("Error: %s\n", res.Message)
		return
	}
	s.println(res.Message)
}

func (s *shell) handleListBooks() {
	books := s.catalog.ListBooks()
	if len(books) == 0 {
		s.println("No books in the library.")
		return
	}
	s.println("Books:")
	for _, b := range books {
		status := "Available"
		if !b.Available {
			status = "Borrowed"
		}
		s.printf("ID: %d - %s by %s (%s)\n", b.ID, b.Title, b.Author, status)
	}
}

func (s *shell) handleListBorrowings() {
	loans := s.catalog.ListBorrowings()
	if len(loans) == 0 {
		s.println("No current borrowings")
		return
	}
	s.println("Current borrowings:")
	for _, l := range loans {
		s.printf("User %d has borrowed Book %d\n", l.UserID, l.BookID)
	}
}

func (s *shell) handleListWaitlist() {
	entries := s.catalog.ListWaitlist()
	if len(entries) == 0 {
		s.println("No users in waitlist")
		return
	}
	s.println("Current waitlist:")
	for i, e := range entries {
		s.printf("%d. User %d is waiting for Book %d\n", i+1, e.UserID, e.BookID)
	}
}
