package library

import (
	"strings"
	"time"
)

const (
	DefaultLoanPeriod       = 14 * 24 * time.Hour
	DefaultMaxActiveBorrows = 5
)

type BorrowStatus string

const (
	BorrowActive   BorrowStatus = "ACTIVE"
	BorrowReturned BorrowStatus = "RETURNED"
)

type ReserveStatus string

const (
	ReserveActive    ReserveStatus = "ACTIVE"
	ReserveFulfilled ReserveStatus = "FULFILLED"
)

// Book is a catalog entry. AvailableCopies always equals TotalCopies minus the
// number of ACTIVE borrows on the book.
type Book struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Author          string `json:"author"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Seq             uint64 `json:"-"` // catalog insertion order
}

// Member is a registered library member. CurrentBorrows holds the ids of the
// member's ACTIVE borrows in the order they were made.
type Member struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	CurrentBorrows []string `json:"current_borrows"`
	Seq            uint64   `json:"-"`
}

type Borrow struct {
	ID         string       `json:"id"`
	BookID     string       `json:"book_id"`
	MemberID   string       `json:"member_id"`
	BorrowDate time.Time    `json:"borrow_date"`
	DueDate    time.Time    `json:"due_date"`
	ReturnDate *time.Time   `json:"return_date,omitempty"`
	Status     BorrowStatus `json:"status"`
	Seq        uint64       `json:"-"`
}

/* Reports whether the borrow is still active and due strictly before now. */
func (b Borrow) IsOverdue(now time.Time) bool {
	return b.Status == BorrowActive && b.DueDate.Before(now)
}

type Reserve struct {
	ID          string        `json:"id"`
	BookID      string        `json:"book_id"`
	MemberID    string        `json:"member_id"`
	ReserveDate time.Time     `json:"reserve_date"`
	Status      ReserveStatus `json:"status"`
	Seq         uint64        `json:"-"`
}

/* Case-insensitive substring match over name and author. An empty query matches every book. */
func (b Book) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Author), q)
}

type DuplicatePolicy string

const (
	DuplicateOverwrite DuplicatePolicy = "overwrite"
	DuplicateReject    DuplicatePolicy = "reject"
)
