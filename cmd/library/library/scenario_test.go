package library_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"testing"
	"time"

	"github.com/library-service/cmd/library/inmemory"
	"github.com/library-service/cmd/library/library"
	"github.com/matryer/is"
)

func newService(t *testing.T, opts ...library.Option) *library.Service {
	t.Helper()
	store, err := inmemory.NewInMemoryStore()
	if err != nil {
		log.Fatalln(err)
	}
	opts = append([]library.Option{library.WithClock(fixedClock)}, opts...)
	return library.NewService(store, opts...)
}

/* Seeds the catalog used across the scenarios: B001 with three copies and members M001..M006. */
func seed(t *testing.T, s *library.Service) {
	t.Helper()
	is := is.New(t)

	_, err := s.AddBook(ctx, "B001", "Harry Potter", "J.K. Rowling", 3)
	is.NoErr(err)
	_, err = s.AddBook(ctx, "B002", "The Hobbit", "J.R.R. Tolkien", 1)
	is.NoErr(err)
	for i := 1; i <= 6; i++ {
		_, err := s.AddMember(ctx, fmt.Sprintf("M00%d", i), fmt.Sprintf("Member %d", i), 20+i)
		is.NoErr(err)
	}
}

func TestBorrowBook(t *testing.T) {
	t.Run("the fourth borrow of a three copy book is refused", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		for i, member := range []string{"M001", "M002", "M003"} {
			borrow, err := s.BorrowBook(ctx, member, "B001")
			is.NoErr(err)
			is.Equal(borrow.ID, fmt.Sprintf("BR%d", i+1))
		}

		b, err := s.GetBook(ctx, "B001")
		is.NoErr(err)
		is.Equal(b.AvailableCopies, 0)

		_, err = s.BorrowBook(ctx, "M004", "B001")
		is.True(errors.Is(err, library.ErrResponseBookUnavailable))

		m, err := s.GetMember(ctx, "M004")
		is.NoErr(err)
		is.Equal(m.CurrentBorrows, []string{})
	})

	t.Run("a sixth active borrow is refused and leaves no trace", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)

		for i := 1; i <= 6; i++ {
			_, err := s.AddBook(ctx, fmt.Sprintf("B10%d", i), fmt.Sprintf("Volume %d", i), "Anon", 1)
			is.NoErr(err)
		}
		_, err := s.AddMember(ctx, "M001", "Alice", 30)
		is.NoErr(err)

		for i := 1; i <= 5; i++ {
			_, err := s.BorrowBook(ctx, "M001", fmt.Sprintf("B10%d", i))
			is.NoErr(err)
		}

		_, err = s.BorrowBook(ctx, "M001", "B106")
		is.True(errors.Is(err, library.ErrResponseBorrowLimitReached))

		m, err := s.GetMember(ctx, "M001")
		is.NoErr(err)
		is.Equal(len(m.CurrentBorrows), 5)

		b, err := s.GetBook(ctx, "B106")
		is.NoErr(err)
		is.Equal(b.AvailableCopies, 1)

		_, err = s.GetBorrow(ctx, "BR6")
		is.True(library.IsNotFound(err))
	})

	t.Run("unknown member or book is not found", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		_, err := s.BorrowBook(ctx, "M404", "B001")
		is.True(errors.Is(err, library.ErrResponseMemberNotFound))

		_, err = s.BorrowBook(ctx, "M001", "B404")
		is.True(errors.Is(err, library.ErrResponseBookNotFound))

		b, err := s.GetBook(ctx, "B001")
		is.NoErr(err)
		is.Equal(b.AvailableCopies, 3)
	})

	t.Run("the due date follows the loan period", func(t *testing.T) {
		is := is.New(t)
		s := newService(t, library.WithLoanPeriod(72*time.Hour))
		seed(t, s)

		borrow, err := s.BorrowBook(ctx, "M001", "B002")
		is.NoErr(err)
		is.True(borrow.BorrowDate.Equal(fixedNow))
		is.True(borrow.DueDate.Equal(fixedNow.Add(72 * time.Hour)))
		is.Equal(borrow.Status, library.BorrowActive)
		is.True(borrow.ReturnDate == nil)
	})
}

func TestReturnBook(t *testing.T) {
	t.Run("a round trip restores the book and the member", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		first, err := s.BorrowBook(ctx, "M001", "B001")
		is.NoErr(err)
		second, err := s.BorrowBook(ctx, "M001", "B002")
		is.NoErr(err)

		returned, err := s.ReturnBook(ctx, first.ID)
		is.NoErr(err)
		is.Equal(returned.Status, library.BorrowReturned)
		is.True(returned.ReturnDate != nil)

		b, err := s.GetBook(ctx, "B001")
		is.NoErr(err)
		is.Equal(b.AvailableCopies, b.TotalCopies)

		m, err := s.GetMember(ctx, "M001")
		is.NoErr(err)
		is.Equal(m.CurrentBorrows, []string{second.ID})
	})

	t.Run("returning twice is refused", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		borrow, err := s.BorrowBook(ctx, "M001", "B002")
		is.NoErr(err)
		_, err = s.ReturnBook(ctx, borrow.ID)
		is.NoErr(err)

		_, err = s.ReturnBook(ctx, borrow.ID)
		is.True(errors.Is(err, library.ErrResponseBorrowNotActive))

		b, err := s.GetBook(ctx, "B002")
		is.NoErr(err)
		is.Equal(b.AvailableCopies, 1) // not incremented past the total
	})

	t.Run("unknown borrow is not found", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)

		_, err := s.ReturnBook(ctx, "BR404")
		is.True(errors.Is(err, library.ErrResponseBorrowNotFound))
	})
}

func TestReserveBook(t *testing.T) {
	is := is.New(t)
	s := newService(t)
	seed(t, s)

	_, err := s.ReserveBook(ctx, "M002", "B002")
	is.True(errors.Is(err, library.ErrResponseReserveNotNeeded))

	_, err = s.BorrowBook(ctx, "M001", "B002")
	is.NoErr(err)

	reserve, err := s.ReserveBook(ctx, "M002", "B002")
	is.NoErr(err)
	is.Equal(reserve.ID, "RS1")
	is.Equal(reserve.Status, library.ReserveActive)
	is.True(reserve.ReserveDate.Equal(fixedNow))

	reserves, err := s.ListReservations(ctx, "B002")
	is.NoErr(err)
	is.Equal(len(reserves), 1)
	is.Equal(reserves[0].MemberID, "M002")

	reserves, err = s.ListReservations(ctx, "B001")
	is.NoErr(err)
	is.Equal(reserves, []library.Reserve{})

	_, err = s.ListReservations(ctx, "B404")
	is.True(errors.Is(err, library.ErrResponseBookNotFound))

	_, err = s.ReserveBook(ctx, "M404", "B002")
	is.True(errors.Is(err, library.ErrResponseMemberNotFound))
}

func TestSearchBooks(t *testing.T) {
	is := is.New(t)
	s := newService(t)
	seed(t, s)

	found, err := s.SearchBooks(ctx, "harry")
	is.NoErr(err)
	is.Equal(len(found), 1)
	is.Equal(found[0].ID, "B001")

	found, err = s.SearchBooks(ctx, "TOLKIEN")
	is.NoErr(err)
	is.Equal(len(found), 1)
	is.Equal(found[0].ID, "B002")

	found, err = s.SearchBooks(ctx, "")
	is.NoErr(err)
	is.Equal(len(found), 2)
	is.Equal(found[0].ID, "B001") // catalog order

	found, err = s.SearchBooks(ctx, "dostoevsky")
	is.NoErr(err)
	is.Equal(found, []library.Book{})
}

func TestGetOverdueBooks(t *testing.T) {
	is := is.New(t)
	now := fixedNow
	s := newService(t, library.WithClock(func() time.Time { return now }))
	seed(t, s)

	borrow, err := s.BorrowBook(ctx, "M001", "B001")
	is.NoErr(err)

	overdue, err := s.GetOverdueBooks(ctx)
	is.NoErr(err)
	is.Equal(overdue, []library.Borrow{})

	now = borrow.DueDate.Add(time.Minute)
	overdue, err = s.GetOverdueBooks(ctx)
	is.NoErr(err)
	is.Equal(len(overdue), 1)
	is.Equal(overdue[0].ID, borrow.ID)

	_, err = s.ReturnBook(ctx, borrow.ID)
	is.NoErr(err)

	overdue, err = s.GetOverdueBooks(ctx)
	is.NoErr(err)
	is.Equal(overdue, []library.Borrow{})
}

func TestGetMemberBooks(t *testing.T) {
	is := is.New(t)
	s := newService(t)
	seed(t, s)

	books, err := s.GetMemberBooks(ctx, "M404")
	is.NoErr(err)
	is.Equal(books, []library.Book{})

	_, err = s.BorrowBook(ctx, "M001", "B002")
	is.NoErr(err)
	_, err = s.BorrowBook(ctx, "M001", "B001")
	is.NoErr(err)

	books, err = s.GetMemberBooks(ctx, "M001")
	is.NoErr(err)
	is.Equal(len(books), 2)
	is.Equal(books[0].ID, "B002")
	is.Equal(books[1].ID, "B001")
}

func TestAddBook(t *testing.T) {
	t.Run("invalid entries are refused", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)

		_, err := s.AddBook(ctx, "B001", "  ", "Author", 1)
		is.True(errors.Is(err, library.ErrResponseEntryBlankFields))
		_, err = s.AddBook(ctx, "B001", "Name", "Author", -2)
		is.True(errors.Is(err, library.ErrResponseInvalidCopies))

		books, err := s.ListBooks(ctx)
		is.NoErr(err)
		is.Equal(len(books), 0)
	})

	t.Run("overwriting keeps availability consistent with active borrows", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		_, err := s.BorrowBook(ctx, "M001", "B001")
		is.NoErr(err)

		b, err := s.AddBook(ctx, "B001", "Harry Potter 2nd ed.", "J.K. Rowling", 5)
		is.NoErr(err)
		is.Equal(b.TotalCopies, 5)
		is.Equal(b.AvailableCopies, 4)

		_, err = s.AddBook(ctx, "B001", "Harry Potter", "J.K. Rowling", 1)
		is.NoErr(err)
		_, err = s.BorrowBook(ctx, "M002", "B001")
		is.True(errors.Is(err, library.ErrResponseBookUnavailable))
	})

	t.Run("copies below the active borrows are refused", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		_, err := s.BorrowBook(ctx, "M001", "B001")
		is.NoErr(err)
		_, err = s.BorrowBook(ctx, "M002", "B001")
		is.NoErr(err)

		_, err = s.AddBook(ctx, "B001", "Harry Potter", "J.K. Rowling", 1)
		is.True(errors.Is(err, library.ErrResponseCopiesBelowActiveBorrows))

		b, err := s.GetBook(ctx, "B001")
		is.NoErr(err)
		is.Equal(b.TotalCopies, 3)
	})

	t.Run("the reject policy refuses known ids", func(t *testing.T) {
		is := is.New(t)
		s := newService(t, library.WithDuplicatePolicy(library.DuplicateReject))
		seed(t, s)

		_, err := s.AddBook(ctx, "B001", "Other", "Other", 9)
		is.True(errors.Is(err, library.ErrResponseBookAlreadyExists))

		_, err = s.AddMember(ctx, "M001", "Other", 50)
		is.True(errors.Is(err, library.ErrResponseMemberAlreadyExists))
	})
}

func TestAddMember(t *testing.T) {
	t.Run("invalid entries are refused", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)

		_, err := s.AddMember(ctx, "", "Alice", 30)
		is.True(errors.Is(err, library.ErrResponseEntryBlankFields))
		_, err = s.AddMember(ctx, "M001", "Alice", -1)
		is.True(errors.Is(err, library.ErrResponseInvalidAge))
	})

	t.Run("overwriting keeps the member's borrows", func(t *testing.T) {
		is := is.New(t)
		s := newService(t)
		seed(t, s)

		borrow, err := s.BorrowBook(ctx, "M001", "B001")
		is.NoErr(err)

		m, err := s.AddMember(ctx, "M001", "Alice Renamed", 31)
		is.NoErr(err)
		is.Equal(m.Name, "Alice Renamed")
		is.Equal(m.CurrentBorrows, []string{borrow.ID})

		members, err := s.ListMembers(ctx)
		is.NoErr(err)
		is.Equal(len(members), 6)
		is.Equal(members[0].ID, "M001")
	})
}

func TestCanceledContext(t *testing.T) {
	is := is.New(t)
	s := newService(t)
	seed(t, s)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := s.BorrowBook(canceled, "M001", "B001")
	is.True(errors.Is(err, context.Canceled))
	_, err = s.GetOverdueBooks(canceled)
	is.True(errors.Is(err, context.Canceled))

	b, err := s.GetBook(ctx, "B001")
	is.NoErr(err)
	is.Equal(b.AvailableCopies, 3)
}

func TestIDGenerators(t *testing.T) {
	t.Run("sequential ids count per kind", func(t *testing.T) {
		is := is.New(t)
		ids := library.NewSequentialIDs()

		is.Equal(ids.NewBorrowID(), "BR1")
		is.Equal(ids.NewBorrowID(), "BR2")
		is.Equal(ids.NewReserveID(), "RS1")
	})

	t.Run("uuid ids keep the kind prefix", func(t *testing.T) {
		is := is.New(t)
		pattern := regexp.MustCompile(`^(BR|RS)-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
		ids := library.UUIDs{}

		first, second := ids.NewBorrowID(), ids.NewBorrowID()
		is.True(pattern.MatchString(first))
		is.True(first != second)
		is.True(pattern.MatchString(ids.NewReserveID()))
	})
}
