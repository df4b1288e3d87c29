package library

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"
)

//go:generate mockgen -destination=mocks/repository.go -package=mocks github.com/library-service/cmd/library/library Repository
//go:generate mockgen -destination=mocks/tx.go -package=mocks database/sql/driver Tx

// Repository owns every entity. Records point at each other only by id.
type Repository interface {
	CreateBook(ctx context.Context, b Book) (Book, error)
	UpdateBook(ctx context.Context, b Book) (Book, error)
	GetBookByID(ctx context.Context, id string) (Book, error)
	ListBooks(ctx context.Context) ([]Book, error)

	CreateMember(ctx context.Context, m Member) (Member, error)
	UpdateMember(ctx context.Context, m Member) (Member, error)
	GetMemberByID(ctx context.Context, id string) (Member, error)
	ListMembers(ctx context.Context) ([]Member, error)

	CreateBorrow(ctx context.Context, b Borrow) (Borrow, error)
	UpdateBorrow(ctx context.Context, b Borrow) (Borrow, error)
	GetBorrowByID(ctx context.Context, id string) (Borrow, error)
	ListBorrowsByStatus(ctx context.Context, status BorrowStatus) ([]Borrow, error)
	CountActiveBorrowsByBook(ctx context.Context, bookID string) (int, error)

	CreateReserve(ctx context.Context, r Reserve) (Reserve, error)
	ListReservesByBook(ctx context.Context, bookID string) ([]Reserve, error)

	BeginTx(ctx context.Context) (Repository, driver.Tx, error)
}

// ServiceAPI is the call surface of the library manager used by the CLI.
type ServiceAPI interface {
	AddBook(ctx context.Context, id, name, author string, copies int) (Book, error)
	AddMember(ctx context.Context, id, name string, age int) (Member, error)
	SearchBooks(ctx context.Context, query string) ([]Book, error)
	BorrowBook(ctx context.Context, memberID, bookID string) (Borrow, error)
	ReturnBook(ctx context.Context, borrowID string) (Borrow, error)
	ReserveBook(ctx context.Context, memberID, bookID string) (Reserve, error)
	GetMemberBooks(ctx context.Context, memberID string) ([]Book, error)
	GetOverdueBooks(ctx context.Context) ([]Borrow, error)

	GetBook(ctx context.Context, id string) (Book, error)
	GetMember(ctx context.Context, id string) (Member, error)
	GetBorrow(ctx context.Context, id string) (Borrow, error)
	ListBooks(ctx context.Context) ([]Book, error)
	ListMembers(ctx context.Context) ([]Member, error)
	ListReservations(ctx context.Context, bookID string) ([]Reserve, error)
}

type Service struct {
	repo             Repository
	ids              IDGenerator
	now              func() time.Time
	logger           *slog.Logger
	loanPeriod       time.Duration
	maxActiveBorrows int
	duplicates       DuplicatePolicy
}

type Option func(*Service)

func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Service) { s.ids = ids }
}

// WithClock replaces time.Now. Due dates and overdue checks both read it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithLoanPeriod(d time.Duration) Option {
	return func(s *Service) { s.loanPeriod = d }
}

func WithMaxActiveBorrows(n int) Option {
	return func(s *Service) { s.maxActiveBorrows = n }
}

func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(s *Service) { s.duplicates = p }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:             repo,
		ids:              NewSequentialIDs(),
		now:              time.Now,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		loanPeriod:       DefaultLoanPeriod,
		maxActiveBorrows: DefaultMaxActiveBorrows,
		duplicates:       DuplicateOverwrite,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// -- Catalog --

/* Registers a book, or replaces it when the id is known and the duplicate policy allows it. */
func (s *Service) AddBook(ctx context.Context, id, name, author string, copies int) (Book, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return Book{}, ErrResponseEntryBlankFields
	}
	if copies <= 0 {
		return Book{}, ErrResponseInvalidCopies
	}

	var stored Book
	err := s.withTx(ctx, "AddBook", func(repo Repository) error {
		existing, err := repo.GetBookByID(ctx, id)
		if errors.Is(err, ErrResponseBookNotFound) {
			stored, err = repo.CreateBook(ctx, Book{
				ID:              id,
				Name:            name,
				Author:          author,
				TotalCopies:     copies,
				AvailableCopies: copies,
			})
			return err
		}
		if err != nil {
			return err
		}

		if s.duplicates == DuplicateReject {
			return ErrResponseBookAlreadyExists
		}
		active, err := repo.CountActiveBorrowsByBook(ctx, id)
		if err != nil {
			return err
		}
		if copies < active {
			return ErrResponseCopiesBelowActiveBorrows
		}
		existing.Name = name
		existing.Author = author
		existing.TotalCopies = copies
		existing.AvailableCopies = copies - active
		stored, err = repo.UpdateBook(ctx, existing)
		return err
	})
	if err != nil {
		return Book{}, err
	}

	s.logger.Debug("book added", "book_id", stored.ID, "copies", stored.TotalCopies)
	return stored, nil
}

/* Registers a member. Overwriting a known id keeps the member's active borrows. */
func (s *Service) AddMember(ctx context.Context, id, name string, age int) (Member, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return Member{}, ErrResponseEntryBlankFields
	}
	if age < 0 {
		return Member{}, ErrResponseInvalidAge
	}

	var stored Member
	err := s.withTx(ctx, "AddMember", func(repo Repository) error {
		existing, err := repo.GetMemberByID(ctx, id)
		if errors.Is(err, ErrResponseMemberNotFound) {
			stored, err = repo.CreateMember(ctx, Member{ID: id, Name: name, Age: age, CurrentBorrows: []string{}})
			return err
		}
		if err != nil {
			return err
		}

		if s.duplicates == DuplicateReject {
			return ErrResponseMemberAlreadyExists
		}
		existing.Name = name
		existing.Age = age
		stored, err = repo.UpdateMember(ctx, existing)
		return err
	})
	if err != nil {
		return Member{}, err
	}

	s.logger.Debug("member added", "member_id", stored.ID)
	return stored, nil
}

func (s *Service) SearchBooks(ctx context.Context, query string) ([]Book, error) {
	books, err := s.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	found := []Book{}
	for _, b := range books {
		if b.Matches(query) {
			found = append(found, b)
		}
	}
	return found, nil
}

// -- Circulation --

func (s *Service) BorrowBook(ctx context.Context, memberID, bookID string) (Borrow, error) {
	var created Borrow
	err := s.withTx(ctx, "BorrowBook", func(repo Repository) error {
		member, err := repo.GetMemberByID(ctx, memberID)
		if err != nil {
			return err
		}
		b, err := repo.GetBookByID(ctx, bookID)
		if err != nil {
			return err
		}
		if len(member.CurrentBorrows) >= s.maxActiveBorrows {
			return ErrResponseBorrowLimitReached
		}
		if b.AvailableCopies <= 0 {
			return ErrResponseBookUnavailable
		}

		borrowedAt := s.now()
		created, err = repo.CreateBorrow(ctx, Borrow{
			ID:         s.ids.NewBorrowID(),
			BookID:     b.ID,
			MemberID:   member.ID,
			BorrowDate: borrowedAt,
			DueDate:    borrowedAt.Add(s.loanPeriod),
			Status:     BorrowActive,
		})
		if err != nil {
			return err
		}

		b.AvailableCopies--
		if _, err := repo.UpdateBook(ctx, b); err != nil {
			return err
		}

		member.CurrentBorrows = append(slices.Clone(member.CurrentBorrows), created.ID)
		_, err = repo.UpdateMember(ctx, member)
		return err
	})
	if err != nil {
		return Borrow{}, err
	}

	s.logger.Debug("book borrowed", "borrow_id", created.ID, "book_id", bookID, "member_id", memberID, "due", created.DueDate)
	return created, nil
}

func (s *Service) ReturnBook(ctx context.Context, borrowID string) (Borrow, error) {
	var returned Borrow
	err := s.withTx(ctx, "ReturnBook", func(repo Repository) error {
		borrow, err := repo.GetBorrowByID(ctx, borrowID)
		if err != nil {
			return err
		}
		if borrow.Status != BorrowActive {
			return ErrResponseBorrowNotActive
		}

		returnedAt := s.now()
		borrow.Status = BorrowReturned
		borrow.ReturnDate = &returnedAt
		if returned, err = repo.UpdateBorrow(ctx, borrow); err != nil {
			return err
		}

		b, err := repo.GetBookByID(ctx, borrow.BookID)
		if err != nil {
			return err
		}
		b.AvailableCopies++
		if _, err := repo.UpdateBook(ctx, b); err != nil {
			return err
		}

		member, err := repo.GetMemberByID(ctx, borrow.MemberID)
		if err != nil {
			return err
		}
		member.CurrentBorrows = slices.DeleteFunc(slices.Clone(member.CurrentBorrows), func(id string) bool {
			return id == borrow.ID
		})
		_, err = repo.UpdateMember(ctx, member)
		return err
	})
	if err != nil {
		return Borrow{}, err
	}

	s.logger.Debug("book returned", "borrow_id", returned.ID, "book_id", returned.BookID)
	return returned, nil
}

// ReserveBook only succeeds while every copy of the book is checked out.
// Reservations are recorded but never queued or fulfilled automatically.
func (s *Service) ReserveBook(ctx context.Context, memberID, bookID string) (Reserve, error) {
	var created Reserve
	err := s.withTx(ctx, "ReserveBook", func(repo Repository) error {
		member, err := repo.GetMemberByID(ctx, memberID)
		if err != nil {
			return err
		}
		b, err := repo.GetBookByID(ctx, bookID)
		if err != nil {
			return err
		}
		if b.AvailableCopies > 0 {
			return ErrResponseReserveNotNeeded
		}

		created, err = repo.CreateReserve(ctx, Reserve{
			ID:          s.ids.NewReserveID(),
			BookID:      b.ID,
			MemberID:    member.ID,
			ReserveDate: s.now(),
			Status:      ReserveActive,
		})
		return err
	})
	if err != nil {
		return Reserve{}, err
	}

	s.logger.Debug("book reserved", "reserve_id", created.ID, "book_id", bookID, "member_id", memberID)
	return created, nil
}

/* Returns the books the member currently holds, in borrow order. Unknown members hold nothing. */
func (s *Service) GetMemberBooks(ctx context.Context, memberID string) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GetMemberBooks canceled: %w", err)
	}

	member, err := s.repo.GetMemberByID(ctx, memberID)
	if errors.Is(err, ErrResponseMemberNotFound) {
		return []Book{}, nil
	}
	if err != nil {
		return nil, s.classify("GetMemberBooks", err)
	}

	books := make([]Book, 0, len(member.CurrentBorrows))
	for _, borrowID := range member.CurrentBorrows {
		borrow, err := s.repo.GetBorrowByID(ctx, borrowID)
		if err != nil {
			return nil, s.classify("GetMemberBooks", err)
		}
		b, err := s.repo.GetBookByID(ctx, borrow.BookID)
		if err != nil {
			return nil, s.classify("GetMemberBooks", err)
		}
		books = append(books, b)
	}
	return books, nil
}

/* Returns active borrows whose due date is strictly before the current time. */
func (s *Service) GetOverdueBooks(ctx context.Context) ([]Borrow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("GetOverdueBooks canceled: %w", err)
	}

	active, err := s.repo.ListBorrowsByStatus(ctx, BorrowActive)
	if err != nil {
		return nil, s.classify("GetOverdueBooks", err)
	}

	now := s.now()
	overdue := []Borrow{}
	for _, b := range active {
		if b.IsOverdue(now) {
			overdue = append(overdue, b)
		}
	}
	return overdue, nil
}

// -- Lookups --

func (s *Service) GetBook(ctx context.Context, id string) (Book, error) {
	b, err := s.repo.GetBookByID(ctx, id)
	if err != nil {
		return Book{}, s.classify("GetBook", err)
	}
	return b, nil
}

func (s *Service) GetMember(ctx context.Context, id string) (Member, error) {
	m, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return Member{}, s.classify("GetMember", err)
	}
	return m, nil
}

func (s *Service) GetBorrow(ctx context.Context, id string) (Borrow, error) {
	b, err := s.repo.GetBorrowByID(ctx, id)
	if err != nil {
		return Borrow{}, s.classify("GetBorrow", err)
	}
	return b, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ListBooks canceled: %w", err)
	}
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, s.classify("ListBooks", err)
	}
	return books, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ListMembers canceled: %w", err)
	}
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, s.classify("ListMembers", err)
	}
	return members, nil
}

func (s *Service) ListReservations(ctx context.Context, bookID string) ([]Reserve, error) {
	if _, err := s.repo.GetBookByID(ctx, bookID); err != nil {
		return nil, s.classify("ListReservations", err)
	}
	reserves, err := s.repo.ListReservesByBook(ctx, bookID)
	if err != nil {
		return nil, s.classify("ListReservations", err)
	}
	return reserves, nil
}

// -- Transactions --

// withTx runs fn against a transaction-bound repository. Nothing fn wrote is
// kept unless it returns nil.
func (s *Service) withTx(ctx context.Context, op string, fn func(repo Repository) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s canceled: %w", op, err)
	}

	txRepo, tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return s.classify(op, err)
	}
	defer tx.Rollback()

	if err := fn(txRepo); err != nil {
		return s.classify(op, err)
	}

	if err := tx.Commit(); err != nil {
		return s.classify(op, err)
	}
	return nil
}

/* Passes typed errors through and turns anything else into a repository error. */
func (s *Service) classify(op string, err error) error {
	var errResp ErrResponse
	if errors.As(err, &errResp) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s canceled: %w", op, err)
	}
	s.logger.Warn("repository failure", "op", op, "error", err)
	return repositoryError(err)
}
