package inmemory

import (
	"context"
	"database/sql/driver"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/library-service/cmd/library/library"
)

const (
	tableBook    = "book"
	tableMember  = "member"
	tableBorrow  = "borrow"
	tableReserve = "reserve"
)

type InMemoryStore struct {
	db  *memdb.MemDB
	exc *memdb.Txn
	seq *sequences
}

// sequences numbers inserted rows per table so listings keep insertion order.
type sequences struct {
	books    uint64
	members  uint64
	borrows  uint64
	reserves uint64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableBook: {
				Name: tableBook,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			tableMember: {
				Name: tableMember,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			tableBorrow: {
				Name: tableBorrow,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"member_id": {
						Name:    "member_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
					},
					"book_id": {
						Name:    "book_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "BookID"},
					},
					"status": {
						Name:    "status",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
					"book_status": {
						Name:   "book_status",
						Unique: false,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.StringFieldIndex{Field: "BookID"},
								&memdb.StringFieldIndex{Field: "Status"},
							},
						},
					},
				},
			},
			tableReserve: {
				Name: tableReserve,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					"book_id": {
						Name:    "book_id",
						Unique:  false,
						Indexer: &memdb.StringFieldIndex{Field: "BookID"},
					},
				},
			},
		},
	}
}

func NewInMemoryStore() (*InMemoryStore, error) {
	s := schema()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validating in-memory schema: %w", err)
	}

	db, err := memdb.NewMemDB(s)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize in-memory database: %w", err)
	}
	return &InMemoryStore{db: db, seq: &sequences{}}, nil
}

// Rows are stored as records holding plain strings, so the memdb indexers and
// query arguments line up. Slices and pointers are copied on the way in and out
// because memdb objects must never change after insertion.

type memberRecord struct {
	ID             string
	Name           string
	Age            int
	CurrentBorrows []string
	Seq            uint64
}

func toMemberRecord(m library.Member) memberRecord {
	return memberRecord{
		ID:             m.ID,
		Name:           m.Name,
		Age:            m.Age,
		CurrentBorrows: slices.Clone(m.CurrentBorrows),
		Seq:            m.Seq,
	}
}

func fromMemberRecord(r memberRecord) library.Member {
	borrows := slices.Clone(r.CurrentBorrows)
	if borrows == nil {
		borrows = []string{}
	}
	return library.Member{
		ID:             r.ID,
		Name:           r.Name,
		Age:            r.Age,
		CurrentBorrows: borrows,
		Seq:            r.Seq,
	}
}

type borrowRecord struct {
	ID         string
	BookID     string
	MemberID   string
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	Status     string
	Seq        uint64
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func toBorrowRecord(b library.Borrow) borrowRecord {
	return borrowRecord{
		ID:         b.ID,
		BookID:     b.BookID,
		MemberID:   b.MemberID,
		BorrowDate: b.BorrowDate,
		DueDate:    b.DueDate,
		ReturnDate: copyTime(b.ReturnDate),
		Status:     string(b.Status),
		Seq:        b.Seq,
	}
}

func fromBorrowRecord(r borrowRecord) library.Borrow {
	return library.Borrow{
		ID:         r.ID,
		BookID:     r.BookID,
		MemberID:   r.MemberID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: copyTime(r.ReturnDate),
		Status:     library.BorrowStatus(r.Status),
		Seq:        r.Seq,
	}
}

type reserveRecord struct {
	ID          string
	BookID      string
	MemberID    string
	ReserveDate time.Time
	Status      string
	Seq         uint64
}

func toReserveRecord(r library.Reserve) reserveRecord {
	return reserveRecord{
		ID:          r.ID,
		BookID:      r.BookID,
		MemberID:    r.MemberID,
		ReserveDate: r.ReserveDate,
		Status:      string(r.Status),
		Seq:         r.Seq,
	}
}

func fromReserveRecord(r reserveRecord) library.Reserve {
	return library.Reserve{
		ID:          r.ID,
		BookID:      r.BookID,
		MemberID:    r.MemberID,
		ReserveDate: r.ReserveDate,
		Status:      library.ReserveStatus(r.Status),
		Seq:         r.Seq,
	}
}

// -- Books --

func (store *InMemoryStore) CreateBook(ctx context.Context, b library.Book) (library.Book, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBook, "id", b.ID)
	if err != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", err)
	}
	if raw != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", library.ErrResponseBookAlreadyExists)
	}

	store.seq.books++
	b.Seq = store.seq.books
	if err := txn.Insert(tableBook, b); err != nil {
		return library.Book{}, fmt.Errorf("storing book on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return b, nil
}

/* Replaces a stored book. The catalog position (Seq) never changes. */
func (store *InMemoryStore) UpdateBook(ctx context.Context, b library.Book) (library.Book, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBook, "id", b.ID)
	if err != nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", err)
	}
	if raw == nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", library.ErrResponseBookNotFound)
	}

	b.Seq = raw.(library.Book).Seq
	if err := txn.Insert(tableBook, b); err != nil {
		return library.Book{}, fmt.Errorf("updating book on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return b, nil
}

func (store *InMemoryStore) GetBookByID(ctx context.Context, id string) (library.Book, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBook, "id", id)
	if err != nil {
		return library.Book{}, fmt.Errorf("searching book by ID: %w", err)
	}
	if raw == nil {
		return library.Book{}, fmt.Errorf("searching book by ID: %w", library.ErrResponseBookNotFound)
	}
	return raw.(library.Book), nil
}

/* Returns the whole catalog in registration order. */
func (store *InMemoryStore) ListBooks(ctx context.Context) ([]library.Book, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	it, err := txn.Get(tableBook, "id")
	if err != nil {
		return nil, fmt.Errorf("listing books from db: %w", err)
	}

	books := []library.Book{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		books = append(books, obj.(library.Book))
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].Seq < books[j].Seq
	})
	return books, nil
}

// -- Members --

func (store *InMemoryStore) CreateMember(ctx context.Context, m library.Member) (library.Member, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableMember, "id", m.ID)
	if err != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", err)
	}
	if raw != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", library.ErrResponseMemberAlreadyExists)
	}

	store.seq.members++
	rec := toMemberRecord(m)
	rec.Seq = store.seq.members
	if err := txn.Insert(tableMember, rec); err != nil {
		return library.Member{}, fmt.Errorf("storing member on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return fromMemberRecord(rec), nil
}

func (store *InMemoryStore) UpdateMember(ctx context.Context, m library.Member) (library.Member, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableMember, "id", m.ID)
	if err != nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", err)
	}
	if raw == nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", library.ErrResponseMemberNotFound)
	}

	rec := toMemberRecord(m)
	rec.Seq = raw.(memberRecord).Seq
	if err := txn.Insert(tableMember, rec); err != nil {
		return library.Member{}, fmt.Errorf("updating member on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return fromMemberRecord(rec), nil
}

func (store *InMemoryStore) GetMemberByID(ctx context.Context, id string) (library.Member, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableMember, "id", id)
	if err != nil {
		return library.Member{}, fmt.Errorf("searching member by ID: %w", err)
	}
	if raw == nil {
		return library.Member{}, fmt.Errorf("searching member by ID: %w", library.ErrResponseMemberNotFound)
	}
	return fromMemberRecord(raw.(memberRecord)), nil
}

func (store *InMemoryStore) ListMembers(ctx context.Context) ([]library.Member, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	it, err := txn.Get(tableMember, "id")
	if err != nil {
		return nil, fmt.Errorf("listing members from db: %w", err)
	}

	members := []library.Member{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		members = append(members, fromMemberRecord(obj.(memberRecord)))
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Seq < members[j].Seq
	})
	return members, nil
}

// -- Borrows --

func (store *InMemoryStore) CreateBorrow(ctx context.Context, b library.Borrow) (library.Borrow, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBorrow, "id", b.ID)
	if err != nil {
		return library.Borrow{}, fmt.Errorf("storing borrow on db: %w", err)
	}
	if raw != nil {
		return library.Borrow{}, fmt.Errorf("storing borrow on db: id %q already taken", b.ID)
	}

	store.seq.borrows++
	rec := toBorrowRecord(b)
	rec.Seq = store.seq.borrows
	if err := txn.Insert(tableBorrow, rec); err != nil {
		return library.Borrow{}, fmt.Errorf("storing borrow on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return fromBorrowRecord(rec), nil
}

func (store *InMemoryStore) UpdateBorrow(ctx context.Context, b library.Borrow) (library.Borrow, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBorrow, "id", b.ID)
	if err != nil {
		return library.Borrow{}, fmt.Errorf("updating borrow on db: %w", err)
	}
	if raw == nil {
		return library.Borrow{}, fmt.Errorf("updating borrow on db: %w", library.ErrResponseBorrowNotFound)
	}

	rec := toBorrowRecord(b)
	rec.Seq = raw.(borrowRecord).Seq
	if err := txn.Insert(tableBorrow, rec); err != nil {
		return library.Borrow{}, fmt.Errorf("updating borrow on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return fromBorrowRecord(rec), nil
}

func (store *InMemoryStore) GetBorrowByID(ctx context.Context, id string) (library.Borrow, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableBorrow, "id", id)
	if err != nil {
		return library.Borrow{}, fmt.Errorf("searching borrow by ID: %w", err)
	}
	if raw == nil {
		return library.Borrow{}, fmt.Errorf("searching borrow by ID: %w", library.ErrResponseBorrowNotFound)
	}
	return fromBorrowRecord(raw.(borrowRecord)), nil
}

func (store *InMemoryStore) ListBorrowsByStatus(ctx context.Context, status library.BorrowStatus) ([]library.Borrow, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	it, err := txn.Get(tableBorrow, "status", string(status))
	if err != nil {
		return nil, fmt.Errorf("listing borrows from db: %w", err)
	}

	borrows := []library.Borrow{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		borrows = append(borrows, fromBorrowRecord(obj.(borrowRecord)))
	}
	sort.Slice(borrows, func(i, j int) bool {
		return borrows[i].Seq < borrows[j].Seq
	})
	return borrows, nil
}

func (store *InMemoryStore) CountActiveBorrowsByBook(ctx context.Context, bookID string) (int, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	it, err := txn.Get(tableBorrow, "book_status", bookID, string(library.BorrowActive))
	if err != nil {
		return 0, fmt.Errorf("counting borrows from db: %w", err)
	}

	count := 0
	for obj := it.Next(); obj != nil; obj = it.Next() {
		count++
	}
	return count, nil
}

// -- Reserves --

func (store *InMemoryStore) CreateReserve(ctx context.Context, r library.Reserve) (library.Reserve, error) {
	txn, owned := store.txn(true)
	if owned {
		defer txn.Abort()
	}

	raw, err := txn.First(tableReserve, "id", r.ID)
	if err != nil {
		return library.Reserve{}, fmt.Errorf("storing reserve on db: %w", err)
	}
	if raw != nil {
		return library.Reserve{}, fmt.Errorf("storing reserve on db: id %q already taken", r.ID)
	}

	store.seq.reserves++
	rec := toReserveRecord(r)
	rec.Seq = store.seq.reserves
	if err := txn.Insert(tableReserve, rec); err != nil {
		return library.Reserve{}, fmt.Errorf("storing reserve on db: %w", err)
	}

	if owned {
		txn.Commit()
	}
	return fromReserveRecord(rec), nil
}

func (store *InMemoryStore) ListReservesByBook(ctx context.Context, bookID string) ([]library.Reserve, error) {
	txn, owned := store.txn(false)
	if owned {
		defer txn.Abort()
	}

	it, err := txn.Get(tableReserve, "book_id", bookID)
	if err != nil {
		return nil, fmt.Errorf("listing reserves from db: %w", err)
	}

	reserves := []library.Reserve{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		reserves = append(reserves, fromReserveRecord(obj.(reserveRecord)))
	}
	sort.Slice(reserves, func(i, j int) bool {
		return reserves[i].Seq < reserves[j].Seq
	})
	return reserves, nil
}

// -- Transactions --

/* Opens a write transaction and returns a store bound to it. */
func (store *InMemoryStore) BeginTx(ctx context.Context) (library.Repository, driver.Tx, error) {
	if store.exc != nil {
		return nil, nil, fmt.Errorf("beginning transaction: already inside a transaction")
	}

	txn := store.db.Txn(true)
	txWrapper := &TxWrapper{txn: txn}
	txStore := &InMemoryStore{
		db:  store.db,
		exc: txn,
		seq: store.seq,
	}

	return txStore, txWrapper, nil
}

type TxWrapper struct {
	txn *memdb.Txn
}

func (tx *TxWrapper) Commit() error {
	tx.txn.Commit()
	return nil
}

// Rollback discards the writes. It is a no-op once the transaction was committed.
func (tx *TxWrapper) Rollback() error {
	tx.txn.Abort()
	return nil
}

/* Returns the transaction to work on and whether this call opened it. */
func (store *InMemoryStore) txn(write bool) (*memdb.Txn, bool) {
	if store.exc != nil { //It means this method is being called inside a larger transaction.
		return store.exc, false
	}
	return store.db.Txn(write), true
}
