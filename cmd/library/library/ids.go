package library

import (
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/ids.go -package=mocks github.com/library-service/cmd/library/library IDGenerator

// IDGenerator produces identifiers for borrows and reservations.
type IDGenerator interface {
	NewBorrowID() string
	NewReserveID() string
}

const (
	BorrowIDPrefix  = "BR"
	ReserveIDPrefix = "RS"
)

// SequentialIDs hands out BR1, BR2, ... and RS1, RS2, ... from independent counters.
type SequentialIDs struct {
	borrows  uint64
	reserves uint64
}

func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

func (g *SequentialIDs) NewBorrowID() string {
	g.borrows++
	return fmt.Sprintf("%s%d", BorrowIDPrefix, g.borrows)
}

func (g *SequentialIDs) NewReserveID() string {
	g.reserves++
	return fmt.Sprintf("%s%d", ReserveIDPrefix, g.reserves)
}

type UUIDs struct{}

func (UUIDs) NewBorrowID() string {
	return BorrowIDPrefix + "-" + uuid.NewString()
}

func (UUIDs) NewReserveID() string {
	return ReserveIDPrefix + "-" + uuid.NewString()
}
