package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/library-service/cmd/library/library"

	"github.com/spf13/cobra"
)

type step struct {
	title string
	run   func(ctx context.Context) (any, error)
}

func newDemoCommand(svc library.ServiceAPI, logger *slog.Logger, newPrinter func(*cobra.Command) *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Register a sample catalog and walk through borrow, return and reserve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), svc, logger, newPrinter(cmd))
		},
	}
}

/* Runs the scripted scenario. Rejected steps are printed and the script carries on. */
func runDemo(ctx context.Context, svc library.ServiceAPI, logger *slog.Logger, p *printer) error {
	var firstBorrow library.Borrow

	steps := []step{
		{"add book B001", func(ctx context.Context) (any, error) {
			return svc.AddBook(ctx, "B001", "Harry Potter", "J.K. Rowling", 3)
		}},
		{"add book B002", func(ctx context.Context) (any, error) {
			return svc.AddBook(ctx, "B002", "The Hobbit", "J.R.R. Tolkien", 1)
		}},
		{"add book B003", func(ctx context.Context) (any, error) {
			return svc.AddBook(ctx, "B003", "Dune", "Frank Herbert", 2)
		}},
		{"add member M001", func(ctx context.Context) (any, error) {
			return svc.AddMember(ctx, "M001", "Alice", 30)
		}},
		{"add member M002", func(ctx context.Context) (any, error) {
			return svc.AddMember(ctx, "M002", "Bob", 25)
		}},
		{"M001 borrows B001", func(ctx context.Context) (any, error) {
			b, err := svc.BorrowBook(ctx, "M001", "B001")
			firstBorrow = b
			return b, err
		}},
		{"M001 borrows B002", func(ctx context.Context) (any, error) {
			return svc.BorrowBook(ctx, "M001", "B002")
		}},
		{"M002 borrows B002", func(ctx context.Context) (any, error) {
			return svc.BorrowBook(ctx, "M002", "B002")
		}},
		{"M002 reserves B002", func(ctx context.Context) (any, error) {
			return svc.ReserveBook(ctx, "M002", "B002")
		}},
		{"M002 reserves B001", func(ctx context.Context) (any, error) {
			return svc.ReserveBook(ctx, "M002", "B001")
		}},
		{"search harry", func(ctx context.Context) (any, error) {
			return svc.SearchBooks(ctx, "harry")
		}},
		{"books held by M001", func(ctx context.Context) (any, error) {
			return svc.GetMemberBooks(ctx, "M001")
		}},
		{"M001 returns B001", func(ctx context.Context) (any, error) {
			return svc.ReturnBook(ctx, firstBorrow.ID)
		}},
		{"reservations for B002", func(ctx context.Context) (any, error) {
			return svc.ListReservations(ctx, "B002")
		}},
		{"overdue borrows", func(ctx context.Context) (any, error) {
			return svc.GetOverdueBooks(ctx)
		}},
		{"catalog", func(ctx context.Context) (any, error) {
			return svc.ListBooks(ctx)
		}},
	}

	for _, s := range steps {
		p.heading(s.title)
		result, err := s.run(ctx)
		if err != nil {
			if !library.IsRuleViolation(err) && !library.IsNotFound(err) && !library.IsInvalidEntry(err) {
				return fmt.Errorf("demo step %q: %w", s.title, err)
			}
			logger.Info("demo step rejected", "step", s.title, "error", err)
			if err := p.failure(err); err != nil {
				return err
			}
			continue
		}
		if err := p.result(result); err != nil {
			return err
		}
	}
	return nil
}
