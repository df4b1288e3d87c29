package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/library-service/cmd/library/library"

	"github.com/spf13/cobra"
)

const shellHelp = `commands:
  add book <id> <copies> <name>|<author>
  add member <id> <age> <name>
  borrow <member> <book>
  return <borrow>
  reserve <member> <book>
  search <query>
  books
  members
  member books <member>
  overdue
  reservations <book>
  help
  exit`

var errUsage = errors.New("usage")

func newShellCommand(svc library.ServiceAPI, logger *slog.Logger, newPrinter func(*cobra.Command) *printer) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read library commands from stdin until exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh := &shell{svc: svc, logger: logger, p: newPrinter(cmd)}
			return sh.run(cmd.Context(), bufio.NewScanner(cmd.InOrStdin()))
		},
	}
}

type shell struct {
	svc    library.ServiceAPI
	logger *slog.Logger
	p      *printer
}

func (sh *shell) run(ctx context.Context, sc *bufio.Scanner) error {
	for {
		if !sh.p.json {
			fmt.Fprint(sh.p.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		result, err := sh.execute(ctx, line)
		if err != nil {
			sh.logger.Info("command rejected", "command", line, "error", err)
			if perr := sh.p.failure(err); perr != nil {
				return perr
			}
			continue
		}
		if err := sh.p.result(result); err != nil {
			return err
		}
	}
	return sc.Err()
}

/* Parses one command line and runs it against the service. */
func (sh *shell) execute(ctx context.Context, line string) (any, error) {
	head, rest := cut(line, 1)
	switch head[0] {
	case "add":
		return sh.add(ctx, rest)
	case "borrow":
		args, _ := cut(rest, 2)
		if len(args) != 2 {
			return nil, usage("borrow <member> <book>")
		}
		return sh.svc.BorrowBook(ctx, args[0], args[1])
	case "return":
		args, _ := cut(rest, 1)
		if len(args) != 1 {
			return nil, usage("return <borrow>")
		}
		return sh.svc.ReturnBook(ctx, args[0])
	case "reserve":
		args, _ := cut(rest, 2)
		if len(args) != 2 {
			return nil, usage("reserve <member> <book>")
		}
		return sh.svc.ReserveBook(ctx, args[0], args[1])
	case "search":
		return sh.svc.SearchBooks(ctx, rest)
	case "books":
		return sh.svc.ListBooks(ctx)
	case "members":
		return sh.svc.ListMembers(ctx)
	case "member":
		args, _ := cut(rest, 2)
		if len(args) != 2 || args[0] != "books" {
			return nil, usage("member books <member>")
		}
		return sh.svc.GetMemberBooks(ctx, args[1])
	case "overdue":
		return sh.svc.GetOverdueBooks(ctx)
	case "reservations":
		args, _ := cut(rest, 1)
		if len(args) != 1 {
			return nil, usage("reservations <book>")
		}
		return sh.svc.ListReservations(ctx, args[0])
	case "help":
		return shellHelp, nil
	default:
		return nil, fmt.Errorf("%w: unknown command %q, type help", errUsage, head[0])
	}
}

func (sh *shell) add(ctx context.Context, rest string) (any, error) {
	args, tail := cut(rest, 3)
	if len(args) < 3 || tail == "" {
		return nil, usage("add book <id> <copies> <name>|<author> or add member <id> <age> <name>")
	}

	switch args[0] {
	case "book":
		copies, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, usage("add book <id> <copies> <name>|<author>")
		}
		name, author, _ := strings.Cut(tail, "|")
		return sh.svc.AddBook(ctx, args[1], strings.TrimSpace(name), strings.TrimSpace(author), copies)
	case "member":
		age, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, usage("add member <id> <age> <name>")
		}
		return sh.svc.AddMember(ctx, args[1], tail, age)
	default:
		return nil, usage("add book <id> <copies> <name>|<author> or add member <id> <age> <name>")
	}
}

func usage(form string) error {
	return fmt.Errorf("%w: %s", errUsage, form)
}

// cut splits off the first n space separated words and returns them with the
// untouched remainder.
func cut(s string, n int) ([]string, string) {
	words := make([]string, 0, n)
	s = strings.TrimSpace(s)
	for len(words) < n && s != "" {
		word, rest, _ := strings.Cut(s, " ")
		words = append(words, word)
		s = strings.TrimSpace(rest)
	}
	return words, s
}
