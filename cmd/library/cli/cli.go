package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/library-service/cmd/library/library"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// NewRootCommand builds the library command tree around an in-process service.
func NewRootCommand(svc library.ServiceAPI, logger *slog.Logger) *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:           "library",
		Short:         "Library borrow and reserve manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "render results as JSON")

	newPrinter := func(cmd *cobra.Command) *printer {
		return &printer{out: cmd.OutOrStdout(), json: asJSON}
	}

	root.AddCommand(
		newDemoCommand(svc, logger, newPrinter),
		newShellCommand(svc, logger, newPrinter),
	)
	return root
}

type printer struct {
	out  io.Writer
	json bool
}

func (p *printer) encode(v any) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

/* Renders a service result: a single entity, a list of them, or a plain message. */
func (p *printer) result(v any) error {
	if p.json {
		return p.encode(v)
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	switch r := v.(type) {
	case library.Book:
		writeBook(w, r)
	case []library.Book:
		if len(r) == 0 {
			fmt.Fprintln(w, "no books")
		}
		for _, b := range r {
			writeBook(w, b)
		}
	case library.Member:
		writeMember(w, r)
	case []library.Member:
		if len(r) == 0 {
			fmt.Fprintln(w, "no members")
		}
		for _, m := range r {
			writeMember(w, m)
		}
	case library.Borrow:
		writeBorrow(w, r)
	case []library.Borrow:
		if len(r) == 0 {
			fmt.Fprintln(w, "no borrows")
		}
		for _, b := range r {
			writeBorrow(w, b)
		}
	case library.Reserve:
		writeReserve(w, r)
	case []library.Reserve:
		if len(r) == 0 {
			fmt.Fprintln(w, "no reservations")
		}
		for _, rs := range r {
			writeReserve(w, rs)
		}
	case string:
		fmt.Fprintln(w, r)
	default:
		fmt.Fprintf(w, "%v\n", r)
	}
	return w.Flush()
}

// failure renders a rejected command. Catalogued errors keep their code.
func (p *printer) failure(err error) error {
	var errResp library.ErrResponse
	isCatalogued := errors.As(err, &errResp)

	if p.json {
		if isCatalogued {
			return p.encode(errResp)
		}
		return p.encode(library.ErrResponse{Message: err.Error()})
	}

	if isCatalogued {
		_, werr := fmt.Fprintf(p.out, "error %d: %s\n", errResp.Code, errResp.Message)
		return werr
	}
	_, werr := fmt.Fprintf(p.out, "error: %s\n", err)
	return werr
}

func (p *printer) heading(title string) {
	if !p.json {
		fmt.Fprintf(p.out, "== %s\n", title)
	}
}

func writeBook(w io.Writer, b library.Book) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d available\n", b.ID, b.Name, b.Author, b.AvailableCopies, b.TotalCopies)
}

func writeMember(w io.Writer, m library.Member) {
	borrows := "-"
	if len(m.CurrentBorrows) > 0 {
		borrows = strings.Join(m.CurrentBorrows, ",")
	}
	fmt.Fprintf(w, "%s\t%s\tage %d\tborrows %s\n", m.ID, m.Name, m.Age, borrows)
}

func writeBorrow(w io.Writer, b library.Borrow) {
	returned := ""
	if b.ReturnDate != nil {
		returned = "returned " + b.ReturnDate.Format(dateLayout)
	}
	fmt.Fprintf(w, "%s\tbook %s\tmember %s\t%s\tdue %s\t%s\n",
		b.ID, b.BookID, b.MemberID, b.Status, b.DueDate.Format(dateLayout), returned)
}

func writeReserve(w io.Writer, r library.Reserve) {
	fmt.Fprintf(w, "%s\tbook %s\tmember %s\t%s\t%s\n",
		r.ID, r.BookID, r.MemberID, r.Status, r.ReserveDate.Format(dateLayout))
}
