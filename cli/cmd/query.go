package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strlog/strlog/filter"
	"github.com/strlog/strlog/log"
)

// Query filters recorded entries from the given sources with a boolean
// expression and prints the matching lines.
type Query struct {
	Expr string `arg:"" default:"true" help:"Boolean filter expression" name:"expr" optional:""`

	Count bool `help:"Print only the number of matching records" short:"c"`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	f, err := filter.Compile(q.Expr)
	if err != nil {
		return err
	}

	src := sourceFilesFrom(ctx)
	if src == nil {
		return ErrNoSource
	}

	var matched int

	for rec, err := range filter.Records(src) {
		if err != nil {
			return err
		}

		ok, err := f.Match(rec)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		matched++

		if !q.Count {
			fmt.Println(rec.Raw)
		}
	}

	if q.Count {
		fmt.Println(matched)
	}

	log.DebugContext(ctx, "query complete",
		slog.String("expr", q.Expr),
		slog.Int("matched", matched),
	)

	return nil
}
