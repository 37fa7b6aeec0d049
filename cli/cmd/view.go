package cmd

import (
	"context"

	"github.com/strlog/strlog/cli/cmd/view"
	"github.com/strlog/strlog/filter"
)

// View browses recorded entries from the given sources in an interactive
// terminal UI with fuzzy and expression filtering.
type View struct {
	Limit int `default:"10000" help:"Maximum number of records to load"`
}

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src := sourceFilesFrom(ctx)
	if src == nil {
		return ErrNoSource
	}

	records := make([]filter.Record, 0, min(v.Limit, 1024))

	for rec, err := range filter.Records(src) {
		if err != nil {
			return err
		}

		records = append(records, rec)

		if len(records) >= v.Limit {
			break
		}
	}

	return view.Run(ctx, records)
}
