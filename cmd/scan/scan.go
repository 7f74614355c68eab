package scan

import (
	"context"

	"github.com/farzaaaan/dupnames/cmd/utils"
)

// Stats counts what one run saw.
type Stats struct {
	Files   int
	Errors  int
	Ignored int
	Unnamed int
}

// Result is the outcome of Run.
type Result struct {
	Duplicates Table
	Stats      Stats
}

// Run walks src once, feeding every path through a Grouper.
func Run(ctx context.Context, src Source, ignore utils.Ignorer) (Result, error) {
	g := NewGrouper(ignore)
	stats, err := src.Walk(ctx, g.Add)
	if err != nil {
		return Result{}, err
	}
	stats.Ignored = g.Ignored
	stats.Unnamed = g.Unnamed
	return Result{Duplicates: g.Duplicates(), Stats: stats}, nil
}
