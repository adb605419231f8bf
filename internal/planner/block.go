package planner

import (
	"fmt"
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
)

// Block is a maximal run of consecutive off days.
type Block struct {
	Start  time.Time
	End    time.Time
	Length int // inclusive day count, (End - Start) + 1
}

func (b Block) String() string {
	return fmt.Sprintf("%s .. %s (%d days)",
		b.Start.Format("2006-01-02"), b.End.Format("2006-01-02"), b.Length)
}

// ResolveBlock expands from anchor through the off-day set to the full
// contiguous run containing it. The anchor must already be a member of the
// set; the caller inserts a hypothetical leave day before resolving.
func ResolveBlock(anchor time.Time, off OffDaySet) Block {
	start := dateutil.Midnight(anchor)
	end := start

	for prev := dateutil.PrevDay(start); off.Contains(prev); prev = dateutil.PrevDay(prev) {
		start = prev
	}
	for next := dateutil.NextDay(end); off.Contains(next); next = dateutil.NextDay(next) {
		end = next
	}

	return Block{
		Start:  start,
		End:    end,
		Length: dateutil.DaysBetween(start, end),
	}
}

// YearBlocks returns every maximal off-day block that starts within the
// year, in ascending order of start date. Blocks beginning late in the
// prior year are reported from their true start when they reach into the
// year's January 1.
func YearBlocks(year int, off OffDaySet) []Block {
	var blocks []Block
	for i, d := range YearDates(year) {
		if !off.Contains(d) {
			continue
		}
		if i > 0 && off.Contains(dateutil.PrevDay(d)) {
			continue // interior day, covered by the block resolved at its head
		}
		blocks = append(blocks, ResolveBlock(d, off))
	}
	return blocks
}
