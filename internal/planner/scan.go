package planner

import (
	"time"

	"github.com/username/holiday-planner/pkg/dateutil"
)

// Suggestion recommends taking a single leave day and describes the
// contiguous off-day block that taking it would produce.
type Suggestion struct {
	LeaveDay time.Time
	Block    Block
}

// Suggest scans every date of the year in calendar order and returns the
// working days that, taken as leave, produce an off-day block of at least
// threshold days.
//
// A date is a candidate only if its weekday is worked and it is not
// already off. Candidates with no off neighbor are pruned without
// resolving: an isolated leave day can only ever form a block of one, and
// the prune guarantees every suggestion touches a pre-existing off period.
// Each candidate is evaluated on a cloned set; the supplied off-day set is
// never mutated. The result is deterministic for fixed inputs.
func Suggest(year int, off OffDaySet, working WorkingDaySet, threshold int) []Suggestion {
	var suggestions []Suggestion

	for _, d := range YearDates(year) {
		if !working.Contains(d) || off.Contains(d) {
			continue
		}
		if !off.Contains(dateutil.PrevDay(d)) && !off.Contains(dateutil.NextDay(d)) {
			continue
		}

		trial := off.Clone()
		trial.Add(d)

		block := ResolveBlock(d, trial)
		if block.Length >= threshold {
			suggestions = append(suggestions, Suggestion{LeaveDay: d, Block: block})
		}
	}

	return suggestions
}
