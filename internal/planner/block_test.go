package planner

import (
	"testing"
	"time"
)

func TestResolveBlock(t *testing.T) {
	tests := []struct {
		name      string
		off       []time.Time
		anchor    time.Time
		wantStart time.Time
		wantEnd   time.Time
		wantLen   int
	}{
		{
			name:      "single day block",
			off:       []time.Time{date(2023, time.July, 12)},
			anchor:    date(2023, time.July, 12),
			wantStart: date(2023, time.July, 12),
			wantEnd:   date(2023, time.July, 12),
			wantLen:   1,
		},
		{
			name: "anchor in the middle",
			off: []time.Time{
				date(2023, time.December, 23),
				date(2023, time.December, 24),
				date(2023, time.December, 25),
			},
			anchor:    date(2023, time.December, 24),
			wantStart: date(2023, time.December, 23),
			wantEnd:   date(2023, time.December, 25),
			wantLen:   3,
		},
		{
			name: "anchor at block edge",
			off: []time.Time{
				date(2023, time.April, 7),
				date(2023, time.April, 8),
				date(2023, time.April, 9),
				date(2023, time.April, 10),
			},
			anchor:    date(2023, time.April, 7),
			wantStart: date(2023, time.April, 7),
			wantEnd:   date(2023, time.April, 10),
			wantLen:   4,
		},
		{
			name: "gap stops the walk",
			off: []time.Time{
				date(2023, time.May, 1),
				date(2023, time.May, 3),
				date(2023, time.May, 4),
			},
			anchor:    date(2023, time.May, 3),
			wantStart: date(2023, time.May, 3),
			wantEnd:   date(2023, time.May, 4),
			wantLen:   2,
		},
		{
			name: "spans a month boundary",
			off: []time.Time{
				date(2023, time.April, 29),
				date(2023, time.April, 30),
				date(2023, time.May, 1),
			},
			anchor:    date(2023, time.April, 30),
			wantStart: date(2023, time.April, 29),
			wantEnd:   date(2023, time.May, 1),
			wantLen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := NewOffDaySet(tt.off...)

			block := ResolveBlock(tt.anchor, off)

			if !block.Start.Equal(tt.wantStart) {
				t.Errorf("Start = %v, want %v", block.Start, tt.wantStart)
			}
			if !block.End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", block.End, tt.wantEnd)
			}
			if block.Length != tt.wantLen {
				t.Errorf("Length = %d, want %d", block.Length, tt.wantLen)
			}
		})
	}
}

func TestResolveBlock_Maximality(t *testing.T) {
	working := mustWorkingDays(t, "0,1,2,3,4")
	off := BuildOffDays(2023, []time.Time{date(2023, time.December, 25)}, working, false)

	for anchor := range off {
		block := ResolveBlock(anchor, off)

		if anchor.Before(block.Start) || anchor.After(block.End) {
			t.Fatalf("anchor %v outside block %v", anchor, block)
		}
		for d := block.Start; !d.After(block.End); d = d.AddDate(0, 0, 1) {
			if !off.Contains(d) {
				t.Fatalf("block %v contains non-off day %v", block, d)
			}
		}
		if off.Contains(block.Start.AddDate(0, 0, -1)) {
			t.Fatalf("block %v is not maximal on the left", block)
		}
		if off.Contains(block.End.AddDate(0, 0, 1)) {
			t.Fatalf("block %v is not maximal on the right", block)
		}
	}
}

func TestYearBlocks(t *testing.T) {
	working := mustWorkingDays(t, "0,1,2,3,4")

	// 2023 starts on a Sunday: one lone Sunday block, then 52 Sat-Sun pairs.
	blocks := YearBlocks(2023, BuildOffDays(2023, nil, working, false))

	if len(blocks) != 53 {
		t.Fatalf("block count = %d, want 53", len(blocks))
	}
	if blocks[0].Length != 1 || !blocks[0].Start.Equal(date(2023, time.January, 1)) {
		t.Errorf("first block = %v, want lone Sunday Jan 1", blocks[0])
	}
	for _, b := range blocks[1:] {
		if b.Length != 2 {
			t.Errorf("block %v length = %d, want 2", b, b.Length)
		}
	}
}

func TestYearBlocks_HolidayExtendsWeekend(t *testing.T) {
	working := mustWorkingDays(t, "0,1,2,3,4")
	off := BuildOffDays(2023, []time.Time{date(2023, time.December, 25)}, working, false)

	blocks := YearBlocks(2023, off)

	var christmas *Block
	for i := range blocks {
		if blocks[i].Start.Equal(date(2023, time.December, 23)) {
			christmas = &blocks[i]
			break
		}
	}

	if christmas == nil {
		t.Fatal("no block starting Dec 23 found")
	}
	if christmas.Length != 3 || !christmas.End.Equal(date(2023, time.December, 25)) {
		t.Errorf("Christmas block = %v, want Dec 23..25 (3 days)", *christmas)
	}
}
