package planner

import (
	"testing"
	"time"

	"study-planner/internal/model"
)

var freeTimeBase = time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)

func TestFreeSlotsEmptyWeek(t *testing.T) {
	p := New(DefaultConfig(), nil, nil)

	slots := p.FreeSlots(freeTimeBase, nil)
	if len(slots) != 7 {
		t.Fatalf("got %d slots, want 7", len(slots))
	}
	for i, slot := range slots {
		want := at(freeTimeBase, i+1, 8, 0)
		if !slot.Start.Equal(want) {
			t.Errorf("slot %d starts %v, want %v", i, slot.Start, want)
		}
		if slot.Hours != 14 {
			t.Errorf("slot %d has %.2f hours, want 14", i, slot.Hours)
		}
	}
}

func TestFreeSlotsSubtraction(t *testing.T) {
	p := New(DefaultConfig(), nil, nil)

	fixed := func(day, sh, sm, eh, em int) model.ScheduleBlock {
		return model.ScheduleBlock{
			StartTime: at(freeTimeBase, day, sh, sm),
			EndTime:   at(freeTimeBase, day, eh, em),
			IsFixed:   true,
		}
	}

	tests := []struct {
		name  string
		fixed []model.ScheduleBlock
		day   int // day under inspection
		want  []Slot
	}{
		{
			name:  "activity inside the window splits it",
			fixed: []model.ScheduleBlock{fixed(1, 9, 0, 10, 0)},
			day:   1,
			want: []Slot{
				{Start: at(freeTimeBase, 1, 8, 0), Hours: 1},
				{Start: at(freeTimeBase, 1, 10, 0), Hours: 12},
			},
		},
		{
			name:  "activity clipping the leading edge shortens the window",
			fixed: []model.ScheduleBlock{fixed(1, 7, 0, 9, 30)},
			day:   1,
			want:  []Slot{{Start: at(freeTimeBase, 1, 9, 30), Hours: 12.5}},
		},
		{
			name:  "activity covering the whole window removes it",
			fixed: []model.ScheduleBlock{fixed(1, 7, 0, 23, 0)},
			day:   1,
			want:  nil,
		},
		{
			name:  "residue under a quarter hour is discarded",
			fixed: []model.ScheduleBlock{fixed(1, 8, 0, 21, 50)},
			day:   1,
			want:  nil,
		},
		{
			name:  "sequential subtraction carries remaining pieces",
			fixed: []model.ScheduleBlock{fixed(1, 9, 0, 10, 0), fixed(1, 12, 0, 14, 0)},
			day:   1,
			want: []Slot{
				{Start: at(freeTimeBase, 1, 8, 0), Hours: 1},
				{Start: at(freeTimeBase, 1, 10, 0), Hours: 2},
				{Start: at(freeTimeBase, 1, 14, 0), Hours: 8},
			},
		},
		{
			name:  "activity on another calendar day leaves the window alone",
			fixed: []model.ScheduleBlock{fixed(3, 9, 0, 10, 0)},
			day:   1,
			want:  []Slot{{Start: at(freeTimeBase, 1, 8, 0), Hours: 14}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := p.FreeSlots(freeTimeBase, tc.fixed)

			var daySlots []Slot
			for _, s := range slots {
				if s.Start.Day() == at(freeTimeBase, tc.day, 8, 0).Day() {
					daySlots = append(daySlots, s)
				}
			}

			if len(daySlots) != len(tc.want) {
				t.Fatalf("day %d: got %d slots (%v), want %d", tc.day, len(daySlots), daySlots, len(tc.want))
			}
			for i, want := range tc.want {
				if !daySlots[i].Start.Equal(want.Start) || daySlots[i].Hours != want.Hours {
					t.Errorf("slot %d = {%v %.2f}, want {%v %.2f}",
						i, daySlots[i].Start, daySlots[i].Hours, want.Start, want.Hours)
				}
			}
		})
	}
}

func TestFreeSlotsChronological(t *testing.T) {
	p := New(DefaultConfig(), nil, nil)

	slots := p.FreeSlots(freeTimeBase, []model.ScheduleBlock{
		{StartTime: at(freeTimeBase, 2, 9, 0), EndTime: at(freeTimeBase, 2, 10, 0), IsFixed: true},
		{StartTime: at(freeTimeBase, 5, 13, 0), EndTime: at(freeTimeBase, 5, 15, 0), IsFixed: true},
	})

	for i := 1; i < len(slots); i++ {
		if !slots[i].Start.After(slots[i-1].Start) {
			t.Fatalf("slots out of order at %d: %v then %v", i, slots[i-1].Start, slots[i].Start)
		}
	}
}
