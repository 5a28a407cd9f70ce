package planner

import (
	"context"
	"testing"
	"time"

	"study-planner/internal/model"
)

func blocksForTask(t *testing.T, p *Planner, userID, taskID uint) []model.ScheduleBlock {
	t.Helper()
	all, err := p.blocks.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list blocks: %v", err)
	}
	var out []model.ScheduleBlock
	for _, b := range all {
		if b.TaskID != nil && *b.TaskID == taskID {
			out = append(out, b)
		}
	}
	return out
}

func allocatedHours(blocks []model.ScheduleBlock) float64 {
	var total float64
	for _, b := range blocks {
		total += b.EndTime.Sub(b.StartTime).Hours()
	}
	return total
}

func TestGenerateScheduleAvoidsFixedBlocks(t *testing.T) {
	p, tasks, blocks := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	fixed := mustCreateBlock(t, blocks, model.ScheduleBlock{
		UserID:       1,
		ActivityName: "Lecture",
		StartTime:    at(now, 1, 9, 0),
		EndTime:      at(now, 1, 10, 0),
		IsFixed:      true,
	})
	task := mustCreateTask(t, tasks, model.Task{
		UserID:        1,
		Name:          "Essay",
		DueDate:       now.AddDate(0, 0, 3),
		RequiredHours: 1.5,
	})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	got := blocksForTask(t, p, 1, task.ID)
	if allocatedHours(got) != 1.5 {
		t.Fatalf("allocated %.2f hours, want 1.5", allocatedHours(got))
	}
	for _, b := range got {
		if overlaps(b.StartTime, b.EndTime, fixed.StartTime, fixed.EndTime) {
			t.Errorf("block [%v, %v) overlaps the fixed activity", b.StartTime, b.EndTime)
		}
		if b.StartTime.Hour() < 8 || b.EndTime.Hour() > 22 ||
			(b.EndTime.Hour() == 22 && b.EndTime.Minute() > 0) {
			t.Errorf("block [%v, %v) escapes the daily window", b.StartTime, b.EndTime)
		}
		if b.StartTime.Day() != b.EndTime.Day() {
			t.Errorf("block [%v, %v) spans a day boundary", b.StartTime, b.EndTime)
		}
	}
}

func TestGenerateScheduleNoOverlappingBlocks(t *testing.T) {
	p, tasks, _ := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	mustCreateTask(t, tasks, model.Task{UserID: 1, Name: "A", DueDate: now.AddDate(0, 0, 2), RequiredHours: 20})
	mustCreateTask(t, tasks, model.Task{UserID: 1, Name: "B", DueDate: now.AddDate(0, 0, 4), RequiredHours: 16})
	mustCreateTask(t, tasks, model.Task{UserID: 1, Name: "C", DueDate: now.AddDate(0, 0, 9), RequiredHours: 3.5})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	all, err := p.blocks.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list blocks: %v", err)
	}
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if overlaps(all[i].StartTime, all[i].EndTime, all[j].StartTime, all[j].EndTime) {
				t.Errorf("blocks %d and %d overlap: [%v, %v) vs [%v, %v)",
					i, j, all[i].StartTime, all[i].EndTime, all[j].StartTime, all[j].EndTime)
			}
		}
	}
}

func TestGenerateScheduleFlagsInsufficientTime(t *testing.T) {
	p, tasks, _ := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	// Capacity over the horizon is 7 days * 14h = 98h.
	task := mustCreateTask(t, tasks, model.Task{
		UserID:        1,
		Name:          "Thesis",
		DueDate:       now.AddDate(0, 0, 5),
		RequiredHours: 200,
	})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	reloaded, err := tasks.FindByID(ctx, 1, task.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.Status != model.StatusInsufficientTime {
		t.Fatalf("status = %q, want %q", reloaded.Status, model.StatusInsufficientTime)
	}

	// Partial blocks are kept, not rolled back.
	got := blocksForTask(t, p, 1, task.ID)
	if len(got) == 0 {
		t.Fatal("partial allocation was rolled back")
	}
	if allocatedHours(got) != 98 {
		t.Errorf("allocated %.2f hours, want the full 98h capacity", allocatedHours(got))
	}
}

func TestGenerateScheduleRegenerationIsStable(t *testing.T) {
	p, tasks, blocks := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	mustCreateBlock(t, blocks, model.ScheduleBlock{
		UserID:       1,
		ActivityName: "Standup",
		StartTime:    at(now, 1, 10, 0),
		EndTime:      at(now, 1, 11, 0),
		IsFixed:      true,
	})
	task := mustCreateTask(t, tasks, model.Task{
		UserID:        1,
		Name:          "Essay",
		DueDate:       now.AddDate(0, 0, 3),
		RequiredHours: 6,
	})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("first generation: %v", err)
	}
	first := allocatedHours(blocksForTask(t, p, 1, task.ID))

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("second generation: %v", err)
	}
	second := allocatedHours(blocksForTask(t, p, 1, task.ID))

	if first != second {
		t.Errorf("allocated hours changed across regeneration: %.2f then %.2f", first, second)
	}

	// Flexible blocks are replaced, not accumulated.
	got := blocksForTask(t, p, 1, task.ID)
	if allocatedHours(got) != 6 {
		t.Errorf("allocated %.2f hours after two runs, want 6", allocatedHours(got))
	}
}

func TestGenerateScheduleNoCapacity(t *testing.T) {
	p, tasks, blocks := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	// Cover every day of the horizon completely.
	for d := 1; d <= 7; d++ {
		mustCreateBlock(t, blocks, model.ScheduleBlock{
			UserID:       1,
			ActivityName: "Bootcamp",
			StartTime:    at(now, d, 8, 0),
			EndTime:      at(now, d, 22, 0),
			IsFixed:      true,
		})
	}
	task := mustCreateTask(t, tasks, model.Task{
		UserID:        1,
		Name:          "Reading",
		DueDate:       now.AddDate(0, 0, 3),
		RequiredHours: 2,
	})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	// With no slots at all the task stays pending with zero blocks and is
	// surfaced through the unscheduled query instead of being flagged.
	reloaded, err := tasks.FindByID(ctx, 1, task.ID)
	if err != nil {
		t.Fatalf("reload task: %v", err)
	}
	if reloaded.Status != model.StatusPending {
		t.Errorf("status = %q, want %q", reloaded.Status, model.StatusPending)
	}
	unscheduled, err := p.UnscheduledTasks(ctx, 1)
	if err != nil {
		t.Fatalf("UnscheduledTasks: %v", err)
	}
	if len(unscheduled) != 1 || unscheduled[0].ID != task.ID {
		t.Errorf("unscheduled = %v, want just task %d", unscheduled, task.ID)
	}
}

func TestPartiallyAllocatedTaskBecomesInvisible(t *testing.T) {
	p, tasks, blocks := newTestPlanner(t)
	ctx := context.Background()
	now := time.Now()

	// Leave exactly one hour of capacity on day 1 and none afterwards.
	mustCreateBlock(t, blocks, model.ScheduleBlock{
		UserID:       1,
		ActivityName: "Seminar",
		StartTime:    at(now, 1, 9, 0),
		EndTime:      at(now, 1, 22, 0),
		IsFixed:      true,
	})
	for d := 2; d <= 7; d++ {
		mustCreateBlock(t, blocks, model.ScheduleBlock{
			UserID:       1,
			ActivityName: "Bootcamp",
			StartTime:    at(now, d, 8, 0),
			EndTime:      at(now, d, 22, 0),
			IsFixed:      true,
		})
	}
	task := mustCreateTask(t, tasks, model.Task{
		UserID:        1,
		Name:          "Project",
		DueDate:       now.AddDate(0, 0, 3),
		RequiredHours: 5,
	})

	if err := p.GenerateSchedule(ctx, 1); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	got := blocksForTask(t, p, 1, task.ID)
	if allocatedHours(got) != 1 {
		t.Fatalf("allocated %.2f hours, want the 1h partial", allocatedHours(got))
	}

	// Deliberate quirk kept from the original behavior: after a partial
	// allocation the task is neither pending nor unscheduled, so both
	// follow-up mechanisms miss it.
	pending, err := tasks.ListByStatus(ctx, 1, model.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("flagged task still pending: %v", pending)
	}
	unscheduled, err := p.UnscheduledTasks(ctx, 1)
	if err != nil {
		t.Fatalf("UnscheduledTasks: %v", err)
	}
	if len(unscheduled) != 0 {
		t.Errorf("flagged task reported unscheduled: %v", unscheduled)
	}
}
