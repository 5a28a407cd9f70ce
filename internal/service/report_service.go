package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"study-planner/internal/model"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
)

// ReportService builds human-readable weekly summaries from the aggregated
// status buckets.
type ReportService struct {
	planner  *planner.Planner
	tasks    *repository.TaskRepository
	subjects *SubjectService
}

func NewReportService(p *planner.Planner, tasks *repository.TaskRepository, subjects *SubjectService) *ReportService {
	return &ReportService{planner: p, tasks: tasks, subjects: subjects}
}

// WeeklyReport renders the status summary for the selected week as
// Telegram-flavored HTML.
func (s *ReportService) WeeklyReport(ctx context.Context, userID uint, now time.Time, offset planner.WeekOffset) (string, error) {
	summary, err := s.planner.WeeklyStatus(ctx, userID, now, offset)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	if offset == planner.PreviousWeek {
		builder.WriteString("📊 <b>Weekly report</b>\n")
	} else {
		builder.WriteString("📊 <b>Weekly progress</b>\n")
	}
	builder.WriteString(fmt.Sprintf("🗓 %s – %s\n\n",
		summary.WeekStart.Format("Jan 02"), summary.WeekEnd.Format("Jan 02, 2006")))

	builder.WriteString(fmt.Sprintf("✅ Completed: %d\n", len(summary.Completed)))
	builder.WriteString(fmt.Sprintf("⏳ Pending: %d\n", len(summary.Pending)))
	builder.WriteString(fmt.Sprintf("⚠️ Missed: %d\n", len(summary.Missed)))
	builder.WriteString(fmt.Sprintf("📈 Completion rate: %d%%\n", summary.CompletionRate))

	writeBucket(&builder, "✅ <b>Completed</b>", summary.Completed)
	writeBucket(&builder, "⏳ <b>Pending</b>", summary.Pending)
	writeBucket(&builder, "⚠️ <b>Missed</b>", summary.Missed)

	upcoming, err := s.tasks.ListByStatus(ctx, userID, model.StatusPending)
	if err != nil {
		return "", err
	}
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	if len(upcoming) > 0 {
		builder.WriteString("\n🔜 <b>Upcoming tasks</b>\n")
		for _, task := range upcoming {
			builder.WriteString(fmt.Sprintf("• %s — due %s (%.1fh)\n",
				html.EscapeString(strings.TrimSpace(task.Name)),
				task.DueDate.Format("2006-01-02"),
				task.RequiredHours))
		}
	}

	loads, err := s.subjects.Breakdown(ctx, userID)
	if err != nil {
		return "", err
	}
	var busy []SubjectLoad
	for _, load := range loads {
		if load.TasksRemaining > 0 {
			busy = append(busy, load)
		}
	}
	if len(busy) > 0 {
		builder.WriteString("\n📚 <b>Subjects</b>\n")
		for _, load := range busy {
			builder.WriteString(fmt.Sprintf("• %s: %d tasks, %.1fh remaining\n",
				html.EscapeString(load.Subject.Name), load.TasksRemaining, load.HoursRemaining))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func writeBucket(builder *strings.Builder, header string, tasks []model.Task) {
	if len(tasks) == 0 {
		return
	}
	builder.WriteString("\n" + header + "\n")
	for _, task := range tasks {
		builder.WriteString(fmt.Sprintf("• %s (due %s)\n",
			html.EscapeString(strings.TrimSpace(task.Name)),
			task.DueDate.Format("2006-01-02")))
	}
}
