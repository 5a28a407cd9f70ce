// Package notify delivers weekly reports over Telegram. It is outbound
// only; the engine has no interactive surface.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"study-planner/internal/planner"
	"study-planner/internal/repository"
	"study-planner/internal/service"
)

// Notifier sends rendered weekly reports to every user with a linked chat.
type Notifier struct {
	api     *tgbotapi.BotAPI
	users   *repository.UserRepository
	reports *service.ReportService
}

func New(token string, users *repository.UserRepository, reports *service.ReportService) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	log.Printf("[info] notifier authorized on account %s", api.Self.UserName)
	return &Notifier{api: api, users: users, reports: reports}, nil
}

// SendWeeklyReports renders and delivers the previous-week report to every
// user with a Telegram chat id. Delivery failures are logged per user and
// do not stop the loop.
func (n *Notifier) SendWeeklyReports(ctx context.Context) error {
	users, err := n.users.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	now := time.Now()
	for _, user := range users {
		if user.TelegramChatID == 0 {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		text, err := n.reports.WeeklyReport(ctx, user.ID, now, planner.PreviousWeek)
		if err != nil {
			log.Printf("[warn] report for user %d: %v", user.ID, err)
			continue
		}

		msg := tgbotapi.NewMessage(user.TelegramChatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		if _, err := n.api.Send(msg); err != nil {
			log.Printf("[warn] send report to chat %d: %v", user.TelegramChatID, err)
		}
	}
	return nil
}
