package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"study-planner/internal/config"
	"study-planner/internal/notify"
	"study-planner/internal/planner"
	"study-planner/internal/repository"
	"study-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	blockRepo := repository.NewBlockRepository(db)

	engine := planner.New(planner.Config{
		DayStartHour:   cfg.DayStartHour,
		DayEndHour:     cfg.DayEndHour,
		HorizonDays:    cfg.HorizonDays,
		MinSlotHours:   cfg.MinSlotHours,
		UrgencyHorizon: cfg.UrgencyHorizon,
		PriorityFactor: cfg.PriorityFactor,
	}, taskRepo, blockRepo)

	subjectSvc := service.NewSubjectService(subjectRepo, taskRepo)
	reportSvc := service.NewReportService(engine, taskRepo, subjectSvc)

	scheduler := service.NewSchedulerService(time.Local)

	if _, err := scheduler.ScheduleDaily(cfg.RegenerateAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		regenerateAll(jobCtx, userRepo, engine)
	}); err != nil {
		log.Fatalf("schedule regeneration: %v", err)
	}

	if cfg.TelegramToken != "" && cfg.ReportInterval > 0 {
		notifier, err := notify.New(cfg.TelegramToken, userRepo, reportSvc)
		if err != nil {
			log.Fatalf("notifier: %v", err)
		}
		if _, err := scheduler.ScheduleInterval(cfg.ReportInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := notifier.SendWeeklyReports(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("report: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule reports: %v", err)
		}
	} else {
		log.Println("[info] telegram reports disabled")
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Study planner started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}

// regenerateAll rebuilds every user's flexible schedule. Each user is
// regenerated independently; a failure for one user does not stop the rest.
func regenerateAll(ctx context.Context, users *repository.UserRepository, engine *planner.Planner) {
	all, err := users.ListAll(ctx)
	if err != nil {
		log.Printf("[warn] list users: %v", err)
		return
	}
	for _, user := range all {
		if err := engine.GenerateSchedule(ctx, user.ID); err != nil {
			log.Printf("[warn] regenerate user %d: %v", user.ID, err)
			continue
		}
		unscheduled, err := engine.UnscheduledTasks(ctx, user.ID)
		if err != nil {
			log.Printf("[warn] unscheduled query user %d: %v", user.ID, err)
			continue
		}
		if len(unscheduled) > 0 {
			log.Printf("[warn] user %d: %d tasks could not be scheduled", user.ID, len(unscheduled))
		}
	}
}
