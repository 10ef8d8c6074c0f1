package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/Gunvolt24/crm_backend/config"
	"github.com/Gunvolt24/crm_backend/internal/jobs"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/logger"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		panic(err)
	}
	defer func() { _ = cleanup() }()

	api := jobs.NewAPIClient(cfg.Jobs.APIBaseURL, cfg.Jobs.RequestTimeout)
	runner, err := jobs.NewRunner(api, jobs.RunnerConfig{
		LogDir:            cfg.Jobs.LogDir,
		ReminderWindow:    cfg.Jobs.ReminderWindow,
		ReminderMaxOrders: cfg.Jobs.ReminderMaxOrders,
	}, logg)
	if err != nil {
		logg.Errorf(ctx, "jobs runner init failed: %v", err)
		return
	}

	c := cron.New()
	schedule(ctx, c, logg, "heartbeat", cfg.Jobs.HeartbeatSpec, runner.Heartbeat)
	schedule(ctx, c, logg, "low-stock sweep", cfg.Jobs.LowStockSpec, runner.LowStockSweep)
	schedule(ctx, c, logg, "weekly report", cfg.Jobs.WeeklyReportSpec, runner.WeeklyReport)
	schedule(ctx, c, logg, "order reminders", cfg.Jobs.RemindersSpec, runner.OrderReminders)

	logg.Infof(ctx, "jobs scheduler starting (api=%s, logs=%s)", cfg.Jobs.APIBaseURL, cfg.Jobs.LogDir)
	c.Start()

	<-ctx.Done()
	logg.Infof(ctx, "shutdown requested, waiting running jobs")
	<-c.Stop().Done()
	logg.Infof(ctx, "jobs scheduler stopped")
}

// schedule — регистрирует задачу в cron; ошибки задач только логируются,
// повтор попытки делает следующий тик расписания.
func schedule(ctx context.Context, c *cron.Cron, log ports.Logger, name, spec string, fn func(context.Context) error) {
	_, err := c.AddFunc(spec, func() {
		if err := fn(ctx); err != nil {
			log.Warnf(ctx, "job %s failed: %v", name, err)
		}
	})
	if err != nil {
		log.Errorf(ctx, "job %s: bad schedule %q: %v", name, spec, err)
	}
}
