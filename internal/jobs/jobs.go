package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Runner — набор фоновых задач. Каждая задача — один проход:
// сходить в API, дописать строку-другую в свой журнал. Ошибки
// логируются и не ретраятся: следующий запуск сделает планировщик.
type Runner struct {
	api *APIClient
	log ports.Logger

	heartbeatLog *FileLog
	restockLog   *FileLog
	reportLog    *FileLog
	reminderLog  *FileLog

	reminderWindow    time.Duration
	reminderMaxOrders int
}

// RunnerConfig — параметры набора задач.
type RunnerConfig struct {
	LogDir            string
	ReminderWindow    time.Duration
	ReminderMaxOrders int
}

// NewRunner — конструктор; создаёт каталог журналов.
func NewRunner(api *APIClient, cfg RunnerConfig, log ports.Logger) (*Runner, error) {
	r := &Runner{
		api:               api,
		log:               log,
		reminderWindow:    cfg.ReminderWindow,
		reminderMaxOrders: cfg.ReminderMaxOrders,
	}
	if r.reminderWindow <= 0 {
		r.reminderWindow = 7 * 24 * time.Hour
	}
	if r.reminderMaxOrders <= 0 {
		r.reminderMaxOrders = 100
	}

	var err error
	if r.heartbeatLog, err = NewFileLog(cfg.LogDir, "heartbeat.log"); err != nil {
		return nil, err
	}
	if r.restockLog, err = NewFileLog(cfg.LogDir, "low_stock.log"); err != nil {
		return nil, err
	}
	if r.reportLog, err = NewFileLog(cfg.LogDir, "reports.log"); err != nil {
		return nil, err
	}
	if r.reminderLog, err = NewFileLog(cfg.LogDir, "reminders.log"); err != nil {
		return nil, err
	}
	return r, nil
}

// Heartbeat — проверяет живость API и дописывает строку вида
// «DD/MM/YYYY-HH:MM:SS CRM is alive - API endpoint: responsive».
func (r *Runner) Heartbeat(ctx context.Context) error {
	stamp := time.Now().Format("02/01/2006-15:04:05")

	status := "responsive"
	if err := r.api.Ping(ctx); err != nil {
		status = fmt.Sprintf("error: %v", err)
		r.log.Warnf(ctx, "heartbeat: api ping failed: %v", err)
	}

	line := fmt.Sprintf("%s CRM is alive - API endpoint: %s", stamp, status)
	if err := r.heartbeatLog.Append(line); err != nil {
		r.log.Errorf(ctx, "heartbeat: append log: %v", err)
		return err
	}
	return nil
}

// LowStockSweep — дергает пополнение товаров с низким остатком
// и журналирует сообщение результата.
func (r *Runner) LowStockSweep(ctx context.Context) error {
	result, err := r.api.RestockLowStock(ctx)
	if err != nil {
		r.log.Errorf(ctx, "low-stock sweep: restock call failed: %v", err)
		return err
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	if err := r.restockLog.Append(fmt.Sprintf("%s - %s", stamp, result.Message)); err != nil {
		r.log.Errorf(ctx, "low-stock sweep: append log: %v", err)
		return err
	}
	if !result.Success {
		r.log.Warnf(ctx, "low-stock sweep finished with failure: %s", result.Message)
	}
	return nil
}

// WeeklyReport — сводка «клиенты / заказы / выручка» одной строкой.
func (r *Runner) WeeklyReport(ctx context.Context) error {
	summary, err := r.api.ReportSummary(ctx)
	if err != nil {
		r.log.Errorf(ctx, "weekly report: summary call failed: %v", err)
		return err
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %s revenue",
		stamp, summary.Customers, summary.Orders, summary.Revenue.String())
	if err := r.reportLog.Append(line); err != nil {
		r.log.Errorf(ctx, "weekly report: append log: %v", err)
		return err
	}
	return nil
}

// OrderReminders — журналирует свежие заказы (одна строка на заказ,
// с email клиента) и итоговую строку с их количеством.
func (r *Runner) OrderReminders(ctx context.Context) error {
	since := time.Now().Add(-r.reminderWindow)
	orders, err := r.api.RecentOrders(ctx, since, r.reminderMaxOrders)
	if err != nil {
		r.log.Errorf(ctx, "order reminders: orders call failed: %v", err)
		return err
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	lines := make([]string, 0, len(orders)+1)
	for _, order := range orders {
		email := ""
		customer, cErr := r.api.Customer(ctx, order.CustomerID)
		if cErr != nil {
			r.log.Warnf(ctx, "order reminders: customer lookup failed id=%s err=%v", order.CustomerID, cErr)
		} else {
			email = customer.Email
		}
		lines = append(lines, fmt.Sprintf("[%s] Order ID: %s, Customer Email: %s, Order Date: %s",
			stamp, order.ID, email, order.OrderDate.Format("2006-01-02 15:04:05")))
	}
	lines = append(lines, fmt.Sprintf("Order reminders processed! Found %d recent orders.", len(orders)))

	if err := r.reminderLog.Append(lines...); err != nil {
		r.log.Errorf(ctx, "order reminders: append log: %v", err)
		return err
	}
	return nil
}
