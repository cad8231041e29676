// internal/app/task/broker.go
package task

import (
	"log/slog"
	"os"
	"time"

	"github.com/anzhiyu-c/arsip-app/internal/infra/storage"
	"github.com/anzhiyu-c/arsip-app/pkg/domain/repository"

	"github.com/robfig/cron/v3"
)

// Broker 是后台任务模块的核心协调者，负责注册与调度所有周期任务。
type Broker struct {
	cron     *cron.Cron
	logger   *slog.Logger
	provider storage.IStorageProvider
	docRepo  repository.DocumentRepository
}

// NewBroker 是 Broker 的构造函数。
func NewBroker(
	provider storage.IStorageProvider,
	docRepo repository.DocumentRepository,
) *Broker {
	slogHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(slogHandler).With("system", "task_broker")

	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(
			NewPanicRecoveryWrapper(logger),
			NewLoggingWrapper(logger),
			cron.DelayIfStillRunning(cron.DefaultLogger),
		),
	)

	return &Broker{
		cron:     c,
		logger:   logger,
		provider: provider,
		docRepo:  docRepo,
	}
}

// RegisterJobs 注册所有周期任务。
func (b *Broker) RegisterJobs() error {
	// 每天凌晨四点做一次孤儿对象扫描
	orphanScan := NewOrphanScanJob(b.provider, b.docRepo)
	if _, err := b.cron.AddJob("0 0 4 * * *", orphanScan); err != nil {
		return err
	}
	b.logger.Info("Registered cron job", "job_name", orphanScan.Name())
	return nil
}

// Start 启动 cron 调度器。
func (b *Broker) Start() {
	b.logger.Info("Starting cron scheduler...")
	b.cron.Start()
}

// Stop 优雅地停止 cron 调度器，等待执行中的任务完成。
func (b *Broker) Stop() {
	b.logger.Info("Stopping cron scheduler...")
	ctx := b.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		b.logger.Warn("Timed out waiting for running jobs to finish")
	}
}
