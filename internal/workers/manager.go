package workers

import (
	"context"
	"sync"
	"time"

	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/pkg/config"
	"github.com/shiftline/shiftline/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers     []Worker
	cfg         *config.Config
	holidayRepo *repositories.HolidayRepository
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(cfg *config.Config, holidayRepo *repositories.HolidayRepository) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:     make([]Worker, 0),
		cfg:         cfg,
		holidayRepo: holidayRepo,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// StartAll starts the configured workers. The holiday sync worker only
// runs when a feed URL is configured.
func (wm *WorkerManager) StartAll() error {
	if wm.cfg.Holidays.FeedURL != "" && wm.cfg.Holidays.SyncInterval > 0 {
		interval := time.Duration(wm.cfg.Holidays.SyncInterval) * time.Hour
		worker := NewHolidaySyncWorker("holiday-sync-1", wm.cfg.Holidays.FeedURL, interval, wm.holidayRepo)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	// Stop each worker
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).Errorf("Error stopping worker %s", worker.GetWorkerID())
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Errorf("Worker %s exited with error", worker.GetWorkerID())
		}
	}()
}
