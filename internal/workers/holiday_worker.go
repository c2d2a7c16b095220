package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/repositories"
	"github.com/shiftline/shiftline/pkg/logger"
)

// HolidaySyncWorker refreshes the holidays table from a public holiday
// feed on an interval. The feed is a JSON object of ISO date -> name.
type HolidaySyncWorker struct {
	*BaseWorker
	feedURL     string
	interval    time.Duration
	holidayRepo *repositories.HolidayRepository
	httpClient  *http.Client
}

// NewHolidaySyncWorker creates a new holiday sync worker
func NewHolidaySyncWorker(workerID, feedURL string, interval time.Duration, holidayRepo *repositories.HolidayRepository) *HolidaySyncWorker {
	return &HolidaySyncWorker{
		BaseWorker:  NewBaseWorker(workerID),
		feedURL:     feedURL,
		interval:    interval,
		holidayRepo: holidayRepo,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Start begins the holiday sync loop. The first sync runs immediately,
// subsequent syncs run on the configured interval.
func (w *HolidaySyncWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Holiday sync worker %s started", w.WorkerID)

	if err := w.sync(ctx); err != nil {
		logger.WithError(err).Errorf("Holiday sync worker %s initial sync failed", w.WorkerID)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Holiday sync worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Holiday sync worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			if err := w.sync(ctx); err != nil {
				logger.WithError(err).Errorf("Holiday sync worker %s sync failed", w.WorkerID)
			}
		}
	}
}

// sync fetches the feed and upserts every holiday it names
func (w *HolidaySyncWorker) sync(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.feedURL, nil)
	if err != nil {
		return fmt.Errorf("error building holiday feed request: %v", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error fetching holiday feed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("holiday feed returned status %d", resp.StatusCode)
	}

	// date -> holiday name
	var feed map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return fmt.Errorf("error decoding holiday feed: %v", err)
	}

	synced := 0
	for date, name := range feed {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			logger.Warnf("Holiday feed entry %q has an invalid date, skipping", date)
			continue
		}

		holiday := models.NewHoliday(name, int(parsed.Month()), parsed.Day())
		if err := w.holidayRepo.CreateOrUpdate(holiday); err != nil {
			return fmt.Errorf("error upserting holiday %s: %v", date, err)
		}
		synced++
	}

	logger.Infof("Holiday sync worker %s synced %d holidays", w.WorkerID, synced)
	return nil
}
