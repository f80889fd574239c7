package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"mockview/config"
)

// TypeReservationExpire is the task type for releasing unpaid reservations.
const TypeReservationExpire = "reservation:expire"

// ExpirePayload identifies the reservation to check.
type ExpirePayload struct {
	BookingID string `json:"bookingId"`
}

// ExpiryScheduler enqueues delayed release tasks, one per reservation. The
// delay is the pending-payment TTL: a reservation not captured within it is
// handed back to the pool.
type ExpiryScheduler struct {
	client *asynq.Client
	ttl    time.Duration
}

func NewExpiryScheduler(ttl time.Duration) *ExpiryScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &ExpiryScheduler{client: client, ttl: ttl}
}

func (s *ExpiryScheduler) ScheduleRelease(ctx context.Context, bookingID string) error {
	payload, err := json.Marshal(ExpirePayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("marshal expiry payload: %w", err)
	}
	task := asynq.NewTask(TypeReservationExpire, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(s.ttl)); err != nil {
		return fmt.Errorf("enqueue expiry task for booking %s: %w", bookingID, err)
	}
	return nil
}

func (s *ExpiryScheduler) Close() error {
	return s.client.Close()
}
