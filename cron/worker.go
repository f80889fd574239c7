package cron

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"mockview/config"
	"mockview/services/reservation"
)

// InitExpiryWorker runs the async worker that releases unpaid reservations
// once their TTL fires. The handler is idempotent: a reservation captured in
// the meantime is left alone.
func InitExpiryWorker(coordinator reservation.Coordinator, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationExpire, handleExpireTask(coordinator, logger))

	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ExpiryWorker] worker failed to start: %v", err)
		}
	}()
}

func handleExpireTask(coordinator reservation.Coordinator, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid expiry payload", zap.Error(err))
			return err
		}

		// Errors propagate so asynq retries transient store failures.
		if err := coordinator.ReleaseExpired(ctx, p.BookingID); err != nil {
			logger.Error("reservation expiry failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
