package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/notification"
	"slotwise/services/tasks"
)

// InitConfirmationWorker runs the async worker that delivers booking
// confirmations in the background. The reservation path itself stays
// synchronous; only the follow-up notification goes through the queue.
func InitConfirmationWorker(notifSvc notification.NotificationService) {
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
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmed(notifSvc))

	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmed(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var booking models.Booking
		if err := json.Unmarshal(task.Payload(), &booking); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}
		if err := notifSvc.SendBookingConfirmation(ctx, booking); err != nil {
			log.Printf("[ConfirmationWorker] failed to deliver confirmation for booking %s: %v", booking.ID, err)
			return err
		}
		return nil
	}
}
