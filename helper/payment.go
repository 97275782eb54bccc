package helper

import (
	"cruise_manager/constants"
	"cruise_manager/database"
	"cruise_manager/logger"
	"cruise_manager/metrics"
	"cruise_manager/model"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var paymentScheduler gocron.Scheduler

// ExpirePendingPayments fails PENDING payments created before now-ttl.
func ExpirePendingPayments(ttl time.Duration) (int64, error) {
	reason := "payment expired before completion"
	res := database.DB.Model(&model.Payment{}).
		Where("status = ? AND created_at < ?", constants.PaymentPending, time.Now().Add(-ttl)).
		Updates(map[string]interface{}{
			"status":        constants.PaymentFailed,
			"error_message": reason,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		metrics.Payments.WithLabelValues(constants.PaymentFailed).Add(float64(res.RowsAffected))
	}
	return res.RowsAffected, nil
}

func StartPaymentScheduler(ttl time.Duration) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			n, err := ExpirePendingPayments(ttl)
			if err != nil {
				logger.Error("expire pending payments", "error", err)
				return
			}
			if n > 0 {
				logger.Info("expired pending payments", "count", n)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	paymentScheduler = s
	s.Start()
	logger.Info("payment expiry scheduler started", "ttl", ttl.String())
	return nil
}

func StopPaymentScheduler() {
	if paymentScheduler == nil {
		return
	}
	if err := paymentScheduler.Shutdown(); err != nil {
		logger.Warn("payment scheduler shutdown", "error", err)
	}
}
