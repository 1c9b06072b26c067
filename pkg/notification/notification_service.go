package notification

import (
	"FoodWasteLogger/domain"
	"FoodWasteLogger/pkg/expiry"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	NotificationService interface {
		SendStartupAlert(ctx context.Context) bool
		ScheduleStartupAlert(delay time.Duration) *time.Timer
	}

	notificationService struct {
		expiryService expiry.ExpiryService
		notifiers     []Notifier
		horizon       int
	}
)

func NewNotificationService(expiryService expiry.ExpiryService, horizon int, notifiers ...Notifier) NotificationService {
	if horizon < 0 {
		horizon = domain.DefaultExpiryHorizon
	}
	return &notificationService{
		expiryService: expiryService,
		notifiers:     notifiers,
		horizon:       horizon,
	}
}

// SendStartupAlert delivers the expiry alert to every notifier and reports
// whether at least one of them succeeded. Nothing is sent when no item
// expires within the horizon. Errors and panics are logged, never returned.
func (s *notificationService) SendStartupAlert(ctx context.Context) (delivered bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Error in startup notification: %v", r)
			delivered = false
		}
	}()

	alert, err := s.expiryService.GetExpiryAlert(ctx, s.horizon)
	if err != nil {
		if errors.Is(err, domain.ErrNoExpiringItems) {
			log.Info(domain.MessageSuccessNoExpiringItems)
		} else {
			log.Errorf("Error in startup notification: %v", err)
		}
		return false
	}

	for _, n := range s.notifiers {
		if err := n.Notify(ctx, alert); err != nil {
			log.Errorf("Error in startup notification: %v", err)
			continue
		}
		delivered = true
	}

	return delivered
}

// ScheduleStartupAlert fires SendStartupAlert once after delay.
func (s *notificationService) ScheduleStartupAlert(delay time.Duration) *time.Timer {
	return time.AfterFunc(delay, func() {
		s.SendStartupAlert(context.Background())
	})
}
