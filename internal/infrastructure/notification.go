package infrastructure

import (
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/yourusername/gifsync/internal/domain"
)

// NotificationService sends desktop notifications about finished passes
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
	runCmd func(name string, args ...string) error
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		config: config,
		logger: logger,
		runCmd: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Send sends a notification
func (n *NotificationService) Send(title, message string) error {
	if !n.config.Enabled {
		n.logger.Debug("Notifications disabled, skipping",
			zap.String("title", title),
			zap.String("message", message))
		return nil
	}

	var err error
	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification %q with title %q`, message, title)
		err = n.runCmd("osascript", "-e", script)
	case "notify-send":
		err = n.runCmd("notify-send", title, message)
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}

	if err != nil {
		n.logger.Error("Failed to send notification",
			zap.String("method", n.config.Method),
			zap.Error(err))
		return err
	}

	n.logger.Debug("Notification sent",
		zap.String("title", title),
		zap.String("message", message))
	return nil
}

// NotifyPassCompleted summarizes a finished pass
func (n *NotificationService) NotifyPassCompleted(run *domain.Run) {
	title := "GIF sync complete"
	message := fmt.Sprintf("%d new, %d failed, %d not found; %d/%d stored (%d%%)",
		run.Downloaded, run.Failed, run.NotFound, run.TotalStoredNow, run.CatalogSize, run.Coverage)
	if run.Unavailable != "" {
		message += "; unavailable: " + truncateString(run.Unavailable, 40)
	}
	_ = n.Send(title, message)
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
