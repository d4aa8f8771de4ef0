// Tails the coaching event stream and writes every event to the structured
// log. Runs alongside the REST server as the audit-trail consumer.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"adaptive-coach-be/internal/config"
	"adaptive-coach-be/internal/pkg/logger"
	"adaptive-coach-be/pkg/events"
	pktNats "adaptive-coach-be/pkg/nats"
)

func main() {
	cfg := config.Load()

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	subscriber, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer subscriber.Close()

	err = subscriber.Subscribe(">", "coach-audit-trail", func(ctx context.Context, event events.Event) error {
		sysLogger.Info("AUDIT", event.EventType(), map[string]interface{}{
			"payload":     event.Payload(),
			"occurred_at": event.Timestamp(),
		})
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	log.Println("Audit worker running. Press Ctrl+C to stop.")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
