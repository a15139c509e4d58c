package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mfcayala/mpc-court/internal/events"
	"github.com/mfcayala/mpc-court/internal/notifier"
	"github.com/mfcayala/mpc-court/internal/worker"
	"github.com/mfcayala/mpc-court/pkg/config"
	"github.com/mfcayala/mpc-court/pkg/mq"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())
	logger := must(zap.NewProduction())
	defer logger.Sync()

	cons := must(mq.NewConsumer(cfg.RabbitURL, cfg.ReservationExchange, cfg.NotifyQueue,
		[]string{events.RKReservationCreated, events.RKReservationCancelled}))
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.New(cons, notifier.NewConsole(), logger)
	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Fatal("consumer", zap.Error(err))
		}
	}()
	logger.Info("notifier started", zap.String("queue", cfg.NotifyQueue))

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	logger.Info("stopped")
}
