package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mfcayala/mpc-court/internal/repository"
	"github.com/mfcayala/mpc-court/internal/schedule"
	"github.com/mfcayala/mpc-court/internal/service"
	"github.com/mfcayala/mpc-court/internal/transport/httpapi"
	"github.com/mfcayala/mpc-court/pkg/config"
	"github.com/mfcayala/mpc-court/pkg/db"
	"github.com/mfcayala/mpc-court/pkg/mq"
	"github.com/mfcayala/mpc-court/pkg/obs"
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

	shutdownTracer := obs.InitTracer("mpc-court")
	defer shutdownTracer(context.Background())

	// DB
	gdb := db.Open(cfg.PGDSN)
	resRepo := repository.NewReservationRepo(gdb)
	must(0, resRepo.Migrate())
	profRepo := repository.NewProfileRepo(gdb)
	must(0, profRepo.Migrate())

	// Publisher for reservation.* events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer pub.Close()

	rates := schedule.Rates{Hourly: cfg.HourlyRate, PerGuest: cfg.PerGuestRate}
	svc := service.NewBookingSvc(resRepo, profRepo, pub, schedule.DefaultRules(), rates, cfg.CourtCount, logger)
	sel := service.NewSelectionSvc(svc)

	h := httpapi.NewHandler(svc, sel, time.Duration(cfg.JWTExpireMin)*time.Minute)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: httpapi.NewRouter(h)}

	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("stopped")
}
