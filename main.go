package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/config"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/store"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/web"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	cfg := config.GetConfig()
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("bad log level")
	}
	log.SetLevel(level)

	open := func() (*store.Conn, error) { return store.Open(cfg) }
	app := web.NewServer(cfg, open, log.StandardLogger()).App()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	fields := log.Fields{"addr": cfg.ListenAddr, "driver": cfg.StoreDriver, "pushdown": cfg.FilterPushdown}
	if cfg.StoreDriver == config.DriverPinot {
		fields["broker"] = cfg.BrokerURL()
	}
	log.WithFields(fields).Info("dashboard listening")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("listen")
	}
}
