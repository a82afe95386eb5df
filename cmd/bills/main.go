package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-bills/internal/app"
	"github.com/fsdevblog/groph-bills/internal/config"
	"github.com/fsdevblog/groph-bills/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)
	if err := logger.SetLevel(l, conf.LogLevel); err != nil {
		l.WithError(err).Warn("invalid log level, using default")
	}

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
