package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
)

func main() {
	// инициализировать параметры запуска - режим, запрос, файл
	appParam, err := parser.InitAppMode(os.Args)
	if err != nil {
		log.Printf("Problem parsing arguments: %v", err)
		os.Exit(1)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// запуск приложения в указанном режиме
	switch appParam.Mode {
	case model.ModeLocal:
		err = appmode.RunLocal(appParam, os.Stdout)
	case model.ModeRemote:
		err = appmode.RunRemote(ctx, appParam, os.Stdout)
	case model.ModeServer:
		err = appmode.RunServer(ctx, appParam)
	}

	if err != nil {
		log.Printf("Application error: %v", err)
		stop()
		os.Exit(2)
	}
}
