package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/noah-isme/agency-dashboard-api/api/swagger"
)

// @title Agency Dashboard API
// @version 1.0.0
// @description Client, weekly scope and post tracking for a social media agency.
// @BasePath /api/v1
// @schemes http

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
