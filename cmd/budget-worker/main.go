package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/container"
)

// The worker sweeps every user's monthly budget and files the 80% and 100%
// alerts. On AWS it runs from a schedule rule, locally it is a one-shot.
func main() {
	_ = godotenv.Load()

	c := container.New()
	scanner := c.NotificationContainer.Scanner

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(func(ctx context.Context) error {
			return scanner.Run(ctx)
		})
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scanner.Run(ctx); err != nil {
		config.Logger().WithError(err).Fatal("budget scan failed")
	}
}
