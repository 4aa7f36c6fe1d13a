package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"

	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/container"
	"github.com/monevo-app/monevo-api/internal/router"
)

func main() {
	// local runs load .env, on Lambda the environment comes from the function
	_ = godotenv.Load()

	c := container.New()
	mux := router.New(c)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.NewV2(mux)
		lambda.Start(adapter.ProxyWithContextV2)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().WithField("port", port).Info("API listening")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		config.Logger().WithError(err).Fatal("server stopped")
	}
}
