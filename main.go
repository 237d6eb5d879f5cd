package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kaamkar-app/kaamkar-lambda/internal/container"
	"github.com/kaamkar-app/kaamkar-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	// Harmless when the file is absent, e.g. on Lambda.
	_ = godotenv.Load()

	c := container.New()

	mux := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		NoteHandler:        c.NoteContainer.Handler,
		TodoHandler:        c.TodoContainer.Handler,
		PlannerHandler:     c.PlannerContainer.Handler,
		FinanceHandler:     c.FinanceContainer.Handler,
		GoalHandler:        c.GoalContainer.Handler,
		GymHandler:         c.GymContainer.Handler,
		AssistantHandler:   c.AssistantContainer.Handler,
		DiagnosticsHandler: c.DiagnosticsHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		chiLambda = chiadapter.New(mux.(*chi.Mux))
		lambda.Start(handler)
		return
	}

	// Local mode runs the nightly budget sweep in-process; on Lambda the
	// schedule belongs to an EventBridge rule instead.
	if err := c.Reconciler.Start(); err != nil {
		logrus.WithError(err).Fatal("failed to start budget reconciler")
	}
	defer c.Reconciler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("KaamKar API listening")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logrus.WithError(err).Fatal("server terminated")
	}
}
