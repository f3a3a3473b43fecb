package main

import (
	"context"

	"investmentplanner/cmd"
	"investmentplanner/internal/logger"
	"investmentplanner/internal/util"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	lg := logger.New()
	ctx := logger.WithLogger(context.Background(), lg)

	cfg, err := util.LoadConfig("")
	if err != nil {
		lg.Fatal(err)
	}

	apiHandler, err := cmd.InitializeDependencies(ctx, *cfg)
	if err != nil {
		lg.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	handler := lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
