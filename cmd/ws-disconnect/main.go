// Package main implements the WebSocket disconnect handler. It removes
// the per-slug connection records written by the connect handler.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	dbClient         *dynamodb.Client
	connectionsTable string
)

func init() {
	connectionsTable = os.Getenv("CONNECTIONS_TABLE")
	if connectionsTable == "" {
		log.Fatal("FATAL: CONNECTIONS_TABLE must be set")
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("Unable to load SDK config, %v", err)
	}
	dbClient = dynamodb.NewFromConfig(awsCfg)
}

func handler(ctx context.Context, req events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := req.RequestContext.ConnectionID

	// One connection watches exactly one slug, so the GSI lookup
	// returns at most one record.
	result, err := dbClient.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(connectionsTable),
		IndexName:              aws.String("GSI1"),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "CONN#" + connectionID},
		},
	})
	if err != nil {
		log.Printf("ERROR: Failed to look up connection %s: %v", connectionID, err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	for _, item := range result.Items {
		pk, ok := item["PK"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		sk, ok := item["SK"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		_, err := dbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(connectionsTable),
			Key: map[string]types.AttributeValue{
				"PK": pk,
				"SK": sk,
			},
		})
		if err != nil {
			log.Printf("ERROR: Failed to delete connection record %s/%s: %v", pk.Value, sk.Value, err)
		}
	}

	log.Printf("Connection %s removed", connectionID)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	lambda.Start(handler)
}
