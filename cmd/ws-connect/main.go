// Package main implements the WebSocket connect handler. Clients open
// a socket with the slug they want to watch; the connection is stored
// keyed by slug so the broadcast Lambda can fan page events out to it.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/supabase-community/supabase-go"
)

var (
	dbClient         *dynamodb.Client
	supabaseClient   *supabase.Client
	connectionsTable string
)

func init() {
	connectionsTable = os.Getenv("CONNECTIONS_TABLE")
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_SERVICE_ROLE_KEY")

	if connectionsTable == "" {
		log.Fatal("FATAL: CONNECTIONS_TABLE must be set")
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("Unable to load SDK config, %v", err)
	}
	dbClient = dynamodb.NewFromConfig(awsCfg)

	// Token validation is optional: published pages are public, so an
	// anonymous watcher is allowed. A Supabase project enables it.
	if supabaseURL != "" && supabaseKey != "" {
		client, err := supabase.NewClient(supabaseURL, supabaseKey, nil)
		if err != nil {
			log.Fatalf("Unable to create Supabase client: %v", err)
		}
		supabaseClient = client
	}
}

func handler(ctx context.Context, req events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	slug, ok := req.QueryStringParameters["slug"]
	if !ok || slug == "" {
		log.Println("WARN: Connection request missing slug.")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest}, nil
	}

	userID := "anonymous"
	if token := req.QueryStringParameters["token"]; token != "" && supabaseClient != nil {
		user, err := supabaseClient.Auth.WithToken(token).GetUser()
		if err != nil {
			log.Printf("ERROR: Invalid token provided. %v", err)
			return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized}, nil
		}
		userID = user.ID.String()
	}

	connectionID := req.RequestContext.ConnectionID
	// TTL cleans up connections that never disconnect cleanly.
	expireAt := time.Now().Add(2 * time.Hour).Unix()

	_, err := dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(connectionsTable),
		Item: map[string]types.AttributeValue{
			"PK":       &types.AttributeValueMemberS{Value: "SLUG#" + slug},
			"SK":       &types.AttributeValueMemberS{Value: "CONN#" + connectionID},
			"GSI1PK":   &types.AttributeValueMemberS{Value: "CONN#" + connectionID}, // for disconnect lookup
			"GSI1SK":   &types.AttributeValueMemberS{Value: "SLUG#" + slug},
			"UserID":   &types.AttributeValueMemberS{Value: userID},
			"expireAt": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expireAt)},
		},
	})
	if err != nil {
		log.Printf("ERROR: Failed to save connection to DynamoDB: %v", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}, nil
	}

	log.Printf("Connection %s watching slug %s (user %s)", connectionID, slug, userID)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	lambda.Start(handler)
}
