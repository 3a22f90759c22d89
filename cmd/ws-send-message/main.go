// Package main implements the WebSocket broadcast Lambda. Page events
// from the event bus are fanned out to every client watching the slug,
// which is how browser subscribers on other instances see a change.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwTypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	dynamoClient     *dynamodb.Client
	connectionsTable string
	wsEndpoint       string
)

// pageEventDetail is the EventBridge detail payload of a page event
type pageEventDetail struct {
	Type      string    `json:"type"`
	PageID    string    `json:"pageId"`
	Slug      string    `json:"slug"`
	SectionID string    `json:"sectionId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// clientMessage is what connected browsers receive
type clientMessage struct {
	Type      string `json:"type"`
	Slug      string `json:"slug"`
	PageID    string `json:"pageId"`
	SectionID string `json:"sectionId,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func init() {
	connectionsTable = os.Getenv("CONNECTIONS_TABLE")
	wsEndpoint = os.Getenv("WEBSOCKET_ENDPOINT")
	if connectionsTable == "" || wsEndpoint == "" {
		log.Fatal("FATAL: CONNECTIONS_TABLE and WEBSOCKET_ENDPOINT must be set")
	}

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	dynamoClient = dynamodb.NewFromConfig(cfg)
}

func newAPIGatewayClient() *apigatewaymanagementapi.Client {
	cfg, _ := config.LoadDefaultConfig(context.Background())
	return apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s", wsEndpoint))
	})
}

// connectionsForSlug lists the connection ids subscribed to a slug.
// Connections are stored as PK=SLUG#<slug>, SK=CONN#<id> by the
// connect handler.
func connectionsForSlug(ctx context.Context, slug string) ([]string, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(connectionsTable),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: fmt.Sprintf("SLUG#%s", slug)},
			":prefix": &types.AttributeValueMemberS{Value: "CONN#"},
		},
	}

	var connectionIDs []string
	paginator := dynamodb.NewQueryPaginator(dynamoClient, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query connections: %w", err)
		}
		for _, item := range page.Items {
			if sk, ok := item["SK"].(*types.AttributeValueMemberS); ok {
				connectionIDs = append(connectionIDs, sk.Value[len("CONN#"):])
			}
		}
	}
	return connectionIDs, nil
}

func removeStaleConnection(ctx context.Context, slug, connectionID string) {
	_, err := dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(connectionsTable),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("SLUG#%s", slug)},
			"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("CONN#%s", connectionID)},
		},
	})
	if err != nil {
		log.Printf("Failed to remove stale connection %s: %v", connectionID, err)
		return
	}
	log.Printf("Removed stale connection %s", connectionID)
}

func sendToConnection(ctx context.Context, apiClient *apigatewaymanagementapi.Client, slug, connectionID string, message []byte) error {
	_, err := apiClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionID),
		Data:         message,
	})
	if err != nil {
		var goneErr *apigwTypes.GoneException
		if errors.As(err, &goneErr) {
			// Stale connection; clean it up and move on.
			removeStaleConnection(ctx, slug, connectionID)
			return nil
		}
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func handler(ctx context.Context, event events.CloudWatchEvent) error {
	var detail pageEventDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		return fmt.Errorf("failed to decode event detail: %w", err)
	}
	if detail.Slug == "" {
		log.Printf("Ignoring event without slug: %s", event.DetailType)
		return nil
	}

	connectionIDs, err := connectionsForSlug(ctx, detail.Slug)
	if err != nil {
		return err
	}
	if len(connectionIDs) == 0 {
		return nil
	}

	message, err := json.Marshal(clientMessage{
		Type:      detail.Type,
		Slug:      detail.Slug,
		PageID:    detail.PageID,
		SectionID: detail.SectionID,
		Timestamp: detail.Timestamp.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal client message: %w", err)
	}

	apiClient := newAPIGatewayClient()
	var failures int
	for _, connectionID := range connectionIDs {
		if err := sendToConnection(ctx, apiClient, detail.Slug, connectionID, message); err != nil {
			log.Printf("Failed to notify connection %s: %v", connectionID, err)
			failures++
		}
	}

	log.Printf("Broadcast %s for slug %s to %d connections (%d failures)",
		detail.Type, detail.Slug, len(connectionIDs), failures)
	if failures == len(connectionIDs) {
		return fmt.Errorf("all %d deliveries failed for slug %s", failures, detail.Slug)
	}
	return nil
}

func main() {
	lambda.Start(handler)
}
