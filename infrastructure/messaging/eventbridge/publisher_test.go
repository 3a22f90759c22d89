package eventbridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/events"
)

type fakePutEventsClient struct {
	inputs  []*awseventbridge.PutEventsInput
	outputs []*awseventbridge.PutEventsOutput
	err     error
}

func (f *fakePutEventsClient) PutEvents(ctx context.Context, params *awseventbridge.PutEventsInput, optFns ...func(*awseventbridge.Options)) (*awseventbridge.PutEventsOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	out := f.outputs[len(f.inputs)-1]
	return out, nil
}

// brokenEvent cannot be serialized, so the publisher must skip it.
type brokenEvent struct {
	events.BaseEvent
}

func (brokenEvent) MarshalJSON() ([]byte, error) {
	return nil, errors.New("not serializable")
}

func newPublisher(client putEventsClient, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, eventBusName: "pages-bus", logger: logger}
}

func TestPublishBatchSendsEntries(t *testing.T) {
	now := time.Now()
	client := &fakePutEventsClient{
		outputs: []*awseventbridge.PutEventsOutput{
			{Entries: []types.PutEventsResultEntry{{EventId: aws.String("1")}, {EventId: aws.String("2")}}},
		},
	}
	publisher := newPublisher(client, zap.NewNop())

	err := publisher.PublishBatch(context.Background(), []events.DomainEvent{
		events.NewPagePublished("p1", "home", now),
		events.NewSectionUpserted("p1", "home", "hero-title", false, now),
	})

	require.NoError(t, err)
	require.Len(t, client.inputs, 1)
	entries := client.inputs[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, events.TypePagePublished, aws.ToString(entries[0].DetailType))
	assert.Equal(t, events.TypeSectionUpserted, aws.ToString(entries[1].DetailType))
	assert.Equal(t, "pages-bus", aws.ToString(entries[0].EventBusName))
}

func TestPublishBatchFailureAttributedToSentEvent(t *testing.T) {
	now := time.Now()

	// The first event cannot be marshalled and is skipped, so the bus
	// result entries line up with the two events actually sent. The
	// failure of the second sent event must be logged against that
	// event, not against its neighbour in the input slice.
	broken := brokenEvent{BaseEvent: events.BaseEvent{Type: "page.broken", PageID: "p1", Timestamp: now}}
	okEvent := events.NewPagePublished("p1", "home", now)
	failedEvent := events.NewPageDeleted("p2", "about", now)

	client := &fakePutEventsClient{
		outputs: []*awseventbridge.PutEventsOutput{
			{
				FailedEntryCount: 1,
				Entries: []types.PutEventsResultEntry{
					{EventId: aws.String("1")},
					{ErrorCode: aws.String("ThrottlingException"), ErrorMessage: aws.String("slow down")},
				},
			},
		},
	}
	core, logged := observer.New(zap.ErrorLevel)
	publisher := newPublisher(client, zap.New(core))

	err := publisher.PublishBatch(context.Background(), []events.DomainEvent{broken, okEvent, failedEvent})
	require.Error(t, err)

	failures := logged.FilterMessage("failed to publish event").All()
	require.Len(t, failures, 1)
	fields := failures[0].ContextMap()
	assert.Equal(t, events.TypePageDeleted, fields["eventType"])
	assert.Equal(t, "ThrottlingException", fields["errorCode"])
}

func TestPublishBatchAllEventsUnserializable(t *testing.T) {
	client := &fakePutEventsClient{}
	publisher := newPublisher(client, zap.NewNop())

	err := publisher.PublishBatch(context.Background(), []events.DomainEvent{
		brokenEvent{BaseEvent: events.BaseEvent{Type: "page.broken", PageID: "p1", Timestamp: time.Now()}},
	})

	assert.NoError(t, err)
	assert.Empty(t, client.inputs)
}

func TestPublishBatchTransportError(t *testing.T) {
	client := &fakePutEventsClient{err: errors.New("connection reset")}
	publisher := newPublisher(client, zap.NewNop())

	err := publisher.PublishBatch(context.Background(), []events.DomainEvent{
		events.NewPagePublished("p1", "home", time.Now()),
	})

	assert.Error(t, err)
}
