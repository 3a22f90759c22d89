package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/application/ports"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/entities"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/core/valueobjects"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/utils"
)

// PageRepository implements ports.PageRepository on a single DynamoDB
// table. The whole page document is one item; every write replaces the
// item, so concurrent writers race and the later write wins.
type PageRepository struct {
	client        *dynamodb.Client
	tableName     string
	slugIndexName string
	logger        *zap.Logger
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(client *dynamodb.Client, tableName, slugIndexName string, logger *zap.Logger) ports.PageRepository {
	return &PageRepository{
		client:        client,
		tableName:     tableName,
		slugIndexName: slugIndexName,
		logger:        logger,
	}
}

// pageItem represents the DynamoDB item structure for a page
type pageItem struct {
	PK             string `dynamodbav:"PK"`
	SK             string `dynamodbav:"SK"`
	GSI1PK         string `dynamodbav:"GSI1PK"` // SLUG#<slug> for slug lookups
	GSI1SK         string `dynamodbav:"GSI1SK"` // Always "PAGE"
	EntityType     string `dynamodbav:"EntityType"`
	PageID         string `dynamodbav:"PageID"`
	Slug           string `dynamodbav:"Slug"`
	Title          string `dynamodbav:"Title"`
	SEOTitle       string `dynamodbav:"SEOTitle"`
	SEODescription string `dynamodbav:"SEODescription"`
	Published      bool   `dynamodbav:"Published"`
	Sections       string `dynamodbav:"Sections"` // JSON-encoded ordered section list
	CreatedAt      string `dynamodbav:"CreatedAt"`
	UpdatedAt      string `dynamodbav:"UpdatedAt"`
}

// Save persists a page to DynamoDB, replacing the full document.
func (r *PageRepository) Save(ctx context.Context, page *entities.Page) error {
	item, err := r.toItem(page)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal page: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}

	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("failed to save page to DynamoDB",
			zap.Error(err),
			zap.String("pageID", page.ID().String()),
			zap.String("slug", page.Slug().String()),
		)
		return pkgerrors.NewDatabaseError("save page", err)
	}

	r.logger.Debug("saved page to DynamoDB",
		zap.String("pageID", page.ID().String()),
		zap.String("slug", page.Slug().String()),
		zap.Int("sectionCount", len(page.Sections())),
	)
	return nil
}

// GetByID retrieves a page by its store id
func (r *PageRepository) GetByID(ctx context.Context, id valueobjects.PageID) (*entities.Page, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("PAGE#%s", id.String())},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("get page", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.NewNotFoundError("page")
	}

	var item pageItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}

	return r.toEntity(item)
}

// GetBySlug retrieves a page by slug through the slug GSI. The limit of
// two detects duplicate documents under one slug; duplicates indicate an
// inconsistent store and are logged as a data error while the first
// record is served.
func (r *PageRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*entities.Page, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.slugIndexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND GSI1SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("SLUG#%s", slug)},
			":sk": &types.AttributeValueMemberS{Value: "PAGE"},
		},
		Limit: aws.Int32(2),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("query page by slug", err)
	}
	if len(result.Items) == 0 {
		return nil, pkgerrors.NewNotFoundError("page")
	}
	if len(result.Items) > 1 {
		r.logger.Error("duplicate page documents for slug",
			zap.String("slug", slug),
		)
	}

	var item pageItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal page: %w", err)
	}

	if publishedOnly && !item.Published {
		return nil, pkgerrors.NewNotFoundError("page")
	}

	return r.toEntity(item)
}

// ListAll scans the table for page items. The page set is bounded by
// the number of site pages, so a filtered scan is acceptable.
func (r *PageRepository) ListAll(ctx context.Context) ([]*entities.Page, error) {
	filter := expression.Name("EntityType").Equal(expression.Value("PAGE"))
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	pages := []*entities.Page{}
	var lastKey map[string]types.AttributeValue

	for {
		input := &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         lastKey,
		}

		result, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("scan pages", err)
		}

		for _, raw := range result.Items {
			var item pageItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("skipping unreadable page item", zap.Error(err))
				continue
			}
			page, err := r.toEntity(item)
			if err != nil {
				r.logger.Warn("skipping invalid page item",
					zap.String("pageID", item.PageID),
					zap.Error(err))
				continue
			}
			pages = append(pages, page)
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastKey = result.LastEvaluatedKey
	}

	return pages, nil
}

// UpsertSection performs the read-modify-write for a single section:
// load the document, merge the patch through the entity, write the
// whole document back.
func (r *PageRepository) UpsertSection(ctx context.Context, pageID string, sectionID string, patch valueobjects.SectionPatch) (*entities.Page, error) {
	id, err := valueobjects.NewPageIDFromString(pageID)
	if err != nil {
		return nil, pkgerrors.NewValidationError("invalid page ID format")
	}

	page, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := page.UpsertSection(sectionID, patch); err != nil {
		return nil, err
	}

	if err := r.Save(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Delete removes the page item entirely
func (r *PageRepository) Delete(ctx context.Context, id valueobjects.PageID) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("PAGE#%s", id.String())},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		r.logger.Error("failed to delete page from DynamoDB",
			zap.Error(err),
			zap.String("pageID", id.String()),
		)
		return pkgerrors.NewDatabaseError("delete page", err)
	}
	return nil
}

func (r *PageRepository) toItem(page *entities.Page) (pageItem, error) {
	sections, err := json.Marshal(page.Sections())
	if err != nil {
		return pageItem{}, fmt.Errorf("failed to encode sections: %w", err)
	}

	return pageItem{
		PK:             fmt.Sprintf("PAGE#%s", page.ID().String()),
		SK:             "METADATA",
		GSI1PK:         fmt.Sprintf("SLUG#%s", page.Slug().String()),
		GSI1SK:         "PAGE",
		EntityType:     "PAGE",
		PageID:         page.ID().String(),
		Slug:           page.Slug().String(),
		Title:          page.Title(),
		SEOTitle:       page.SEOTitle(),
		SEODescription: page.SEODescription(),
		Published:      page.IsPublished(),
		Sections:       string(sections),
		CreatedAt:      utils.FormatRFC3339(page.CreatedAt()),
		UpdatedAt:      utils.FormatRFC3339(page.UpdatedAt()),
	}, nil
}

func (r *PageRepository) toEntity(item pageItem) (*entities.Page, error) {
	id, err := valueobjects.NewPageIDFromString(item.PageID)
	if err != nil {
		return nil, fmt.Errorf("invalid page id in store: %w", err)
	}
	slug, err := valueobjects.NewSlug(item.Slug)
	if err != nil {
		return nil, fmt.Errorf("invalid slug in store: %w", err)
	}

	var sections []valueobjects.Section
	if item.Sections != "" {
		if err := json.Unmarshal([]byte(item.Sections), &sections); err != nil {
			return nil, fmt.Errorf("failed to decode sections: %w", err)
		}
	}

	createdAt, err := utils.ParseRFC3339(item.CreatedAt)
	if err != nil {
		createdAt = time.Time{}
	}
	updatedAt, err := utils.ParseRFC3339(item.UpdatedAt)
	if err != nil {
		updatedAt = createdAt
	}

	return entities.ReconstructPage(
		id, slug,
		item.Title, item.SEOTitle, item.SEODescription,
		item.Published, sections,
		createdAt, updatedAt,
	)
}
