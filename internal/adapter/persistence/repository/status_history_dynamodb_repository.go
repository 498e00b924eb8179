package repository

import (
	"context"
	"fmt"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// sortKeyLayout is fixed width so sort keys order the same as timestamps.
const sortKeyLayout = "2006-01-02T15:04:05.000000000Z"

type statusHistoryItem struct {
	Subject     string `dynamodbav:"subject"`
	SortKey     string `dynamodbav:"sort_key"`
	ID          string `dynamodbav:"id"`
	SubjectType string `dynamodbav:"subject_type"`
	SubjectID   int64  `dynamodbav:"subject_id"`
	Status      string `dynamodbav:"status"`
	Actor       string `dynamodbav:"actor"`
	Notes       string `dynamodbav:"notes,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// StatusHistoryDynamoRepository appends status changes.
//
// Table requirements:
//   - PK: subject (string, "<subject_type>#<subject_id>")
//   - SK: sort_key (string, "<created_at>#<id>")
type StatusHistoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStatusHistoryRepository = (*StatusHistoryDynamoRepository)(nil)

func NewStatusHistoryDynamoRepository(ddb DynamoAPI, tables TableNames) *StatusHistoryDynamoRepository {
	return &StatusHistoryDynamoRepository{ddb: ddb, tableName: tables.StatusHistory}
}

func (r *StatusHistoryDynamoRepository) Append(ctx context.Context, e entities.StatusHistoryEntry) error {
	av, err := attributevalue.MarshalMap(toStatusHistoryItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#sort_key)"),
		ExpressionAttributeNames: map[string]string{"#sort_key": "sort_key"},
	})
	return err
}

func (r *StatusHistoryDynamoRepository) ListBySubject(ctx context.Context, subject entities.HistorySubject, subjectID int64) ([]entities.StatusHistoryEntry, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		KeyConditionExpression:   aws.String("#subject = :subject"),
		ExpressionAttributeNames: map[string]string{"#subject": "subject"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":subject": &types.AttributeValueMemberS{Value: subjectKey(subject, subjectID)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}
	var items []statusHistoryItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.StatusHistoryEntry, len(items))
	for i, it := range items {
		out[i] = fromStatusHistoryItem(it)
	}
	return out, nil
}

func subjectKey(subject entities.HistorySubject, id int64) string {
	return fmt.Sprintf("%s#%d", subject, id)
}

func toStatusHistoryItem(e entities.StatusHistoryEntry) statusHistoryItem {
	return statusHistoryItem{
		Subject:     subjectKey(e.SubjectType, e.SubjectID),
		SortKey:     e.CreatedAt.UTC().Format(sortKeyLayout) + "#" + e.ID,
		ID:          e.ID,
		SubjectType: string(e.SubjectType),
		SubjectID:   e.SubjectID,
		Status:      string(e.Status),
		Actor:       e.Actor,
		Notes:       e.Notes,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistoryEntry {
	return entities.StatusHistoryEntry{
		ID:          it.ID,
		SubjectType: entities.HistorySubject(it.SubjectType),
		SubjectID:   it.SubjectID,
		Status:      entities.OrderStatus(it.Status),
		Actor:       it.Actor,
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
