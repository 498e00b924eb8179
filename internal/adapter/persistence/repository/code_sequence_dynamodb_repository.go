package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"printhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxAdvanceAttempts = 5

var ErrSequenceContention = errors.New("code sequence: too many concurrent writers")

// CodeSequenceDynamoRepository keeps named counters in a single table.
//
// Table requirements:
//   - PK: name (string)
//   - value (number)
type CodeSequenceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICodeSequence = (*CodeSequenceDynamoRepository)(nil)

func NewCodeSequenceDynamoRepository(ddb DynamoAPI, tables TableNames) *CodeSequenceDynamoRepository {
	return &CodeSequenceDynamoRepository{ddb: ddb, tableName: tables.CodeSequences}
}

// Advance sets the counter to max(current, floor)+1 with a conditional write and
// retries when another writer got there first.
func (r *CodeSequenceDynamoRepository) Advance(ctx context.Context, key string, floor int) (int, error) {
	for attempt := 0; attempt < maxAdvanceAttempts; attempt++ {
		current, hasValue, err := r.current(ctx, key)
		if err != nil {
			return 0, err
		}
		next := max(current, int64(floor)) + 1

		in := &dynamodb.UpdateItemInput{
			TableName:                aws.String(r.tableName),
			Key:                      map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: key}},
			UpdateExpression:         aws.String("SET #value = :next"),
			ExpressionAttributeNames: map[string]string{"#value": "value"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":next": numberAttr(next),
			},
		}
		if hasValue {
			in.ConditionExpression = aws.String("#value = :current")
			in.ExpressionAttributeValues[":current"] = numberAttr(current)
		} else {
			in.ConditionExpression = aws.String("attribute_not_exists(#value)")
		}

		if _, err := r.ddb.UpdateItem(ctx, in); err != nil {
			if isConditionalCheckFailed(err) {
				continue
			}
			return 0, err
		}
		return int(next), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrSequenceContention, key)
}

// NextID bumps a counter atomically with ADD and returns the new value.
func (r *CodeSequenceDynamoRepository) NextID(ctx context.Context, key string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: key}},
		UpdateExpression:          aws.String("ADD #value :one"),
		ExpressionAttributeNames:  map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": numberAttr(1)},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("code sequence %s: missing value", key)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

func (r *CodeSequenceDynamoRepository) current(ctx context.Context, key string) (int64, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: key}},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, false, err
	}
	v, ok := out.Item["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}
