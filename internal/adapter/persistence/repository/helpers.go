package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"printhub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the part of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// TableNames lists the DynamoDB tables used by the repositories.
type TableNames struct {
	OrderRequests     string
	OrderRequestItems string
	ClientOrders      string
	Clients           string
	StatusHistory     string
	CodeSequences     string
}

func DefaultTableNames() TableNames {
	return TableNames{
		OrderRequests:     "order_requests",
		OrderRequestItems: "order_request_items",
		ClientOrders:      "client_orders",
		Clients:           "clients",
		StatusHistory:     "status_history",
		CodeSequences:     "code_sequences",
	}
}

// DynamoDB caps IN operands and transaction sizes at 100.
const (
	maxInOperands    = 100
	maxTransactItems = 100
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numberAttr(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": numberAttr(id)}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// canceledByCondition reports the first cancellation reason when a transaction was
// cancelled by a failed condition check.
func canceledByCondition(err error) (types.CancellationReason, bool) {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return types.CancellationReason{}, false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return reason, true
		}
	}
	return types.CancellationReason{}, false
}

// inFilter builds "#attr IN (:p0, :p1, ...)".
func inFilter(attr, placeholder string, values []types.AttributeValue) (string, map[string]string, map[string]types.AttributeValue) {
	keys := make([]string, len(values))
	vals := make(map[string]types.AttributeValue, len(values))
	for i, v := range values {
		k := fmt.Sprintf(":%s%d", placeholder, i)
		keys[i] = k
		vals[k] = v
	}
	expr := fmt.Sprintf("#%s IN (%s)", attr, strings.Join(keys, ", "))
	return expr, map[string]string{"#" + attr: attr}, vals
}

func statusValues(statuses []entities.OrderStatus) []types.AttributeValue {
	out := make([]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		out[i] = &types.AttributeValueMemberS{Value: string(s)}
	}
	return out
}

func idValues(ids []int64) []types.AttributeValue {
	out := make([]types.AttributeValue, len(ids))
	for i, id := range ids {
		out[i] = numberAttr(id)
	}
	return out
}

func chunkIDs(ids []int64, size int) [][]int64 {
	var chunks [][]int64
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

func scanAll(ctx context.Context, api DynamoAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewScanPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func queryAll(ctx context.Context, api DynamoAPI, in *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

// listCodes scans attr for values starting with prefix.
func listCodes(ctx context.Context, api DynamoAPI, table, attr, prefix string) ([]string, error) {
	items, err := scanAll(ctx, api, &dynamodb.ScanInput{
		TableName:                aws.String(table),
		FilterExpression:         aws.String("begins_with(#code, :prefix)"),
		ProjectionExpression:     aws.String("#code"),
		ExpressionAttributeNames: map[string]string{"#code": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	})
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it[attr].(*types.AttributeValueMemberS); ok {
			codes = append(codes, s.Value)
		}
	}
	return codes, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
