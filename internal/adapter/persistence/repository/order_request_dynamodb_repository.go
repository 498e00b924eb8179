package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const orderRequestIDSequence = "order_requests#id"

type orderRequestItem struct {
	ID          int64  `dynamodbav:"id"`
	RequestCode string `dynamodbav:"request_code"`
	ClientID    int64  `dynamodbav:"client_id"`
	ClientName  string `dynamodbav:"client_name"`
	Date        string `dynamodbav:"date"`
	Category    string `dynamodbav:"category"`
	Status      string `dynamodbav:"status"`
	TotalAmount string `dynamodbav:"total_amount"`
	Notes       string `dynamodbav:"notes"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type orderRequestLineItem struct {
	RequestID   int64  `dynamodbav:"request_id"`
	LineNo      int    `dynamodbav:"line_no"`
	ProductID   int64  `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
	SerialStart string `dynamodbav:"serial_start,omitempty"`
	SerialEnd   string `dynamodbav:"serial_end,omitempty"`
}

// OrderRequestDynamoRepository persists order requests and their items in DynamoDB.
//
// Table requirements:
//   - order_requests PK: id (number), ids drawn from the code_sequences table
//   - order_request_items PK: request_id (number), SK: line_no (number)
//
// Header and items are written in one TransactWriteItems call so a reader never sees
// a total that disagrees with the items.
type OrderRequestDynamoRepository struct {
	ddb        DynamoAPI
	ids        *CodeSequenceDynamoRepository
	tableName  string
	itemsTable string
}

var _ interfaces.IOrderRequestRepository = (*OrderRequestDynamoRepository)(nil)

func NewOrderRequestDynamoRepository(ddb DynamoAPI, tables TableNames) *OrderRequestDynamoRepository {
	return &OrderRequestDynamoRepository{
		ddb:        ddb,
		ids:        NewCodeSequenceDynamoRepository(ddb, tables),
		tableName:  tables.OrderRequests,
		itemsTable: tables.OrderRequestItems,
	}
}

func (r *OrderRequestDynamoRepository) Create(ctx context.Context, req entities.OrderRequest) (entities.OrderRequest, error) {
	if len(req.Items)+1 > maxTransactItems {
		return entities.OrderRequest{}, fmt.Errorf("order request has %d items, at most %d fit one write", len(req.Items), maxTransactItems-1)
	}
	id, err := r.ids.NextID(ctx, orderRequestIDSequence)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	req.ID = id
	req.Items = withRequestID(id, req.Items)

	head, err := attributevalue.MarshalMap(toOrderRequestItem(req))
	if err != nil {
		return entities.OrderRequest{}, err
	}
	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     head,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	puts, err := r.itemPuts(req.Items)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	writes = append(writes, puts...)

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.OrderRequest{}, err
	}
	return req, nil
}

func (r *OrderRequestDynamoRepository) GetByID(ctx context.Context, id int64) (entities.OrderRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderRequest{}, nil
	}

	var it orderRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderRequest{}, err
	}
	req := fromOrderRequestItem(it)

	items, err := r.queryItems(ctx, id)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	req.Items = items
	return req, nil
}

// Update rewrites the header and replaces the items: new lines overwrite old ones by
// key and surplus old lines are deleted, all in one transaction. The header write is
// conditioned on the stored status still being pending and never touches the status.
func (r *OrderRequestDynamoRepository) Update(ctx context.Context, req entities.OrderRequest) (entities.OrderRequest, error) {
	existing, err := r.queryItems(ctx, req.ID)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	req.Items = withRequestID(req.ID, req.Items)

	head, err := r.headerUpdate(req)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	writes := []types.TransactWriteItem{{Update: head}}
	puts, err := r.itemPuts(req.Items)
	if err != nil {
		return entities.OrderRequest{}, err
	}
	writes = append(writes, puts...)
	for _, old := range existing {
		if old.LineNo <= len(req.Items) {
			continue
		}
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTable),
				Key:       lineKey(req.ID, old.LineNo),
			},
		})
	}
	if len(writes) > maxTransactItems {
		return entities.OrderRequest{}, fmt.Errorf("order request update needs %d writes, at most %d fit one transaction", len(writes), maxTransactItems)
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		if reason, ok := canceledByCondition(err); ok {
			if len(reason.Item) > 0 {
				return entities.OrderRequest{}, interfaces.ErrRequestNotPending
			}
			return entities.OrderRequest{}, nil
		}
		return entities.OrderRequest{}, err
	}
	return req, nil
}

// headerUpdate sets every header attribute except id, status and created_at.
func (r *OrderRequestDynamoRepository) headerUpdate(req entities.OrderRequest) (*types.Update, error) {
	head, err := attributevalue.MarshalMap(toOrderRequestItem(req))
	if err != nil {
		return nil, err
	}
	delete(head, "id")
	delete(head, "status")
	delete(head, "created_at")

	attrs := make([]string, 0, len(head))
	for attr := range head {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	sets := make([]string, len(attrs))
	names := map[string]string{"#id": "id"}
	values := make(map[string]types.AttributeValue, len(attrs)+len(entities.PendingStatuses))
	for i, attr := range attrs {
		sets[i] = fmt.Sprintf("#%s = :%s", attr, attr)
		names["#"+attr] = attr
		values[":"+attr] = head[attr]
	}
	pending, statusNames, pendingValues := inFilter("status", "pending", statusValues(entities.PendingStatuses))
	for k, v := range pendingValues {
		values[k] = v
	}

	return &types.Update{
		TableName:                           aws.String(r.tableName),
		Key:                                 idKey(req.ID),
		UpdateExpression:                    aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:                 aws.String("attribute_exists(#id) AND " + pending),
		ExpressionAttributeNames:            mergeNames(names, statusNames),
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	}, nil
}

func (r *OrderRequestDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.OrderRequest, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderRequestDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.OrderStatus) ([]entities.OrderRequest, error) {
	if len(statuses) == 0 {
		return []entities.OrderRequest{}, nil
	}
	filter, names, values := inFilter("status", "s", statusValues(statuses))
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	var items []orderRequestItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.OrderRequest, len(items))
	for i, it := range items {
		out[i] = fromOrderRequestItem(it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListItems scans the items table once per hundred request ids.
func (r *OrderRequestDynamoRepository) ListItems(ctx context.Context, requestIDs []int64) (map[int64][]entities.OrderRequestItem, error) {
	out := make(map[int64][]entities.OrderRequestItem, len(requestIDs))
	for _, chunk := range chunkIDs(requestIDs, maxInOperands) {
		filter, names, values := inFilter("request_id", "r", idValues(chunk))
		raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
			TableName:                 aws.String(r.itemsTable),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		if err != nil {
			return nil, err
		}
		var lines []orderRequestLineItem
		if err := attributevalue.UnmarshalListOfMaps(raw, &lines); err != nil {
			return nil, err
		}
		for _, l := range lines {
			out[l.RequestID] = append(out[l.RequestID], fromOrderRequestLineItem(l))
		}
	}
	for id := range out {
		sortLines(out[id])
	}
	return out, nil
}

func (r *OrderRequestDynamoRepository) CountItems(ctx context.Context, requestIDs []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(requestIDs))
	for _, chunk := range chunkIDs(requestIDs, maxInOperands) {
		filter, names, values := inFilter("request_id", "r", idValues(chunk))
		raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
			TableName:                 aws.String(r.itemsTable),
			FilterExpression:          aws.String(filter),
			ProjectionExpression:      aws.String("#request_id"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		})
		if err != nil {
			return nil, err
		}
		for _, it := range raw {
			if n, ok := it["request_id"].(*types.AttributeValueMemberN); ok {
				id, err := strconv.ParseInt(n.Value, 10, 64)
				if err != nil {
					return nil, err
				}
				out[id]++
			}
		}
	}
	return out, nil
}

func (r *OrderRequestDynamoRepository) ListCodes(ctx context.Context, prefix string) ([]string, error) {
	return listCodes(ctx, r.ddb, r.tableName, "request_code", prefix)
}

func (r *OrderRequestDynamoRepository) queryItems(ctx context.Context, requestID int64) ([]entities.OrderRequestItem, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.itemsTable),
		KeyConditionExpression:   aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{"#request_id": "request_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": numberAttr(requestID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	var lines []orderRequestLineItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &lines); err != nil {
		return nil, err
	}
	items := make([]entities.OrderRequestItem, len(lines))
	for i, l := range lines {
		items[i] = fromOrderRequestLineItem(l)
	}
	sortLines(items)
	return items, nil
}

func (r *OrderRequestDynamoRepository) itemPuts(items []entities.OrderRequestItem) ([]types.TransactWriteItem, error) {
	writes := make([]types.TransactWriteItem, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(toOrderRequestLineItem(it))
		if err != nil {
			return nil, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.itemsTable), Item: av},
		})
	}
	return writes, nil
}

func (r *OrderRequestDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.OrderRequest, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.OrderRequest{}, nil
		}
		return entities.OrderRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.OrderRequest{}, nil
	}
	var it orderRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderRequest{}, err
	}
	return fromOrderRequestItem(it), nil
}

func lineKey(requestID int64, lineNo int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"request_id": numberAttr(requestID),
		"line_no":    numberAttr(int64(lineNo)),
	}
}

func withRequestID(id int64, items []entities.OrderRequestItem) []entities.OrderRequestItem {
	out := make([]entities.OrderRequestItem, len(items))
	for i, it := range items {
		it.RequestID = id
		if it.LineNo == 0 {
			it.LineNo = i + 1
		}
		it.ID = int64(it.LineNo)
		out[i] = it
	}
	return out
}

func sortLines(items []entities.OrderRequestItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].LineNo < items[j].LineNo })
}

func toOrderRequestItem(r entities.OrderRequest) orderRequestItem {
	return orderRequestItem{
		ID:          r.ID,
		RequestCode: r.RequestCode,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		Date:        formatTime(r.Date),
		Category:    r.Category,
		Status:      string(r.Status),
		TotalAmount: r.TotalAmount.String(),
		Notes:       r.Notes,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func fromOrderRequestItem(it orderRequestItem) entities.OrderRequest {
	return entities.OrderRequest{
		ID:          it.ID,
		RequestCode: it.RequestCode,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		Date:        parseTime(it.Date),
		Category:    it.Category,
		Status:      entities.OrderStatus(it.Status),
		TotalAmount: parseDecimal(it.TotalAmount),
		Notes:       it.Notes,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toOrderRequestLineItem(i entities.OrderRequestItem) orderRequestLineItem {
	return orderRequestLineItem{
		RequestID:   i.RequestID,
		LineNo:      i.LineNo,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice.String(),
		TotalPrice:  i.TotalPrice.String(),
		SerialStart: i.SerialStart,
		SerialEnd:   i.SerialEnd,
	}
}

func fromOrderRequestLineItem(l orderRequestLineItem) entities.OrderRequestItem {
	return entities.OrderRequestItem{
		ID:          int64(l.LineNo),
		RequestID:   l.RequestID,
		LineNo:      l.LineNo,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Quantity,
		UnitPrice:   parseDecimal(l.UnitPrice),
		TotalPrice:  parseDecimal(l.TotalPrice),
		SerialStart: l.SerialStart,
		SerialEnd:   l.SerialEnd,
	}
}
