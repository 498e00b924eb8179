package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	clientOrderIDSequence   = "client_orders#id"
	clientOrderRequestIndex = "order_request_id-index"
	clientOrderGuardPrefix  = "client_orders#request#"
)

type clientOrderItem struct {
	ID             int64  `dynamodbav:"id"`
	OrderCode      string `dynamodbav:"order_code"`
	ClientID       int64  `dynamodbav:"client_id"`
	ClientName     string `dynamodbav:"client_name"`
	OrderDate      string `dynamodbav:"order_date"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	Notes          string `dynamodbav:"notes"`
	OrderRequestID *int64 `dynamodbav:"order_request_id,omitempty"`
	ItemCount      int    `dynamodbav:"item_count"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// clientOrderGuard lives in the code_sequences table and maps an order request to
// its mirror row, so the lookup can be a strongly consistent GetItem.
type clientOrderGuard struct {
	Name    string `dynamodbav:"name"`
	OrderID int64  `dynamodbav:"order_id"`
}

// ClientOrderDynamoRepository persists the client_orders mirror in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI order_request_id-index on order_request_id (number), read only for rows
//     written before the request guard existed
//
// A mirror row created for an order request is written together with a guard item
// keyed "client_orders#request#<id>" in the code_sequences table. The guard is
// conditioned on attribute_not_exists, so a request never gets two mirror rows.
type ClientOrderDynamoRepository struct {
	ddb        DynamoAPI
	ids        *CodeSequenceDynamoRepository
	tableName  string
	guardTable string
}

var _ interfaces.IClientOrderRepository = (*ClientOrderDynamoRepository)(nil)

func NewClientOrderDynamoRepository(ddb DynamoAPI, tables TableNames) *ClientOrderDynamoRepository {
	return &ClientOrderDynamoRepository{
		ddb:        ddb,
		ids:        NewCodeSequenceDynamoRepository(ddb, tables),
		tableName:  tables.ClientOrders,
		guardTable: tables.CodeSequences,
	}
}

// Create writes a new mirror row. When the request already has one, the stored row is
// returned unchanged.
func (r *ClientOrderDynamoRepository) Create(ctx context.Context, o entities.ClientOrder) (entities.ClientOrder, error) {
	id, err := r.ids.NextID(ctx, clientOrderIDSequence)
	if err != nil {
		return entities.ClientOrder{}, err
	}
	o.ID = id
	o.Source = entities.ClientOrderSourceMirror

	av, err := attributevalue.MarshalMap(toClientOrderItem(o))
	if err != nil {
		return entities.ClientOrder{}, err
	}
	row := types.Put{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}

	if o.OrderRequestID == nil {
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                row.TableName,
			Item:                     row.Item,
			ConditionExpression:      row.ConditionExpression,
			ExpressionAttributeNames: row.ExpressionAttributeNames,
		})
		if err != nil {
			return entities.ClientOrder{}, err
		}
		return o, nil
	}

	requestID := *o.OrderRequestID
	guard, err := attributevalue.MarshalMap(clientOrderGuard{Name: guardName(requestID), OrderID: id})
	if err != nil {
		return entities.ClientOrder{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.guardTable),
				Item:                     guard,
				ConditionExpression:      aws.String("attribute_not_exists(#name)"),
				ExpressionAttributeNames: map[string]string{"#name": "name"},
			}},
			{Put: &row},
		},
	})
	if err != nil {
		if _, ok := canceledByCondition(err); !ok {
			return entities.ClientOrder{}, err
		}
		existing, err := r.GetByRequestID(ctx, requestID)
		if err != nil {
			return entities.ClientOrder{}, err
		}
		if existing.ID == 0 {
			return entities.ClientOrder{}, fmt.Errorf("client order for request %d: guard present but row missing", requestID)
		}
		return existing, nil
	}
	return o, nil
}

func (r *ClientOrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.ClientOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientOrder{}, nil
	}
	var it clientOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientOrder{}, err
	}
	return fromClientOrderItem(it), nil
}

// GetByRequestID follows the request guard with consistent reads. Without a guard it
// falls back to the GSI and confirms each candidate against the table.
func (r *ClientOrderDynamoRepository) GetByRequestID(ctx context.Context, requestID int64) (entities.ClientOrder, error) {
	guard, ok, err := r.guard(ctx, requestID)
	if err != nil {
		return entities.ClientOrder{}, err
	}
	if ok {
		return r.GetByID(ctx, guard.OrderID)
	}

	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(clientOrderRequestIndex),
		KeyConditionExpression:   aws.String("#order_request_id = :order_request_id"),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#order_request_id": "order_request_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_request_id": numberAttr(requestID),
		},
	})
	if err != nil {
		return entities.ClientOrder{}, err
	}
	var keys []struct {
		ID int64 `dynamodbav:"id"`
	}
	if err := attributevalue.UnmarshalListOfMaps(raw, &keys); err != nil {
		return entities.ClientOrder{}, err
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].ID < keys[j].ID })
	for _, k := range keys {
		o, err := r.GetByID(ctx, k.ID)
		if err != nil {
			return entities.ClientOrder{}, err
		}
		if o.ID != 0 {
			return o, nil
		}
	}
	return entities.ClientOrder{}, nil
}

func (r *ClientOrderDynamoRepository) guard(ctx context.Context, requestID int64) (clientOrderGuard, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.guardTable),
		Key:            guardKey(requestID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return clientOrderGuard{}, false, err
	}
	if len(out.Item) == 0 {
		return clientOrderGuard{}, false, nil
	}
	var g clientOrderGuard
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return clientOrderGuard{}, false, err
	}
	return g, true, nil
}

func (r *ClientOrderDynamoRepository) List(ctx context.Context, statuses []entities.OrderStatus) ([]entities.ClientOrder, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(statuses) > 0 {
		filter, names, values := inFilter("status", "s", statusValues(statuses))
		in.FilterExpression = aws.String(filter)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	var items []clientOrderItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &items); err != nil {
		return nil, err
	}
	out := make([]entities.ClientOrder, len(items))
	for i, it := range items {
		out[i] = fromClientOrderItem(it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClientOrderDynamoRepository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatus, at time.Time) (entities.ClientOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ClientOrder{}, nil
		}
		return entities.ClientOrder{}, err
	}
	var it clientOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ClientOrder{}, err
	}
	return fromClientOrderItem(it), nil
}

// Delete removes the row and, for a mirror of an order request, its guard in the same
// transaction.
func (r *ClientOrderDynamoRepository) Delete(ctx context.Context, id int64) error {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == 0 {
		return nil
	}
	if o.OrderRequestID == nil {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key:       idKey(id),
		})
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       idKey(id),
			}},
			{Delete: &types.Delete{
				TableName:                aws.String(r.guardTable),
				Key:                      guardKey(*o.OrderRequestID),
				ConditionExpression:      aws.String("attribute_not_exists(#name) OR #order_id = :order_id"),
				ExpressionAttributeNames: map[string]string{"#name": "name", "#order_id": "order_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":order_id": numberAttr(id),
				},
			}},
		},
	})
	return err
}

func (r *ClientOrderDynamoRepository) ListCodes(ctx context.Context, prefix string) ([]string, error) {
	return listCodes(ctx, r.ddb, r.tableName, "order_code", prefix)
}

func guardName(requestID int64) string {
	return fmt.Sprintf("%s%d", clientOrderGuardPrefix, requestID)
}

func guardKey(requestID int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"name": &types.AttributeValueMemberS{Value: guardName(requestID)}}
}

func toClientOrderItem(o entities.ClientOrder) clientOrderItem {
	return clientOrderItem{
		ID:             o.ID,
		OrderCode:      o.OrderCode,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		OrderDate:      formatTime(o.OrderDate),
		Amount:         o.Amount.String(),
		Status:         string(o.Status),
		Notes:          o.Notes,
		OrderRequestID: o.OrderRequestID,
		ItemCount:      o.ItemCount,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

func fromClientOrderItem(it clientOrderItem) entities.ClientOrder {
	return entities.ClientOrder{
		ID:             it.ID,
		OrderCode:      it.OrderCode,
		ClientID:       it.ClientID,
		ClientName:     it.ClientName,
		OrderDate:      parseTime(it.OrderDate),
		Amount:         parseDecimal(it.Amount),
		Status:         entities.OrderStatus(it.Status),
		Notes:          it.Notes,
		OrderRequestID: it.OrderRequestID,
		ItemCount:      it.ItemCount,
		Source:         entities.ClientOrderSourceMirror,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
