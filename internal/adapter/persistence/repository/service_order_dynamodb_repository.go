package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceOrdersTableName = "service_orders"
	defaultCountersTableName      = "counters"
	serviceOrdersCounterName      = "service_orders"
)

// serviceOrderItem is the external (stored) shape of a service order. The
// dynamodbav tags are the snake_case naming contract of the table; every
// entity field has exactly one counterpart here and vice versa.
type serviceOrderItem struct {
	ID            int    `dynamodbav:"id"`
	ClientName    string `dynamodbav:"client_name"`
	ClientPhone   string `dynamodbav:"client_phone"`
	Description   string `dynamodbav:"description"`
	OpenDate      string `dynamodbav:"open_date"`
	CloseDate     string `dynamodbav:"close_date,omitempty"`
	Value         string `dynamodbav:"value"`
	Status        string `dynamodbav:"status"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Observations  string `dynamodbav:"observations,omitempty"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - service_orders: PK id (number)
//   - counters: PK name (string), attribute current_value (number)
//
// Ids come from an atomic ADD on the counters item, so they are unique,
// monotonically increasing and never reused after a delete.
//
// The repository accepts a nil client: in that state reads return empty
// results, update/delete are no-ops and only Create fails, mirroring an
// installation whose backend credentials were never filled in.
type ServiceOrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) GetAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	if r.ddb == nil {
		return []entities.ServiceOrder{}, nil
	}

	orders := make([]entities.ServiceOrder, 0)
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, &interfaces.StoreError{Op: "get_all", Err: err}
		}
		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, &interfaces.StoreError{Op: "get_all", Err: err}
			}
			orders = append(orders, fromServiceOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sortByIDDescending(orders)
	return orders, nil
}

// sortByIDDescending orders newest-first; ids are monotonic so the highest
// id is the most recent order.
func sortByIDDescending(orders []entities.ServiceOrder) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	if r.ddb == nil {
		return entities.ServiceOrder{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, &interfaces.StoreError{Op: "get_by_id", Err: err}
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, &interfaces.StoreError{Op: "get_by_id", Err: err}
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	if r.ddb == nil {
		return entities.ServiceOrder{}, interfaces.ErrStoreNotConfigured
	}

	id, err := r.nextOrderID(ctx)
	if err != nil {
		return entities.ServiceOrder{}, &interfaces.StoreError{Op: "create", Err: err}
	}
	order.ID = id

	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return entities.ServiceOrder{}, &interfaces.StoreError{Op: "create", Err: err}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceOrder{}, &interfaces.StoreError{Op: "create", Err: err}
	}
	return order, nil
}

func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, order entities.ServiceOrder) error {
	if r.ddb == nil {
		return nil
	}

	av, err := attributevalue.MarshalMap(toServiceOrderItem(order))
	if err != nil {
		return &interfaces.StoreError{Op: "update", Err: err}
	}

	// Full-record replace; the condition turns an unknown id into a rejection
	// instead of a silent insert.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return &interfaces.StoreError{Op: "update", Err: err}
	}
	return nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id int) error {
	if r.ddb == nil {
		return nil
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
	})
	if err != nil {
		return &interfaces.StoreError{Op: "delete", Err: err}
	}
	return nil
}

// nextOrderID increments the service_orders counter atomically and returns
// the new value. Deleted ids are never handed out again.
func (r *ServiceOrderDynamoRepository) nextOrderID(ctx context.Context) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: serviceOrdersCounterName},
		},
		UpdateExpression: aws.String("ADD current_value :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		CurrentValue int `dynamodbav:"current_value"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.CurrentValue, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	closeDate := ""
	if o.CloseDate != nil {
		closeDate = o.CloseDate.UTC().Format(time.RFC3339)
	}
	return serviceOrderItem{
		ID:            o.ID,
		ClientName:    o.ClientName,
		ClientPhone:   o.ClientPhone,
		Description:   o.Description,
		OpenDate:      o.OpenDate.UTC().Format(time.RFC3339),
		CloseDate:     closeDate,
		Value:         floatToString(o.Value),
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		Observations:  o.Observations,
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	openDate, _ := time.Parse(time.RFC3339, it.OpenDate)
	var closeDate *time.Time
	if it.CloseDate != "" {
		if t, err := time.Parse(time.RFC3339, it.CloseDate); err == nil {
			closeDate = &t
		}
	}
	// A value the store cannot represent as a number counts as zero.
	value, _ := strconv.ParseFloat(it.Value, 64)
	return entities.ServiceOrder{
		ID:            it.ID,
		ClientName:    it.ClientName,
		ClientPhone:   it.ClientPhone,
		Description:   it.Description,
		OpenDate:      openDate,
		CloseDate:     closeDate,
		Value:         value,
		Status:        entities.OrderStatus(it.Status),
		PaymentMethod: it.PaymentMethod,
		Observations:  it.Observations,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
