package repository

import (
	"context"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLineItemsTableName = "line_items"

type lineItemItem struct {
	ID            string                `dynamodbav:"id"`
	ServiceCallID string                `dynamodbav:"service_call_id"`
	Kind          string                `dynamodbav:"kind"`
	ProductID     string                `dynamodbav:"product_id,omitempty"`
	Description   string                `dynamodbav:"description"`
	Qty           attributevalue.Number `dynamodbav:"qty"`
	UnitPrice     attributevalue.Number `dynamodbav:"unit_price"`
	DiscountValue attributevalue.Number `dynamodbav:"discount_value"`
	Total         attributevalue.Number `dynamodbav:"total"`
	CreatedAt     string                `dynamodbav:"created_at"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_call_id-index (PK: service_call_id)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client, tableName string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, item entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(item))
	if err != nil {
		return entities.LineItem{}, err
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
		return entities.LineItem{}, err
	}
	return item, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, id string) (entities.LineItem, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.LineItem{}, nil
		}
		return entities.LineItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) ListByServiceCallID(ctx context.Context, serviceCallID string) ([]entities.LineItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceCallIDIndex),
		KeyConditionExpression: aws.String("service_call_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceCallID},
		},
	})

	items := make([]entities.LineItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []lineItemItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			items = append(items, fromLineItemItem(it))
		}
	}
	return items, nil
}

func toLineItemItem(item entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:            item.ID,
		ServiceCallID: item.ServiceCallID,
		Kind:          string(item.Kind),
		ProductID:     item.ProductID,
		Description:   item.Description,
		Qty:           toNumber(item.Qty),
		UnitPrice:     toNumber(item.UnitPrice),
		DiscountValue: toNumber(item.DiscountValue),
		Total:         toNumber(item.Total),
		CreatedAt:     formatTime(item.CreatedAt),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:            it.ID,
		ServiceCallID: it.ServiceCallID,
		Kind:          entities.LineItemKind(it.Kind),
		ProductID:     it.ProductID,
		Description:   it.Description,
		Qty:           fromNumber(it.Qty),
		UnitPrice:     fromNumber(it.UnitPrice),
		DiscountValue: fromNumber(it.DiscountValue),
		Total:         fromNumber(it.Total),
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
