package repository

import (
	"context"
	"encoding/json"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceCallsTableName = "service_calls"

// serviceCallItem maps only the financial attributes of the service call record.
// Other attributes are owned elsewhere and never written here.
type serviceCallItem struct {
	ID                    string                `dynamodbav:"id"`
	ClientID              string                `dynamodbav:"client_id"`
	DiscountPartsType     string                `dynamodbav:"discount_parts_type,omitempty"`
	DiscountPartsValue    attributevalue.Number `dynamodbav:"discount_parts_value,omitempty"`
	DiscountServicesType  string                `dynamodbav:"discount_services_type,omitempty"`
	DiscountServicesValue attributevalue.Number `dynamodbav:"discount_services_value,omitempty"`
	DiscountTotalType     string                `dynamodbav:"discount_total_type,omitempty"`
	DiscountTotalValue    attributevalue.Number `dynamodbav:"discount_total_value,omitempty"`
	PaymentConfig         string                `dynamodbav:"payment_config,omitempty"`
	InstallmentsGroupID   string                `dynamodbav:"installments_group_id,omitempty"`
	UpdatedAt             string                `dynamodbav:"updated_at,omitempty"`
}

// ServiceCallDynamoRepository reads and updates the financial fields of service calls.
//
// Table requirements:
//   - PK: id (string)

type ServiceCallDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCallRepository = (*ServiceCallDynamoRepository)(nil)

func NewServiceCallDynamoRepository(ddb *dynamodb.Client, tableName string) *ServiceCallDynamoRepository {
	return &ServiceCallDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServiceCallsTableName),
	}
}

func (r *ServiceCallDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceCall, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceCall{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceCall{}, nil
	}

	var it serviceCallItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceCall{}, err
	}
	return fromServiceCallItem(it), nil
}

// UpdateFinancials overwrites discounts and payment config (last write wins).
func (r *ServiceCallDynamoRepository) UpdateFinancials(ctx context.Context, id string, discounts entities.DiscountConfig, paymentConfig json.RawMessage) (entities.ServiceCall, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #dpt = :dpt, #dpv = :dpv, #dst = :dst, #dsv = :dsv, " +
			"#dtt = :dtt, #dtv = :dtv, #payment_config = :payment_config, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#dpt":            "discount_parts_type",
			"#dpv":            "discount_parts_value",
			"#dst":            "discount_services_type",
			"#dsv":            "discount_services_value",
			"#dtt":            "discount_total_type",
			"#dtv":            "discount_total_value",
			"#payment_config": "payment_config",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":dpt":            &types.AttributeValueMemberS{Value: string(discounts.Parts.Type)},
			":dpv":            numberValue(discounts.Parts.Value),
			":dst":            &types.AttributeValueMemberS{Value: string(discounts.Services.Type)},
			":dsv":            numberValue(discounts.Services.Value),
			":dtt":            &types.AttributeValueMemberS{Value: string(discounts.Total.Type)},
			":dtv":            numberValue(discounts.Total.Value),
			":payment_config": &types.AttributeValueMemberS{Value: string(paymentConfig)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceCall{}, nil
		}
		return entities.ServiceCall{}, err
	}

	var it serviceCallItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceCall{}, err
	}
	return fromServiceCallItem(it), nil
}

func fromServiceCallItem(it serviceCallItem) entities.ServiceCall {
	sc := entities.ServiceCall{
		ID:       it.ID,
		ClientID: it.ClientID,
		Discounts: entities.DiscountConfig{
			Parts:    entities.DiscountCategory{Type: entities.DiscountType(it.DiscountPartsType), Value: fromNumber(it.DiscountPartsValue)},
			Services: entities.DiscountCategory{Type: entities.DiscountType(it.DiscountServicesType), Value: fromNumber(it.DiscountServicesValue)},
			Total:    entities.DiscountCategory{Type: entities.DiscountType(it.DiscountTotalType), Value: fromNumber(it.DiscountTotalValue)},
		},
		InstallmentsGroupID: it.InstallmentsGroupID,
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.PaymentConfig != "" {
		sc.PaymentConfigRaw = json.RawMessage(it.PaymentConfig)
	}
	return sc
}
