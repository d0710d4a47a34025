package repository

import (
	"context"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID        string                `dynamodbav:"id"`
	Name      string                `dynamodbav:"name"`
	UnitPrice attributevalue.Number `dynamodbav:"unit_price"`
}

// ProductDynamoCatalog reads the product catalog. It never writes.
//
// Table requirements:
//   - PK: id (string)

type ProductDynamoCatalog struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductCatalog = (*ProductDynamoCatalog)(nil)

func NewProductDynamoCatalog(ddb *dynamodb.Client, tableName string) *ProductDynamoCatalog {
	return &ProductDynamoCatalog{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProductsTableName),
	}
}

func (r *ProductDynamoCatalog) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return entities.Product{ID: it.ID, Name: it.Name, UnitPrice: fromNumber(it.UnitPrice)}, nil
}
