package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"os_financeiro/internal/domain/entities"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const (
	defaultTransactionsTableName = "financial_transactions"
	maxTransactItems             = 100

	attrGroupID   = "installments_group_id"
	attrRemaining = "installments_remaining"
)

type transactionItem struct {
	ID                  string                `dynamodbav:"id"`
	Direction           string                `dynamodbav:"direction"`
	OriginType          string                `dynamodbav:"origin_type"`
	Status              string                `dynamodbav:"status"`
	ServiceCallID       string                `dynamodbav:"service_call_id"`
	ClientID            string                `dynamodbav:"client_id,omitempty"`
	DueDate             string                `dynamodbav:"due_date"`
	Amount              attributevalue.Number `dynamodbav:"amount"`
	PaymentMethod       string                `dynamodbav:"payment_method,omitempty"`
	InstallmentNumber   int                   `dynamodbav:"installment_number"`
	InstallmentsTotal   int                   `dynamodbav:"installments_total"`
	InstallmentsGroupID string                `dynamodbav:"installments_group_id"`
	IntervalDays        int                   `dynamodbav:"interval_days"`
	PaidAt              string                `dynamodbav:"paid_at,omitempty"`
	CreatedAt           string                `dynamodbav:"created_at"`
	UpdatedAt           string                `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists installment rows in DynamoDB and keeps the
// generation guard on the service call record in step with them:
//   - installments_group_id: set while the service call has installments.
//   - installments_remaining: number of rows of that group still stored.
//
// Both attributes are only changed inside the same transaction that writes or
// deletes rows, so guard decisions never depend on the (eventually consistent)
// service_call_id index.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_call_id-index (PK: service_call_id)

type TransactionDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	serviceCallsTable string
	now               func() time.Time
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client, tableName, serviceCallsTable string) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:               ddb,
		tableName:         tableOrDefault(tableName, defaultTransactionsTableName),
		serviceCallsTable: tableOrDefault(serviceCallsTable, defaultServiceCallsTableName),
		now:               time.Now,
	}
}

// CreateBatch claims the guard and writes every row in one transaction.
func (r *TransactionDynamoRepository) CreateBatch(ctx context.Context, serviceCallID, groupID string, txs []entities.FinancialTransaction) error {
	input, err := r.createBatchInput(serviceCallID, groupID, txs)
	if err != nil {
		return err
	}
	if _, err := r.ddb.TransactWriteItems(ctx, input); err != nil {
		if isTransactionConditionFailed(err) {
			return interfaces.ErrConcurrentModification
		}
		return err
	}
	return nil
}

func (r *TransactionDynamoRepository) createBatchInput(serviceCallID, groupID string, txs []entities.FinancialTransaction) (*dynamodb.TransactWriteItemsInput, error) {
	if len(txs) == 0 {
		return nil, errors.New("empty installment batch")
	}
	if len(txs)+1 > maxTransactItems {
		return nil, fmt.Errorf("batch of %d installments exceeds the transaction limit", len(txs))
	}

	actions := make([]types.TransactWriteItem, 0, len(txs)+1)
	actions = append(actions, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.serviceCallsTable),
			Key:                 idKey(serviceCallID),
			ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(#group)"),
			UpdateExpression:    aws.String("SET #group = :group, #remaining = :remaining, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#group":      attrGroupID,
				"#remaining":  attrRemaining,
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":group":      &types.AttributeValueMemberS{Value: groupID},
				":remaining":  intValue(len(txs)),
				":updated_at": &types.AttributeValueMemberS{Value: r.now().UTC().Format(time.RFC3339Nano)},
			},
		},
	})
	for _, tx := range txs {
		av, err := attributevalue.MarshalMap(toTransactionItem(tx))
		if err != nil {
			return nil, err
		}
		actions = append(actions, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                av,
				ConditionExpression: aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems:      actions,
		ClientRequestToken: aws.String(groupID),
	}, nil
}

func (r *TransactionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinancialTransaction{}, nil
	}

	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

// ListByServiceCallID reads the service_call_id index, which may lag behind recent
// writes. It is fine for display; guard decisions use installments_remaining.
func (r *TransactionDynamoRepository) ListByServiceCallID(ctx context.Context, serviceCallID string) ([]entities.FinancialTransaction, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(serviceCallIDIndex),
		KeyConditionExpression: aws.String("service_call_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceCallID},
		},
	})

	txs := make([]entities.FinancialTransaction, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []transactionItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			txs = append(txs, fromTransactionItem(it))
		}
	}
	return txs, nil
}

func (r *TransactionDynamoRepository) UpdateOpen(ctx context.Context, id string, patch entities.TransactionPatch) (entities.FinancialTransaction, error) {
	return r.updateOpen(ctx, r.updateOpenInput(id, patchClauses(patch, r.now())))
}

func (r *TransactionDynamoRepository) TransitionFromOpen(ctx context.Context, id string, status entities.TransactionStatus, paidAt *time.Time) (entities.FinancialTransaction, error) {
	return r.updateOpen(ctx, r.updateOpenInput(id, transitionClauses(status, paidAt, r.now())))
}

// updateClauses are the SET assignments of one UpdateItem with their placeholders.
type updateClauses struct {
	sets   []string
	values map[string]types.AttributeValue
	names  map[string]string
}

func patchClauses(patch entities.TransactionPatch, now time.Time) updateClauses {
	c := updateClauses{
		sets:   []string{"#updated_at = :updated_at"},
		values: map[string]types.AttributeValue{":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)}},
		names:  map[string]string{"#updated_at": "updated_at"},
	}
	if patch.DueDate != nil {
		c.sets = append(c.sets, "#due_date = :due_date")
		c.values[":due_date"] = &types.AttributeValueMemberS{Value: formatDate(*patch.DueDate)}
		c.names["#due_date"] = "due_date"
	}
	if patch.Amount != nil {
		c.sets = append(c.sets, "#amount = :amount")
		c.values[":amount"] = numberValue(*patch.Amount)
		c.names["#amount"] = "amount"
	}
	return c
}

func transitionClauses(status entities.TransactionStatus, paidAt *time.Time, now time.Time) updateClauses {
	c := updateClauses{
		sets: []string{"#status = :status", "#updated_at = :updated_at"},
		values: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
		names: map[string]string{"#updated_at": "updated_at"},
	}
	if paidAt != nil {
		c.sets = append(c.sets, "#paid_at = :paid_at")
		c.values[":paid_at"] = &types.AttributeValueMemberS{Value: formatTime(*paidAt)}
		c.names["#paid_at"] = "paid_at"
	}
	return c
}

// updateOpenInput applies the clauses only while the row exists and is aberto.
func (r *TransactionDynamoRepository) updateOpenInput(id string, c updateClauses) *dynamodb.UpdateItemInput {
	values := maps.Clone(c.values)
	values[":aberto"] = &types.AttributeValueMemberS{Value: string(entities.TransactionStatusAberto)}

	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :aberto"),
		UpdateExpression:          aws.String("SET " + strings.Join(c.sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(c.names, map[string]string{"#id": "id", "#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	}
}

// updateOpen runs a conditional update. A failed condition yields a zero value.
func (r *TransactionDynamoRepository) updateOpen(ctx context.Context, input *dynamodb.UpdateItemInput) (entities.FinancialTransaction, error) {
	out, err := r.ddb.UpdateItem(ctx, input)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.FinancialTransaction{}, nil
		}
		return entities.FinancialTransaction{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FinancialTransaction{}, nil
	}
	var it transactionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FinancialTransaction{}, err
	}
	return fromTransactionItem(it), nil
}

// DeleteOpen removes an aberto row and decrements installments_remaining in the
// same transaction. A row that is missing or no longer open yields a zero value.
func (r *TransactionDynamoRepository) DeleteOpen(ctx context.Context, id string) (entities.FinancialTransaction, error) {
	tx, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.FinancialTransaction{}, err
	}
	if tx.ID == "" || !tx.IsOpen() {
		return entities.FinancialTransaction{}, nil
	}

	if _, err := r.ddb.TransactWriteItems(ctx, r.deleteOpenInput(tx)); err != nil {
		switch {
		case transactionConditionFailedAt(err, 0):
			return entities.FinancialTransaction{}, nil
		case isTransactionConditionFailed(err):
			return entities.FinancialTransaction{}, interfaces.ErrConcurrentModification
		}
		return entities.FinancialTransaction{}, err
	}
	return tx, nil
}

func (r *TransactionDynamoRepository) deleteOpenInput(tx entities.FinancialTransaction) *dynamodb.TransactWriteItemsInput {
	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName:           aws.String(r.tableName),
					Key:                 idKey(tx.ID),
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :aberto"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":aberto": &types.AttributeValueMemberS{Value: string(entities.TransactionStatusAberto)},
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.serviceCallsTable),
					Key:                 idKey(tx.ServiceCallID),
					ConditionExpression: aws.String("#group = :group"),
					UpdateExpression:    aws.String("ADD #remaining :minus_one"),
					ExpressionAttributeNames: map[string]string{
						"#group":     attrGroupID,
						"#remaining": attrRemaining,
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":group":     &types.AttributeValueMemberS{Value: tx.InstallmentsGroupID},
						":minus_one": intValue(-1),
					},
				},
			},
		},
	}
}

// DeleteAllByServiceCallID removes every row of the current group, whatever its
// status, and releases the guard in a single transaction. The rows come from the
// index; the transaction only commits when their count matches
// installments_remaining, so rows the index has not caught up with are never
// left behind without a guard.
func (r *TransactionDynamoRepository) DeleteAllByServiceCallID(ctx context.Context, serviceCallID string) (int, error) {
	guard, err := r.loadGuard(ctx, serviceCallID)
	if err != nil {
		return 0, err
	}
	if guard.GroupID == "" {
		return 0, nil
	}

	txs, err := r.ListByServiceCallID(ctx, serviceCallID)
	if err != nil {
		return 0, err
	}
	ids := lo.FilterMap(txs, func(tx entities.FinancialTransaction, _ int) (string, bool) {
		return tx.ID, tx.InstallmentsGroupID == guard.GroupID
	})
	if len(ids) != guard.Remaining {
		return 0, fmt.Errorf("%w: index lists %d of %d installments", interfaces.ErrConcurrentModification, len(ids), guard.Remaining)
	}

	input, err := r.clearInput(serviceCallID, guard.GroupID, ids)
	if err != nil {
		return 0, err
	}
	if _, err := r.ddb.TransactWriteItems(ctx, input); err != nil {
		if isTransactionConditionFailed(err) {
			return 0, interfaces.ErrConcurrentModification
		}
		return 0, err
	}
	return len(ids), nil
}

func (r *TransactionDynamoRepository) clearInput(serviceCallID, groupID string, ids []string) (*dynamodb.TransactWriteItemsInput, error) {
	if len(ids)+1 > maxTransactItems {
		return nil, fmt.Errorf("%d installments exceed the transaction limit", len(ids))
	}

	actions := make([]types.TransactWriteItem, 0, len(ids)+1)
	for _, id := range ids {
		actions = append(actions, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName:           aws.String(r.tableName),
				Key:                 idKey(id),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
			},
		})
	}
	actions = append(actions, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.serviceCallsTable),
			Key:                 idKey(serviceCallID),
			ConditionExpression: aws.String("#group = :group AND #remaining = :count"),
			UpdateExpression:    aws.String("REMOVE #group, #remaining"),
			ExpressionAttributeNames: map[string]string{
				"#group":     attrGroupID,
				"#remaining": attrRemaining,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":group": &types.AttributeValueMemberS{Value: groupID},
				":count": intValue(len(ids)),
			},
		},
	})
	return &dynamodb.TransactWriteItemsInput{TransactItems: actions}, nil
}

// ReleaseGuard clears the guard only if it still points at groupID and no row of
// the group remains. Otherwise it is a no-op.
func (r *TransactionDynamoRepository) ReleaseGuard(ctx context.Context, serviceCallID, groupID string) error {
	_, err := r.ddb.UpdateItem(ctx, r.releaseGuardInput(serviceCallID, groupID))
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

func (r *TransactionDynamoRepository) releaseGuardInput(serviceCallID, groupID string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.serviceCallsTable),
		Key:                 idKey(serviceCallID),
		ConditionExpression: aws.String("#group = :group AND #remaining <= :zero"),
		UpdateExpression:    aws.String("REMOVE #group, #remaining"),
		ExpressionAttributeNames: map[string]string{
			"#group":     attrGroupID,
			"#remaining": attrRemaining,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":group": &types.AttributeValueMemberS{Value: groupID},
			":zero":  intValue(0),
		},
	}
}

type guardState struct {
	GroupID   string `dynamodbav:"installments_group_id"`
	Remaining int    `dynamodbav:"installments_remaining"`
}

func (r *TransactionDynamoRepository) loadGuard(ctx context.Context, serviceCallID string) (guardState, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.serviceCallsTable),
		Key:                  idKey(serviceCallID),
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#group, #remaining"),
		ExpressionAttributeNames: map[string]string{
			"#group":     attrGroupID,
			"#remaining": attrRemaining,
		},
	})
	if err != nil {
		return guardState{}, err
	}
	var g guardState
	if len(out.Item) == 0 {
		return g, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return guardState{}, err
	}
	return g, nil
}

func toTransactionItem(tx entities.FinancialTransaction) transactionItem {
	it := transactionItem{
		ID:                  tx.ID,
		Direction:           string(tx.Direction),
		OriginType:          string(tx.OriginType),
		Status:              string(tx.Status),
		ServiceCallID:       tx.ServiceCallID,
		ClientID:            tx.ClientID,
		DueDate:             formatDate(tx.DueDate),
		Amount:              toNumber(tx.Amount),
		PaymentMethod:       tx.PaymentMethod,
		InstallmentNumber:   tx.InstallmentNumber,
		InstallmentsTotal:   tx.InstallmentsTotal,
		InstallmentsGroupID: tx.InstallmentsGroupID,
		IntervalDays:        tx.IntervalDays,
		CreatedAt:           formatTime(tx.CreatedAt),
		UpdatedAt:           formatTime(tx.UpdatedAt),
	}
	if tx.PaidAt != nil {
		it.PaidAt = formatTime(*tx.PaidAt)
	}
	return it
}

func fromTransactionItem(it transactionItem) entities.FinancialTransaction {
	tx := entities.FinancialTransaction{
		ID:                  it.ID,
		Direction:           entities.TransactionDirection(it.Direction),
		OriginType:          entities.TransactionOrigin(it.OriginType),
		Status:              entities.TransactionStatus(it.Status),
		ServiceCallID:       it.ServiceCallID,
		ClientID:            it.ClientID,
		DueDate:             parseDate(it.DueDate),
		Amount:              fromNumber(it.Amount),
		PaymentMethod:       it.PaymentMethod,
		InstallmentNumber:   it.InstallmentNumber,
		InstallmentsTotal:   it.InstallmentsTotal,
		InstallmentsGroupID: it.InstallmentsGroupID,
		IntervalDays:        it.IntervalDays,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		tx.PaidAt = &paidAt
	}
	return tx
}
