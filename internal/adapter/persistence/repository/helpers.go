package repository

import (
	"errors"
	"maps"
	"strconv"
	"time"

	"os_financeiro/internal/domain/finance"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const serviceCallIDIndex = "service_call_id-index"

func tableOrDefault(name, def string) string {
	if name != "" {
		return name
	}
	return def
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

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

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return finance.FormatDate(t)
}

func parseDate(s string) time.Time {
	t, err := finance.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Money is stored as a DynamoDB number so it stays sortable and filterable.
func toNumber(d decimal.Decimal) attributevalue.Number {
	return attributevalue.Number(d.String())
}

func fromNumber(n attributevalue.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func numberValue(d decimal.Decimal) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: d.String()}
}

func intValue(n int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// isTransactionConditionFailed reports whether a TransactWriteItems call was
// cancelled because one of its condition expressions did not hold.
func isTransactionConditionFailed(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

// transactionConditionFailedAt reports whether the action at index of a cancelled
// TransactWriteItems call failed its condition.
func transactionConditionFailedAt(err error, index int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || index >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[index].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}
