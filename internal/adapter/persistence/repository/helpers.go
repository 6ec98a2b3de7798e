package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oficina_xpto/internal/domain/valueobjects"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type moneyItem struct {
	Amount   string `dynamodbav:"amount"`
	Currency string `dynamodbav:"currency"`
}

func toMoneyItem(m valueobjects.Money) moneyItem {
	return moneyItem{Amount: m.Amount().StringFixed(2), Currency: string(m.Currency())}
}

func fromMoneyItem(it moneyItem) (valueobjects.Money, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return valueobjects.Money{}, fmt.Errorf("stored amount %q: %w", it.Amount, err)
	}
	return valueobjects.NewMoney(amount, valueobjects.Currency(it.Currency))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// timeReader parses stored timestamps and keeps the first failure, so a
// mapper can fill a whole struct literal and check once.
type timeReader struct {
	err error
}

func (r *timeReader) at(field, s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("stored %s %q: %w", field, s, err)
	}
	return t
}

func (r *timeReader) optional(field, s string) *time.Time {
	if s == "" {
		return nil
	}
	t := r.at(field, s)
	return &t
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// putNew writes item only if no row with the same id exists.
func putNew(ctx context.Context, ddb *dynamodb.Client, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putVersioned replaces the stored row only while its version still equals
// expected; item must already carry expected+1.
func putVersioned(ctx context.Context, ddb *dynamodb.Client, table string, item any, expected int64) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: fmt.Sprint(expected)},
		},
	})
	if err != nil && isConditionFailed(err) {
		return fmt.Errorf("%w: %s version %d", interfaces.ErrConcurrentModification, table, expected)
	}
	return err
}

// getByID reports false when the row does not exist.
func getByID(ctx context.Context, ddb *dynamodb.Client, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func deleteByID(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	return err
}

// queryIndex reads every page of an equality query on a single-attribute GSI.
func queryIndex[T any](ctx context.Context, ddb *dynamodb.Client, table, index, attr, value string) ([]T, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}

	var items []T
	for {
		out, err := ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []T
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
