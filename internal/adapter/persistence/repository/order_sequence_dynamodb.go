package repository

import (
	"context"
	"fmt"
	"strconv"

	"oficina_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const serviceOrderCounter = "service_order"

// OrderSequenceDynamo hands out order numbers from an atomic counter item.
//
// Table requirements:
//   - PK: id (string); the counter lives in attribute "value" (number)
type OrderSequenceDynamo struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderSequence = (*OrderSequenceDynamo)(nil)

func NewOrderSequenceDynamo(ddb *dynamodb.Client, tableName string) *OrderSequenceDynamo {
	return &OrderSequenceDynamo{ddb: ddb, tableName: tableName}
}

func (s *OrderSequenceDynamo) Next(ctx context.Context) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.tableName),
		Key:              idKey(serviceOrderCounter),
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s returned no value", serviceOrderCounter)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
