package targets

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
)

type DynamoDBAPI interface {
	PutItemWithContext(ctx aws.Context, input *dynamodb.PutItemInput, opts ...request.Option) (*dynamodb.PutItemOutput, error)
}

type DynamoDBTarget struct {
	client    DynamoDBAPI
	tableName string
	encoder   *dynamodbattribute.Encoder
}

func NewDynamoDBTarget(client DynamoDBAPI, tableName string) *DynamoDBTarget {
	// Keep empty strings, maps and lists as they are instead of turning them into NULL
	encoder := dynamodbattribute.NewEncoder(func(e *dynamodbattribute.Encoder) {
		e.NullEmptyString = false
		e.EnableEmptyCollections = true
	})

	return &DynamoDBTarget{client: client, tableName: tableName, encoder: encoder}
}

func (d *DynamoDBTarget) PutRecord(ctx context.Context, record types.Record) error {
	av, err := d.encoder.Encode(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.tableName),
		Item:      av.M,
	})
	if err != nil {
		return fmt.Errorf("failed to put item into table %s: %w", d.tableName, err)
	}

	return nil
}
