package targets

import (
	"context"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jdwit/s3-to-dynamodb/internal/config"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"log"
)

type Target interface {
	PutRecord(ctx context.Context, record types.Record) error
}

// NewTarget returns the DynamoDB target, or the stdout target for dry runs.
func NewTarget(cfg config.Config, sess *session.Session) Target {
	if cfg.DryRun {
		log.Println("dry run, records are written to stdout")
		return NewStdoutTarget()
	}

	return NewDynamoDBTarget(dynamodb.New(sess), config.TableName)
}
