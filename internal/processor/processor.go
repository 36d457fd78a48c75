package processor

import (
	"context"
	"encoding/json"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jdwit/s3-to-dynamodb/internal/targets"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"io"
	"log"
	"time"
)

type S3Api interface {
	GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error)
	ListObjectsV2WithContext(ctx aws.Context, input *s3.ListObjectsV2Input, opts ...request.Option) (*s3.ListObjectsV2Output, error)
}

// Processor turns S3 objects holding {"id": ..., "data": ...} documents into table records.
// It holds no per-invocation state and is safe for concurrent use.
type Processor struct {
	s3Client S3Api
	target   targets.Target
	now      func() time.Time
}

func NewProcessor(s3Client S3Api, target targets.Target) *Processor {
	return &Processor{
		s3Client: s3Client,
		target:   target,
		now:      time.Now,
	}
}

// ProcessObject ingests a single object. The key must already be decoded.
func (p *Processor) ProcessObject(ctx context.Context, s3Object types.S3ObjectInfo) error {
	payload, err := p.ingest(ctx, s3Object)
	if err != nil {
		return err
	}
	logJSON("Received data", payload.Fields)

	return nil
}

func (p *Processor) ingest(ctx context.Context, s3Object types.S3ObjectInfo) (types.Payload, error) {
	log.Printf("processing s3://%s/%s", s3Object.Bucket, s3Object.Key)

	obj, err := p.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3Object.Bucket),
		Key:    aws.String(s3Object.Key),
	})
	if err != nil {
		return types.Payload{}, &RetrievalError{Object: s3Object, Err: err}
	}
	defer obj.Body.Close()

	body, err := io.ReadAll(obj.Body)
	if err != nil {
		return types.Payload{}, &RetrievalError{Object: s3Object, Err: err}
	}

	payload, err := parsePayload(body)
	if err != nil {
		return types.Payload{}, &ParseError{Object: s3Object, Err: err}
	}

	record := types.Record{
		ID:        payload.ID,
		Timestamp: p.now().UnixMilli(),
		Data:      payload.Data,
	}
	if err := p.target.PutRecord(ctx, record); err != nil {
		return types.Payload{}, &PersistenceError{Object: s3Object, RecordID: record.ID, Err: err}
	}

	return payload, nil
}

func logJSON(label string, v interface{}) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("error marshaling %s: %v", label, err)
		return
	}
	log.Printf("%s: %s", label, jsonData)
}
