package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"log"
	"strings"
	"sync"
)

// concurrency is the max number of objects ingested at once in cli mode
const concurrency = 10

func (p *Processor) processS3Objects(ctx context.Context, s3Objects []types.S3ObjectInfo) error {
	errs := make(chan error, len(s3Objects)) // buffered channel for errors
	var wg sync.WaitGroup
	concurrent := make(chan int, concurrency) // buffered channel for concurrency

	for _, s3obj := range s3Objects {
		wg.Add(1)
		concurrent <- 1
		go func(s3obj types.S3ObjectInfo) {
			defer func() {
				log.Printf("completed processing s3://%s/%s", s3obj.Bucket, s3obj.Key)
				wg.Done()
				<-concurrent
			}()
			if err := p.ProcessObject(ctx, s3obj); err != nil {
				errs <- err
			}
		}(s3obj)
	}

	go func() {
		wg.Wait()
		close(errs)
	}()

	var errorList []error
	for err := range errs {
		errorList = append(errorList, err)
	}

	if len(errorList) > 0 {
		return fmt.Errorf("encountered errors: %v", errorList)
	}

	return nil
}

// HandleLambdaEvent ingests the object referenced by the first record of the event.
// Any further records are ignored. The raw payload is kept so it can be logged unchanged.
func (p *Processor) HandleLambdaEvent(ctx context.Context, rawEvent json.RawMessage) error {
	var event types.S3ObjectCreatedEvent
	if err := json.Unmarshal(rawEvent, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if len(event.Records) == 0 {
		return ErrNoRecords
	}

	record := event.Records[0]
	key, err := decodeKey(record.S3.Object.Key)
	if err != nil {
		return err
	}

	payload, err := p.ingest(ctx, types.S3ObjectInfo{
		Bucket: record.S3.Bucket.Name,
		Key:    key,
	})
	if err != nil {
		return err
	}

	logJSON("Received event", rawEvent)
	logJSON("Received data", payload.Fields)

	return nil
}

// HandleS3URL ingests every object under an s3://bucket/prefix url.
func (p *Processor) HandleS3URL(ctx context.Context, url string) error {
	bucket, prefix, err := parseS3Url(url)
	if err != nil {
		return fmt.Errorf("failed to parse S3 URL: %v", err)
	}

	var s3Objects []types.S3ObjectInfo
	var continuationToken *string
	for {
		resp, err := p.s3Client.ListObjectsV2WithContext(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return fmt.Errorf("failed to list objects: %v", err)
		}

		for _, item := range resp.Contents {
			s3Objects = append(s3Objects, types.S3ObjectInfo{
				Bucket: bucket,
				Key:    aws.StringValue(item.Key),
			})
		}

		if resp.IsTruncated == nil || !*resp.IsTruncated {
			break
		}
		continuationToken = resp.NextContinuationToken
	}

	return p.processS3Objects(ctx, s3Objects)
}

func parseS3Url(url string) (bucket string, prefix string, err error) {
	if !strings.HasPrefix(url, "s3://") {
		return "", "", fmt.Errorf("invalid S3 URL, missing 's3://' prefix")
	}
	trimmedS3URL := strings.TrimPrefix(url, "s3://")
	splitPos := strings.Index(trimmedS3URL, "/")
	if splitPos == -1 {
		return "", "", fmt.Errorf("invalid S3 URL, no '/' found after bucket name")
	}
	bucket = trimmedS3URL[:splitPos]
	prefix = trimmedS3URL[splitPos+1:]
	return bucket, prefix, nil
}
