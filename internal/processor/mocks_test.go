package processor

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"github.com/stretchr/testify/mock"
)

type MockS3Api struct {
	mock.Mock
}

func (m *MockS3Api) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *MockS3Api) ListObjectsV2WithContext(ctx aws.Context, input *s3.ListObjectsV2Input, _ ...request.Option) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*s3.ListObjectsV2Output)
	return out, args.Error(1)
}

type MockTarget struct {
	mock.Mock
}

func (m *MockTarget) PutRecord(ctx context.Context, record types.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func objectOutput(body string) *s3.GetObjectOutput {
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}
}

func getObjectInput(bucket, key string) *s3.GetObjectInput {
	return &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)}
}

// putRecords returns the records passed to the target, in call order.
func putRecords(m *MockTarget) []types.Record {
	var records []types.Record
	for _, call := range m.Calls {
		if call.Method == "PutRecord" {
			records = append(records, call.Arguments.Get(1).(types.Record))
		}
	}
	return records
}
