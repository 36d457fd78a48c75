package processor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jdwit/s3-to-dynamodb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessObject(t *testing.T) {
	s3Object := types.S3ObjectInfo{Bucket: "testBucket", Key: "testKey"}
	fixed := time.Date(2024, time.November, 17, 12, 0, 0, 0, time.UTC)

	t.Run("Successful Processing", func(t *testing.T) {
		mockS3Api := new(MockS3Api)
		mockS3Api.On("GetObjectWithContext", mock.Anything, getObjectInput("testBucket", "testKey")).
			Return(objectOutput(`{"id":"123","data":"testdata"}`), nil)
		mockTarget := new(MockTarget)
		mockTarget.On("PutRecord", mock.Anything, mock.Anything).Return(nil)

		p := &Processor{s3Client: mockS3Api, target: mockTarget, now: func() time.Time { return fixed }}
		err := p.ProcessObject(context.Background(), s3Object)
		require.NoError(t, err)

		mockTarget.AssertCalled(t, "PutRecord", mock.Anything, types.Record{
			ID:        "123",
			Timestamp: fixed.UnixMilli(),
			Data:      "testdata",
		})
	})

	t.Run("Read error", func(t *testing.T) {
		mockS3Api := new(MockS3Api)
		mockS3Api.On("GetObjectWithContext", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("access denied"))
		mockTarget := new(MockTarget)

		p := NewProcessor(mockS3Api, mockTarget)
		err := p.ProcessObject(context.Background(), s3Object)

		var retrievalErr *RetrievalError
		require.True(t, errors.As(err, &retrievalErr))
		assert.Equal(t, s3Object, retrievalErr.Object)
		assert.Equal(t, "failed to get object s3://testBucket/testKey: access denied", err.Error())
		mockTarget.AssertNotCalled(t, "PutRecord", mock.Anything, mock.Anything)
	})

	t.Run("Parse error", func(t *testing.T) {
		mockS3Api := new(MockS3Api)
		mockS3Api.On("GetObjectWithContext", mock.Anything, mock.Anything).Return(objectOutput(`{"id":`), nil)
		mockTarget := new(MockTarget)

		p := NewProcessor(mockS3Api, mockTarget)
		err := p.ProcessObject(context.Background(), s3Object)

		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "failed to parse object s3://testBucket/testKey: invalid JSON")
		mockTarget.AssertNotCalled(t, "PutRecord", mock.Anything, mock.Anything)
	})

	t.Run("Write error", func(t *testing.T) {
		mockS3Api := new(MockS3Api)
		mockS3Api.On("GetObjectWithContext", mock.Anything, mock.Anything).
			Return(objectOutput(`{"id":"123","data":"testdata"}`), nil)
		writeErr := fmt.Errorf("throttled")
		mockTarget := new(MockTarget)
		mockTarget.On("PutRecord", mock.Anything, mock.Anything).Return(writeErr)

		p := NewProcessor(mockS3Api, mockTarget)
		err := p.ProcessObject(context.Background(), s3Object)

		var persistenceErr *PersistenceError
		require.True(t, errors.As(err, &persistenceErr))
		assert.Equal(t, "123", persistenceErr.RecordID)
		assert.True(t, errors.Is(err, writeErr))
		assert.Equal(t, "failed to store record 123 from s3://testBucket/testKey: throttled", err.Error())
	})
}
