package processor

import (
	"errors"
	"fmt"
	"github.com/jdwit/s3-to-dynamodb/internal/types"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrNoRecords    = errors.New("event contains no records")
	ErrInvalidKey   = errors.New("invalid object key")
)

// RetrievalError is returned when the source object cannot be read.
type RetrievalError struct {
	Object types.S3ObjectInfo
	Err    error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to get object s3://%s/%s: %v", e.Object.Bucket, e.Object.Key, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// ParseError is returned when the object content is not a valid payload.
type ParseError struct {
	Object types.S3ObjectInfo
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse object s3://%s/%s: %v", e.Object.Bucket, e.Object.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PersistenceError is returned when the record cannot be written.
type PersistenceError struct {
	Object   types.S3ObjectInfo
	RecordID string
	Err      error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to store record %s from s3://%s/%s: %v", e.RecordID, e.Object.Bucket, e.Object.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
