package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayload_ShortMessageAlwaysPresent(t *testing.T) {
	err := QueryFailure(errors.New("bleve: index closed"))

	p := Payload(err, false)

	assert.Equal(t, "query execution failed", p.Error)
	assert.Equal(t, ErrCodeQueryFailed, p.Code)
	assert.Nil(t, p.Details)
}

func TestPayload_VerboseIncludesCause(t *testing.T) {
	cause := errors.New("bleve: index closed")
	err := QueryFailure(cause)

	p := Payload(err, true)

	assert.Equal(t, "bleve: index closed", p.Details["cause"])
}

func TestPayload_VerboseIncludesStructuredDetails(t *testing.T) {
	err := New(ErrCodeInvalidQuery, "query rejected", nil).WithDetail("query", "x")

	quiet := Payload(err, false)
	verbose := Payload(err, true)

	assert.Nil(t, quiet.Details)
	assert.Equal(t, "x", verbose.Details["query"])
}

func TestPayload_PlainErrorClassifiedInternal(t *testing.T) {
	p := Payload(errors.New("boom"), false)

	assert.Equal(t, ErrCodeInternal, p.Code)
	assert.Equal(t, "boom", p.Error)
}

func TestPayload_NilError(t *testing.T) {
	p := Payload(nil, true)

	assert.Empty(t, p.Error)
	assert.Empty(t, p.Code)
}

func TestPayload_VerboseWithNoDetailsOmitsMap(t *testing.T) {
	p := Payload(NotReady(), true)

	assert.Nil(t, p.Details)
}
