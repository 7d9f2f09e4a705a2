package irerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonatina-go/sonatina/ir/irerr"
)

func TestErrorWithoutCause(t *testing.T) {
	err := irerr.New("isa.Resolve", "sparc", nil)
	assert.Equal(t, `isa.Resolve "sparc"`, err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestErrorWrapsCause(t *testing.T) {
	cause := errors.New("file not found")
	err := irerr.New("filecheck.Load", "fixtures/foo.ir", cause)
	assert.Equal(t, `filecheck.Load "fixtures/foo.ir": file not found`, err.Error())
	assert.ErrorIs(t, err, cause)
}
