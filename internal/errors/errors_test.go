package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "book"}
	assert.Equal(t, "book not found", err.Error())

	assert.True(t, errors.Is(err, ErrBookNotFound))
	assert.False(t, errors.Is(err, ErrMemberNotFound))
}

func TestNotFoundErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading book: %w", ErrBookNotFound)

	assert.True(t, errors.Is(wrapped, ErrBookNotFound))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsAlreadyExists(wrapped))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "member already exists with this nickname in the club", ErrMemberExists.Error())

	noContext := &AlreadyExistsError{Entity: "genre"}
	assert.Equal(t, "genre already exists", noContext.Error())

	assert.True(t, IsAlreadyExists(ErrMemberExists))
	assert.False(t, IsNotFound(ErrMemberExists))
}

func TestValidationError(t *testing.T) {
	withField := &ValidationError{Field: "nickname", Message: "is required"}
	assert.Equal(t, "validation error: nickname - is required", withField.Error())

	withoutField := &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", withoutField.Error())

	assert.True(t, IsValidation(withField))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestConstructors(t *testing.T) {
	nf := NewNotFoundError("attendance")
	assert.Equal(t, "attendance not found", nf.Error())
	assert.True(t, IsNotFound(nf))

	ae := NewAlreadyExistsError("genre", "with this name in the club")
	assert.Equal(t, "genre already exists with this name in the club", ae.Error())
	assert.True(t, IsAlreadyExists(ae))

	ve := NewValidationError("date", "must be YYYY-MM-DD")
	assert.True(t, IsValidation(ve))
}
