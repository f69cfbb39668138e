package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebastienrousseau/commons/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "alice"),
			validator.MinLen("name", "alice", 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects all failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", ""),
			validator.ValidEmail("email", "bogus"),
			validator.MinNum("age", 10, 18),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.ElementsMatch(t, []string{"name", "email", "age"}, verrs.Fields())
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validator.Apply())
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "name", Message: "field is required"},
		{Field: "name", Message: "must be at least 3 characters long"},
		{Field: "email", Message: "must be a valid email address"},
	}

	t.Run("error message", func(t *testing.T) {
		t.Parallel()

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed")
		assert.Contains(t, msg, "name: field is required")
		assert.Contains(t, msg, "email: must be a valid email address")
	})

	t.Run("has and get", func(t *testing.T) {
		t.Parallel()

		assert.True(t, errs.Has("name"))
		assert.False(t, errs.Has("age"))
		assert.Len(t, errs.Get("name"), 2)
		assert.Empty(t, errs.Get("age"))
	})

	t.Run("fields deduplicated", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"name", "email"}, errs.Fields())
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		var ve validator.ValidationErrors
		assert.True(t, ve.IsEmpty())
		ve.Add(validator.ValidationError{Field: "x", Message: "bad"})
		assert.False(t, ve.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		inner := validator.Apply(validator.Required("name", ""))
		wrapped := fmt.Errorf("saving user: %w", inner)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, "name", verrs[0].Field)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
