package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge-go/core/validate"
)

type registrationForm struct {
	Username  string `validate:"required,min=3"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	Password2 string `validate:"required,eqfield=Password"`
}

func TestStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid input passes", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(registrationForm{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "secret123",
			Password2: "secret123",
		})
		assert.NoError(t, err)
	})

	t.Run("mismatched passwords", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(registrationForm{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "abc12345",
			Password2: "xyz12345",
		})
		require.Error(t, err)
		assert.Equal(t, "Passwords do not match", err.Error())

		var errs validate.Errors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "Password2", errs[0].Field)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(registrationForm{
			Username:  "alice",
			Email:     "not-an-email",
			Password:  "secret123",
			Password2: "secret123",
		})
		require.Error(t, err)
		assert.Equal(t, "Enter a valid email address", err.Error())
	})

	t.Run("missing required fields report first failure", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(registrationForm{})
		require.Error(t, err)

		var errs validate.Errors
		require.ErrorAs(t, err, &errs)
		assert.Len(t, errs, 4)
		assert.Equal(t, "Username is required", errs[0].Message)
	})
}
