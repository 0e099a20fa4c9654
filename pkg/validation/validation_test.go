package validation_test

import (
	"testing"

	"go-internship-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name  string `json:"name" validate:"required,valid_name"`
	Age   int    `json:"age" validate:"required,min=14,max=100"`
	City  string `json:"city" validate:"required"`
	Notes string `json:"notes" validate:"no_emoji"`
}

func TestFirstErrorUsesJSONName(t *testing.T) {
	v := validation.New()

	err := v.Struct(form{Name: "Asha", Age: 21})
	require.Error(t, err)
	assert.Equal(t, "city is required", validation.FirstError(err))
}

func TestFirstErrorFollowsFieldOrder(t *testing.T) {
	v := validation.New()

	err := v.Struct(form{})
	require.Error(t, err)
	assert.Equal(t, "name is required", validation.FirstError(err))
	assert.Len(t, validation.FormatValidationErrors(err), 3)
}

func TestCustomValidators(t *testing.T) {
	v := validation.New()

	err := v.Struct(form{Name: "R2D2", Age: 20, City: "Pune"})
	require.Error(t, err)
	assert.Contains(t, validation.FirstError(err), "name may only contain")

	err = v.Struct(form{Name: "Ravi", Age: 20, City: "Pune", Notes: "hi 😀"})
	require.Error(t, err)
	assert.Equal(t, "notes must not contain emoji or symbols", validation.FirstError(err))

	err = v.Struct(form{Name: "Ravi", Age: 5, City: "Pune"})
	require.Error(t, err)
	assert.Equal(t, "age must be at least 14", validation.FirstError(err))
}
