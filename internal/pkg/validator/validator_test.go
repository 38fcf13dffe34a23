package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func TestFieldErrors_ValidStruct(t *testing.T) {
	Setup()
	err := binding.Validator.ValidateStruct(signup{Name: "A", Email: "a@example.com", Password: "secret1"})
	assert.Nil(t, FieldErrors(err))
}

func TestFieldErrors_UsesJSONNames(t *testing.T) {
	Setup()
	errs := FieldErrors(binding.Validator.ValidateStruct(signup{Email: "nope", Password: "123"}))
	require.Len(t, errs, 3)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "name is required", byField["name"])
	assert.Equal(t, "must be a valid email address", byField["email"])
	assert.Equal(t, "must be at least 6 characters", byField["password"])
}

func TestFieldErrors_NonValidation(t *testing.T) {
	errs := FieldErrors(errors.New("unexpected EOF"))
	require.Len(t, errs, 1)
	assert.Equal(t, "body", errs[0].Field)
}
