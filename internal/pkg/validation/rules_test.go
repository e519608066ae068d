package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dateRange struct {
	StartDate string `form:"start_date" binding:"omitempty,isodate" validate:"omitempty,isodate"`
	Name      string `json:"student_name" validate:"required"`
}

func TestConfigure(t *testing.T) {
	v := validator.New()
	require.NoError(t, Configure(v))

	t.Run("ValidDate", func(t *testing.T) {
		assert.NoError(t, v.Struct(dateRange{StartDate: "2024-02-29", Name: "x"}))
	})

	t.Run("InvalidDate", func(t *testing.T) {
		err := v.Struct(dateRange{StartDate: "29/02/2024", Name: "x"})
		require.Error(t, err)
		verrs := err.(validator.ValidationErrors)
		assert.Equal(t, "start_date", verrs[0].Field())
		assert.Equal(t, "isodate", verrs[0].Tag())
	})

	t.Run("FieldNamesFromTags", func(t *testing.T) {
		err := v.Struct(dateRange{})
		require.Error(t, err)
		verrs := err.(validator.ValidationErrors)
		assert.Equal(t, "student_name", verrs[0].Field())
	})
}
