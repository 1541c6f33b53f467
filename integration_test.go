package fieldval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldval"
)

type orderForm struct {
	Email      string
	CardNumber string
	Amount     float64
	Quantity   int
	ShipDate   time.Time
	Items      []string
	Status     string
	Promo      string
}

func orderValidator(form *orderForm) *fieldval.Validator {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	v := fieldval.New()
	v.Field("email", "string", func() any { return form.Email }).
		Add(fieldval.Required(), fieldval.EmailAddress())
	v.Field("card_number", "string", func() any { return form.CardNumber }).
		Add(fieldval.Required(), fieldval.CreditCard())
	v.Field("amount", "float", func() any { return form.Amount }).
		Add(fieldval.GreaterThan(0), fieldval.LessOrEqual(10_000))
	v.Field("quantity", "int", func() any { return form.Quantity }).
		Add(fieldval.Between(1, 100))
	v.Field("ship_date", "date", func() any { return form.ShipDate }).
		Add(fieldval.After(now))
	v.Field("items", "[]string", func() any { return form.Items }).
		Add(fieldval.Required(), fieldval.Unique(), fieldval.MaxLength(10))
	v.Field("status", "string", func() any { return form.Status }).
		Add(fieldval.In("pending", "paid", "shipped"))
	v.Field("promo", "string", func() any { return form.Promo }).
		Add(fieldval.Custom(func(value any) bool {
			s, _ := value.(string)
			return s == "" || len(s) == 8
		}, "promo code must be 8 characters"))
	return v
}

func validOrder() *orderForm {
	return &orderForm{
		Email:      "buyer@example.com",
		CardNumber: "4532 0151 1283 0366",
		Amount:     99.95,
		Quantity:   2,
		ShipDate:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Items:      []string{"sku-1", "sku-2"},
		Status:     "pending",
		Promo:      "SUMMER24",
	}
}

func TestOrderValidation(t *testing.T) {
	t.Parallel()

	t.Run("complete valid order", func(t *testing.T) {
		res, err := orderValidator(validOrder()).Validate()
		require.NoError(t, err)
		assert.True(t, res.Valid)
		assert.Equal(t, 8, res.FieldCount)
	})

	t.Run("multiple independent failures", func(t *testing.T) {
		form := validOrder()
		form.Email = "nope"
		form.Quantity = 0
		form.Items = []string{"sku-1", "sku-1"}

		res, err := orderValidator(form).Validate()
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, 8, res.FieldCount)
		assert.ElementsMatch(t, []string{"email", "quantity", "items"}, res.Fields())
	})

	t.Run("fail-fast within a field", func(t *testing.T) {
		form := validOrder()
		form.Items = nil

		res, err := orderValidator(form).Validate()
		require.NoError(t, err)
		require.True(t, res.Has("items"))
		// Required fails first; Unique and MaxLength never run.
		assert.Equal(t, []string{"field is required"}, res.Get("items"))
	})

	t.Run("custom predicate failure uses its message", func(t *testing.T) {
		form := validOrder()
		form.Promo = "TOOLONGCODE"

		res, err := orderValidator(form).Validate()
		require.NoError(t, err)
		assert.Equal(t, []string{"promo code must be 8 characters"}, res.Get("promo"))
	})

	t.Run("validator is reusable across runs", func(t *testing.T) {
		form := validOrder()
		v := orderValidator(form)

		res, err := v.Validate()
		require.NoError(t, err)
		assert.True(t, res.Valid)

		form.Status = "unknown"
		res, err = v.Validate()
		require.NoError(t, err)
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"status"}, res.Fields())
	})
}
