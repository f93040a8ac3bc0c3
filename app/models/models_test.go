package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/app/models"
	"github.com/shashiranjanraj/feastbook/pkg/validate"
)

func TestCustomerNames(t *testing.T) {
	c := models.Customer{Name: "  Nguyen Van  An "}
	assert.Equal(t, "An", c.LastName())
	assert.Equal(t, "An, Nguyen Van", c.DisplayName())

	single := models.Customer{Name: "Madonna"}
	assert.Equal(t, "Madonna", single.LastName())
	assert.Equal(t, "Madonna", single.DisplayName())

	assert.Equal(t, "", models.Customer{Name: "   "}.LastName())
}

func TestCustomerEqualityIsByIDOnly(t *testing.T) {
	a := models.Customer{ID: "c0001", Name: "Anna Lee"}
	b := models.Customer{ID: "C0001", Name: "Someone Else"}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(models.Customer{ID: "C0002", Name: "Anna Lee"}))
}

func TestCustomerNormalizeAndValidate(t *testing.T) {
	c := models.Customer{ID: " k1234 ", Name: " Anna Lee ", Phone: "0912345678", Email: "anna@example.com"}
	c.Normalize()
	assert.Equal(t, "K1234", c.ID)
	assert.Equal(t, "Anna Lee", c.Name)
	assert.Empty(t, c.Validate())

	bad := models.Customer{ID: "Z1", Name: "A", Phone: "12", Email: "x"}
	errs := bad.Validate()
	assert.Len(t, errs, 4)
}

func TestNewOrderCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := models.NewOrderCode()
		require.True(t, validate.Match(code, validate.OrderCode), code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 190)
}

func TestNewOrderNormalizes(t *testing.T) {
	when := time.Date(2030, time.May, 1, 18, 30, 0, 0, time.UTC)
	o := models.NewOrder("c0001", "pw001", 3, when)

	assert.Equal(t, "C0001", o.CustomerID)
	assert.Equal(t, "PW001", o.MenuID)
	assert.Equal(t, time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC), o.EventDate)
	assert.Equal(t, "01/05/2030", o.FormattedDate())
	assert.Empty(t, o.Validate())
}

func TestOrderIdentityAndTriple(t *testing.T) {
	day := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	a := models.Order{Code: "ORD-AAAA1111", CustomerID: "C0001", MenuID: "PW001", Tables: 1, EventDate: day}
	b := models.Order{Code: "ord-aaaa1111", CustomerID: "K0002", MenuID: "PW002", Tables: 9, EventDate: day.AddDate(0, 0, 1)}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	c := models.Order{Code: "ORD-BBBB2222", CustomerID: "c0001", MenuID: "pw001", Tables: 4, EventDate: day.Add(10 * time.Hour)}
	assert.False(t, a.Equal(c))
	assert.True(t, a.SameTriple(c))
}

func TestSetMenuIngredientLines(t *testing.T) {
	assert.Nil(t, models.SetMenu{}.IngredientLines())
	m := models.SetMenu{Ingredients: "Soup\nRice"}
	assert.Equal(t, []string{"Soup", "Rice"}, m.IngredientLines())
}
