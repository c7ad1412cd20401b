package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/warehouse/pkg/validate"
)

type supplierInput struct {
	Name  string  `json:"supplier_name" validate:"notblank,max=20"`
	Email *string `json:"email"         validate:"omitempty,email"`
	Phone string  `json:"phone"         validate:"required,phone"`
}

type purchaseInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Leftover  int  `json:"leftover"   validate:"gte=0"`
}

func str(s string) *string { return &s }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(supplierInput{Name: "Acme", Email: str("a@acme.example"), Phone: "+7(912)345-67-89"})
	assert.False(t, validate.HasErrors(errs), "%v", errs)

	errs = validate.Struct(&supplierInput{Name: "Acme", Phone: "+7(912)345-67-89"})
	assert.Empty(t, errs, "email is optional")
}

func TestPhoneRule(t *testing.T) {
	for _, phone := range []string{"8-912-345-67-89", "+7 912 345 67 89", "+7(912)345-67-8", "+8(912)345-67-89", ""} {
		errs := validate.Struct(supplierInput{Name: "Acme", Phone: phone})
		assert.Contains(t, errs, "phone", phone)
	}

	errs := validate.Struct(supplierInput{Name: "Acme", Phone: "8-912-345-67-89"})
	assert.Contains(t, errs["phone"], validate.PhoneFormat)

	assert.True(t, validate.Phone("+7(912)345-67-89"))
	assert.False(t, validate.Phone("+7(912)345-67-89 "))
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(supplierInput{Name: "Acme", Email: str("not-an-email"), Phone: "+7(912)345-67-89"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestNotBlankAndMax(t *testing.T) {
	errs := validate.Struct(supplierInput{Name: "   ", Phone: "+7(912)345-67-89"})
	assert.Equal(t, "The supplier_name field is required.", errs["supplier_name"])

	errs = validate.Struct(supplierInput{Name: "a name that is far too long", Phone: "+7(912)345-67-89"})
	assert.Equal(t, "The supplier_name may not be greater than 20 characters.", errs["supplier_name"])
}

func TestNumericRules(t *testing.T) {
	errs := validate.Struct(purchaseInput{Leftover: -1})
	assert.Equal(t, "The product_id field is required.", errs["product_id"])
	assert.Equal(t, "The leftover must be greater than or equal to 0.", errs["leftover"])

	errs = validate.Struct(purchaseInput{ProductID: 1, Leftover: 0})
	assert.Empty(t, errs)
}

func TestNonStruct(t *testing.T) {
	assert.Empty(t, validate.Struct(42))
}
