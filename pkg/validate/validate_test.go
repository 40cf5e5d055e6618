package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "Valid ukrainian number", phone: "+380501234567", valid: true},
		{name: "Valid short number", phone: "+1234567890", valid: true},
		{name: "Missing plus", phone: "380501234567", valid: false},
		{name: "Contains letters", phone: "+38050abc4567", valid: false},
		{name: "Too short", phone: "+123456", valid: false},
		{name: "Too long", phone: "+123456789012345678", valid: false},
		{name: "Empty", phone: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}

func TestStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Phone string `validate:"required,phone"`
	}

	err := Struct(form{Email: "user@example.com", Phone: "+380501234567"})
	assert.NoError(t, err)

	err = Struct(form{Email: "not-an-email", Phone: "+380501234567"})
	assert.Error(t, err)

	err = Struct(form{Email: "user@example.com", Phone: "nope"})
	assert.Error(t, err)
}
