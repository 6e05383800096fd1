package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string  `json:"email" validate:"required,email"`
	Score int     `json:"score" validate:"min=1,max=5"`
	Kind  string  `json:"kind" validate:"oneof=customer shop_owner"`
	Lat   float64 `json:"lat" validate:"latitude"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Email: "a@example.com", Score: 3, Kind: "customer", Lat: 12.9}))

	err := v.Validate(&sample{Email: "nope", Score: 9, Kind: "admin", Lat: 91})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "email must be a valid email")
		assert.Contains(t, err.Error(), "score must be at most 5")
		assert.Contains(t, err.Error(), "kind must be one of: customer shop_owner")
		assert.Contains(t, err.Error(), "lat must be a valid latitude")
	}

	err = v.Validate(&sample{Score: 0, Kind: "customer"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "email is required")
		assert.Contains(t, err.Error(), "score must be at least 1")
	}
}
