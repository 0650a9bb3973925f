package graph

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/farmdirect/farmdirect-golang/internal/models"
)

var validate = validator.New()

var errInvalidInput = errors.New("invalid input")

// Input structs decoded from GraphQL arguments. The validate tags carry the
// same constraints the storefront enforces client-side.

type SignupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type ProductInput struct {
	Name        string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Image       string  `validate:"required"`
	Category    string  `validate:"required"`
	Quantity    int     `validate:"gte=0"`
}

type OrderItemInput struct {
	ProductID string `validate:"required"`
	Quantity  int    `validate:"gte=1"`
}

func stringArg(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intArg(m map[string]interface{}, key string) int {
	n, _ := m[key].(int)
	return n
}

func floatArg(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		// Whole-number literals arrive as ints even for Float arguments.
		return float64(v)
	}
	return 0
}

func decodeSignupInput(arg interface{}) (*SignupInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil, errInvalidInput
	}
	in := &SignupInput{
		Name:     stringArg(m, "name"),
		Email:    stringArg(m, "email"),
		Password: stringArg(m, "password"),
		Role:     stringArg(m, "role"),
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return in, nil
}

func decodeLoginInput(arg interface{}) (*LoginInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil, errInvalidInput
	}
	in := &LoginInput{
		Email:    stringArg(m, "email"),
		Password: stringArg(m, "password"),
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return in, nil
}

// decodeProductInput validates the input and resolves its category against
// the closed category set.
func decodeProductInput(arg interface{}) (*ProductInput, models.Category, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil, "", errInvalidInput
	}
	in := &ProductInput{
		Name:        stringArg(m, "name"),
		Description: stringArg(m, "description"),
		Price:       floatArg(m, "price"),
		Image:       stringArg(m, "image"),
		Category:    stringArg(m, "category"),
		Quantity:    intArg(m, "quantity"),
	}
	if err := validate.Struct(in); err != nil {
		return nil, "", err
	}
	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return nil, "", err
	}
	return in, category, nil
}

func decodeOrderItemInput(arg interface{}) (*OrderItemInput, error) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil, errInvalidInput
	}
	in := &OrderItemInput{
		ProductID: stringArg(m, "productId"),
		Quantity:  intArg(m, "quantity"),
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	return in, nil
}
