package book

import (
	"fmt"

	"bookshelf/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := registerValidations(validate); err != nil {
		panic(err)
	}
}

func registerValidations(v *validator.Validate) error {
	return v.RegisterValidation("category", validateCategory)
}

func validateCategory(fl validator.FieldLevel) bool {
	return entity.Category(fl.Field().String()).Valid()
}

// ValidateBook checks that b is a well-formed stored record.
func ValidateBook(b entity.Book) error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "gt":
		return fmt.Errorf("%s must be greater than %s", fe.Field(), fe.Param())
	case "category":
		return fmt.Errorf("%s must be one of %v", fe.Field(), entity.Categories())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}
