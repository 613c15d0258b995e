package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/notulensi/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("action_status", func(fl validator.FieldLevel) bool {
		return entities.ActionItemStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("action_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "all" || entities.ActionItemStatus(s).IsValid()
	})
	_ = v.RegisterValidation("meeting_status", func(fl validator.FieldLevel) bool {
		return entities.MeetingStatus(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		return isLayout(fl.Field().String(), entities.DateLayout)
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return isLayout(fl.Field().String(), entities.ClockLayout)
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// FieldErrors flattens validation failures into field -> failed tag
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
