package utils

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/salahou-dine/hon-hon/models"
)

var (
	reIATA       = regexp.MustCompile(`^[A-Za-z]{3}$`)
	validatorsMu sync.Once
)

// RegisterValidators регистрирует кастомные теги в валидаторе gin (один раз на процесс)
func RegisterValidators() {
	validatorsMu.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// в сообщениях об ошибках имена полей как в JSON
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("iata", func(fl validator.FieldLevel) bool {
			return reIATA.MatchString(fl.Field().String())
		})
		v.RegisterStructValidation(bookingRequestRule, models.BookingRequest{})
	})
}

// у поездки в одну сторону не бывает даты возврата
func bookingRequestRule(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.BookingRequest)
	if req.TripType == models.TripTypeOneway && req.ReturnDate != nil {
		sl.ReportError(req.ReturnDate, "return_date", "ReturnDate", "oneway_return", "")
	}
}

// ValidationMessage первая ошибка валидации в читаемом виде
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "min":
		return fe.Field() + " is too short (min " + fe.Param() + ")"
	case "max":
		return fe.Field() + " is too long (max " + fe.Param() + ")"
	case "email":
		return fe.Field() + " must be a valid email"
	case "iata":
		return fe.Field() + " must be a 3-letter IATA code"
	case "oneway_return":
		return "return_date must be null for oneway trips"
	}
	return fe.Field() + " is invalid"
}
