package controllers

import (
	"fmt"

	"wastetrack-be/services"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "lat" and "lng" binding tags. They apply the
// same coordinate rule as the lifecycle service, so the JSON API and the
// portal forms accept exactly the same input.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("lat", func(fl validator.FieldLevel) bool {
		_, err := services.ParseLatitude(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("lng", func(fl validator.FieldLevel) bool {
		_, err := services.ParseLongitude(fl.Field().String())
		return err == nil
	})
}
