package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rpillai/daytrack/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Calendar day in yyyy-MM-dd form
		validate.RegisterValidation("day", func(fl validator.FieldLevel) bool {
			return dateutil.IsDay(fl.Field().String())
		})
	})
}
