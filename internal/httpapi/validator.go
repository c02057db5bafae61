package httpapi

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"campusattend/internal/attendance"
)

// RegisterValidators installs custom binding rules on gin's validator.
// "clocktime" accepts 12-hour clock strings like "07:59 AM".
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
			return attendance.ValidClock(fl.Field().String())
		})
	}
}
