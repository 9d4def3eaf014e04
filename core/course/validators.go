package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/eduhub/core"
)

var (
	courseLevelTag  = "courselevel"
	courseLevelText = "invalid course level"
)

func init() {
	_ = core.Validate.RegisterValidation(courseLevelTag, courseLevelValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, courseLevelTag, courseLevelText)
}

// courseLevelValidation checks that the provided level is one of AllLevels.
func courseLevelValidation(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	for _, l := range AllLevels {
		if level == l {
			return true
		}
	}
	return false
}
