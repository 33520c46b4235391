package health

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"swasthya/internal/models"
)

// Validate is shared by every caller that checks profiles.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	register := func(tag string, ok func(string) bool) {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return ok(fl.Field().String())
		}); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	register("gender", func(s string) bool { return models.Gender(s).Valid() })
	register("activity", func(s string) bool { return models.ActivityLevel(s).Valid() })
	register("goal", func(s string) bool { return models.Goal(s).Valid() })
	register("condition", func(s string) bool { return models.HealthCondition(s).Valid() })
	return v
}

// ValidateProfile rejects measurements outside age (0,150], weight (0,700] kg
// and height (0,300] cm, and enum values outside their sets. Callers should Normalize first to accept loose spellings.
func ValidateProfile(p models.UserProfile) error {
	err := Validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
