package impl

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/entity"
	"planner/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Field rules shared by drafts and patches.
const (
	titleRule       = "required,max=200"
	dateRule        = "required,datetime=" + entity.DateLayout
	locationRule    = "max=300"
	descriptionRule = "max=5000"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// normalizeDraft returns a trimmed copy of draft.
func normalizeDraft(draft *entity.EventDraft) *entity.EventDraft {
	if draft == nil {
		return &entity.EventDraft{}
	}

	return &entity.EventDraft{
		Title:       strings.TrimSpace(draft.Title),
		Date:        strings.TrimSpace(draft.Date),
		Location:    strings.TrimSpace(draft.Location),
		Description: strings.TrimSpace(draft.Description),
	}
}

// normalizePatch returns a trimmed copy of patch.
func normalizePatch(patch *entity.EventPatch) *entity.EventPatch {
	out := patch.Clone()
	for _, field := range []*string{out.Title, out.Date, out.Location, out.Description, out.ImageURL} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}

	return out
}

func validateDraft(v *validator.Validate, draft *entity.EventDraft) error {
	err := v.Struct(draft)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons = append(reasons, describe(fe.Field(), fe))
	}

	return domainerrors.NewValidationError(strings.Join(reasons, "; "))
}

// validatePatch checks only the fields the patch sets.
func validatePatch(v *validator.Validate, patch *entity.EventPatch) error {
	checks := []struct {
		name  string
		value *string
		rule  string
	}{
		{name: "title", value: patch.Title, rule: titleRule},
		{name: "date", value: patch.Date, rule: dateRule},
		{name: "location", value: patch.Location, rule: locationRule},
		{name: "description", value: patch.Description, rule: descriptionRule},
	}

	reasons := make([]string, 0)
	for _, check := range checks {
		if check.value == nil {
			continue
		}

		err := v.Var(*check.value, check.rule)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return errors.WithStack(err)
		}
		for _, fe := range fieldErrs {
			reasons = append(reasons, describe(check.name, fe))
		}
	}

	if len(reasons) > 0 {
		return domainerrors.NewValidationError(strings.Join(reasons, "; "))
	}

	return nil
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	default:
		return field + " is invalid"
	}
}
