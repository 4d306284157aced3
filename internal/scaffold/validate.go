package scaffold

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/gp-oxid/oxskel/internal/layout"
	"github.com/gp-oxid/oxskel/internal/platform"
	"github.com/gp-oxid/oxskel/internal/skelerr"
)

var (
	// composerName is the package name rule composer itself enforces.
	composerName = regexp.MustCompile(`^[a-z0-9]([_.-]?[a-z0-9]+)*/[a-z0-9](([_.]|-{1,2})?[a-z0-9]+)*$`)
	moduleID     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// rules are the custom tags used on Params.
var rules = map[string]validator.Func{
	"composer_name": func(fl validator.FieldLevel) bool {
		return composerName.MatchString(fl.Field().String())
	},
	"module_id": func(fl validator.FieldLevel) bool {
		return moduleID.MatchString(fl.Field().String())
	},
	"version": func(fl validator.FieldLevel) bool {
		_, err := semver.NewVersion(strings.TrimPrefix(fl.Field().String(), "v"))
		return err == nil
	},
	"variant": func(fl validator.FieldLevel) bool {
		_, err := layout.ParseVariant(fl.Field().String())
		return err == nil
	},
	"language": func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	},
	"filemode": func(fl validator.FieldLevel) bool {
		_, err := platform.ParseMode(fl.Field().String())
		return err == nil
	},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

// paramsValidator returns the shared validator with the custom rules
// registered.
func paramsValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				validateErr = fmt.Errorf("registering validation %q: %w", tag, err)
				return
			}
		}
		validate = v
	})
	return validate, validateErr
}

// validateStruct runs the tag rules of target and reports every failed field
// as one InvalidOption error.
func validateStruct(target any) error {
	v, err := paramsValidator()
	if err != nil {
		return err
	}

	err = v.Struct(target)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, describe(fe))
	}
	return skelerr.InvalidOption("%s", strings.Join(msgs, "; "))
}

var fieldLabels = map[string]string{
	"Kind":       "scaffold kind",
	"Path":       "path",
	"Vendor":     "vendor",
	"Autoload":   "autoload namespace",
	"ID":         "module ID",
	"Version":    "version",
	"Permission": "permission",
}

func describe(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.StructField()]
	if !ok {
		label = strings.ToLower(fe.StructField())
	}
	val := fe.Value()

	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s must not be empty", label)
	case "oneof":
		return fmt.Sprintf("unknown %s %q", label, val)
	case "composer_name":
		return fmt.Sprintf("vendor %q must look like <vendor>/<name> in lowercase letters, digits and separators", val)
	case "module_id":
		return fmt.Sprintf("module ID %q must start with a letter and contain only letters, digits and underscores", val)
	case "version":
		return fmt.Sprintf("version %q is not a semantic version", val)
	case "variant":
		return fmt.Sprintf("template variant %q is not one of %s", val, strings.Join(layout.Names(), ", "))
	case "language":
		return fmt.Sprintf("language %q is not a valid language tag", val)
	case "filemode":
		return fmt.Sprintf("permission %q is not an octal mode up to 07777", val)
	case "email":
		return fmt.Sprintf("author email %q is not a valid address", val)
	default:
		return fmt.Sprintf("%s %q failed the %s rule", label, val, fe.Tag())
	}
}
