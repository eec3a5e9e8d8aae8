package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	phonePattern = regexp.MustCompile(`^0\d{9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

var (
	once     sync.Once
	validate *govalidator.Validate
	trans    ut.Translator
)

func init() {
	Setup()
}

// Setup registers the custom rules and English translations on Gin's binding engine.
// The form helpers share that engine, so request binding and form checks report
// the same messages. Safe to call more than once.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			v = govalidator.New()
			v.SetTagName("binding")
		}

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("phone", func(fl govalidator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("loose_email", func(fl govalidator.FieldLevel) bool {
			return emailPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl govalidator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		// Register English translations.
		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		validate = v
	})
}

// messages holds the visitor-facing text for form rules, keyed by "field.tag".
var messages = map[string]string{
	"parentName.notblank":     "Parent name is required.",
	"parentPhone.required":    MsgPhoneRequired,
	"parentPhone.phone":       MsgPhoneInvalid,
	"parentEmail.loose_email": MsgEmailInvalid,
	"studentName.notblank":    "Student name is required.",
	"studentGrade.notblank":   "Student grade is required.",
	"email.required":          MsgEmailRequired,
	"email.loose_email":       MsgEmailInvalid,
	"name.notblank":           "Name is required.",
	"role.oneof":              "Please choose student, parent or other.",
	"rating.required":         "Please select a rating.",
	"rating.min":              "Rating must be between 1 and 5.",
	"rating.max":              "Rating must be between 1 and 5.",
	"comment.notblank":        "Comment is required.",
	"password.required":       "Password is required.",
}

const (
	MsgPhoneRequired = "Phone number is required."
	MsgPhoneInvalid  = "Please enter a valid 10-digit phone number (e.g., 0712345678)."
	MsgEmailRequired = "Email is required."
	MsgEmailInvalid  = "Please enter a valid email address."
)

func translate(fe govalidator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fe.Translate(trans)
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = translate(fe)
			}
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
