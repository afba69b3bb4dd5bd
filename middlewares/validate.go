package middlewares

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/marketplace-app/utils"
)

// CtxBody holds the bound request body set by ValidateJSON.
const CtxBody = "body"

// ValidateJSON binds and validates the request body before the route's
// auth middlewares run. On failure the first violation is reported as a
// 400; on success the parsed *T is stored under CtxBody.
func ValidateJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, utils.NewBadRequest(validationMessage(err)))
			c.Abort()
			return
		}

		c.Set(CtxBody, &body)
		c.Next()
	}
}

// Body retrieves the value bound by ValidateJSON[T] on this route.
func Body[T any](c *gin.Context) *T {
	return c.MustGet(CtxBody).(*T)
}

// validationMessage reduces a binding error to its first violation,
// phrased for clients.
func validationMessage(err error) string {
	var sliceErrs binding.SliceValidationError
	if errors.As(err, &sliceErrs) && len(sliceErrs) > 0 {
		err = sliceErrs[0]
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Invalid request"
	}

	e := fieldErrs[0]
	field := snakeCase(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "uri":
		return fmt.Sprintf("%s must be a valid URI", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
