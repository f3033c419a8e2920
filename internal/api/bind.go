package api

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"rpg_backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var loginIDPattern = regexp.MustCompile(`^[a-z0-9]+$`) // Lowercase letters and digits only

// RegisterValidators adds the custom binding tags used by the request structs
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("loginid", func(fl validator.FieldLevel) bool {
		return loginIDPattern.MatchString(fl.Field().String())
	})
}

// bindJSON decodes the body into req, recording a bad request error on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) *domain.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.BadRequest("invalid request body")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return domain.BadRequest(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "loginid":
		return field + " must contain only lowercase letters and digits"
	default:
		return field + " is invalid"
	}
}

// characterIDParam parses the :characterId path parameter
func characterIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("characterId"), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(domain.BadRequest("characterId must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// itemCodeParam parses the :itemCode path parameter
func itemCodeParam(c *gin.Context) (int, bool) {
	code, err := strconv.Atoi(c.Param("itemCode"))
	if err != nil || code < 1 {
		_ = c.Error(domain.BadRequest("itemCode must be a positive integer"))
		return 0, false
	}
	return code, true
}
