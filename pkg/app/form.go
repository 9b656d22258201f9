package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError single field validation error // 单个字段的验证错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString joins all error messages
// ErrorsToString 拼接全部错误消息
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// MapsToString returns field to message mapping
// MapsToString 返回字段到消息的映射
func (v ValidErrors) MapsToString() map[string]string {
	m := make(map[string]string)
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindAndValid binds request parameters and validates them, translating
// validation failures with the translator stored in the request context.
// BindAndValid 绑定请求参数并验证，使用请求上下文中的翻译器翻译验证错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, ok := err.(val.ValidationErrors)
		if !ok {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}

		trans, transOK := c.Value("trans").(ut.Translator)
		for _, verr := range verrs {
			message := verr.Error()
			if transOK {
				message = verr.Translate(trans)
			}
			errs = append(errs, &ValidError{
				Key:     verr.Field(),
				Message: message,
			})
		}
		return false, errs
	}

	return true, nil
}
