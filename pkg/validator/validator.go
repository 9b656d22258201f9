// Package validator wires a shared validator instance into gin's binding.
// Package validator 将共享的验证器实例接入 gin 的绑定层
package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	val "github.com/go-playground/validator/v10"
)

// CustomValidator implements binding.StructValidator with a lazily
// initialized validator instance.
// CustomValidator 实现 binding.StructValidator，验证器实例惰性初始化
type CustomValidator struct {
	once     sync.Once
	validate *val.Validate
}

// NewCustomValidator 创建 CustomValidator 实例
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

// ValidateStruct 校验结构体及结构体指针
func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr:
		if value.IsNil() {
			return nil
		}
		return v.ValidateStruct(value.Elem().Interface())
	case reflect.Struct:
		v.lazyInit()
		return v.validate.Struct(obj)
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			if err := v.ValidateStruct(value.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// Engine 返回底层的 validator 实例
func (v *CustomValidator) Engine() interface{} {
	v.lazyInit()
	return v.validate
}

func (v *CustomValidator) lazyInit() {
	v.once.Do(func() {
		v.validate = val.New()
		v.validate.SetTagName("binding")
	})
}

// RegisterCustom registers custom validation rules on the shared binding
// validator. Placeholder for future rules.
// RegisterCustom 在共享的绑定验证器上注册自定义校验规则
func RegisterCustom() {
	validate, ok := binding.Validator.Engine().(*val.Validate)
	if !ok {
		return
	}

	// 字段名优先使用 json tag，便于错误消息与请求字段对应
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
