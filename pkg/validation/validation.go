// Package validation builds the shared go-playground validator used by the
// HTTP handlers and the services.
package validation

import (
	"reflect"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var Module = fx.Module("validation",
	fx.Provide(New),
)

// New returns a validator that compares decimals numerically, reports json
// field names and understands the "dmy" tag for DD/MM/YYYY strings.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("dmy", func(fl validator.FieldLevel) bool {
		_, err := dates.Parse(fl.Field().String())
		return err == nil
	})

	return v
}
