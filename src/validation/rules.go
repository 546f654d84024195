package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// validate covers the format checks (email, numeric) so the messages stay
// consistent with the rest of the ecosystem's definition of those shapes.
var validate = validator.New()

// Rule checks one field value and returns a violation message, or "" when
// the value is acceptable. present distinguishes an absent field from an
// explicit null: only Required complains about absence.
type Rule func(field string, value any, present bool) string

// Required fails when the field is absent, null or an empty string.
func Required() Rule {
	return func(field string, value any, present bool) string {
		if !present || value == nil {
			return fmt.Sprintf("El campo %s es obligatorio.", field)
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return fmt.Sprintf("El campo %s es obligatorio.", field)
		}
		return ""
	}
}

// Max limits the length of a string field to n characters.
func Max(n int) Rule {
	return func(field string, value any, present bool) string {
		s, ok, typeMsg := stringValue(field, value, present)
		if !ok {
			return typeMsg
		}
		if utf8.RuneCountInString(s) > n {
			return fmt.Sprintf("El campo %s no debe ser mayor a %d caracteres.", field, n)
		}
		return ""
	}
}

// Email checks the field has a valid email shape.
func Email() Rule {
	return func(field string, value any, present bool) string {
		s, ok, typeMsg := stringValue(field, value, present)
		if !ok {
			return typeMsg
		}
		if err := validate.Var(s, "email"); err != nil {
			return fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", field)
		}
		return ""
	}
}

// Digits requires a string of exactly n numeric digits.
func Digits(n int) Rule {
	return func(field string, value any, present bool) string {
		s, ok, typeMsg := stringValue(field, value, present)
		if !ok {
			return typeMsg
		}
		if len(s) != n || validate.Var(s, "numeric") != nil || strings.ContainsAny(s, ".-+") {
			return fmt.Sprintf("El campo %s debe tener %d dígitos.", field, n)
		}
		return ""
	}
}

// Numeric requires a number (or numeric string) within [min, max].
func Numeric(min, max float64) Rule {
	return func(field string, value any, present bool) string {
		if !present || value == nil {
			return ""
		}
		v, ok := toFloat(value)
		if !ok {
			return fmt.Sprintf("El campo %s debe ser un número.", field)
		}
		if v < min {
			return fmt.Sprintf("El campo %s debe ser al menos %v.", field, min)
		}
		if v > max {
			return fmt.Sprintf("El campo %s no debe ser mayor a %v.", field, max)
		}
		return ""
	}
}

// In restricts a string field to a closed set of values.
func In(values ...string) Rule {
	return func(field string, value any, present bool) string {
		s, ok, typeMsg := stringValue(field, value, present)
		if !ok {
			return typeMsg
		}
		for _, v := range values {
			if s == v {
				return ""
			}
		}
		return fmt.Sprintf("El valor del campo %s no es válido.", field)
	}
}

// Unique fails when another row of table already holds the value in column.
func Unique(db *gorm.DB, table, column string) Rule {
	return func(field string, value any, present bool) string {
		s, ok, typeMsg := stringValue(field, value, present)
		if !ok {
			return typeMsg
		}
		var count int64
		if err := db.Table(table).Where(column+" = ?", s).Count(&count).Error; err != nil {
			return fmt.Sprintf("No se pudo verificar el campo %s.", field)
		}
		if count > 0 {
			return fmt.Sprintf("El valor del campo %s ya está en uso.", field)
		}
		return ""
	}
}

// Exists fails when table has no row whose id matches the field value.
// Ids must be whole numbers; a fractional value never matches a row.
func Exists(db *gorm.DB, table string) Rule {
	return func(field string, value any, present bool) string {
		if !present || value == nil {
			return ""
		}
		id, ok := toFloat(value)
		if !ok || id != math.Trunc(id) {
			return fmt.Sprintf("El campo %s debe ser un número entero.", field)
		}
		var count int64
		if err := db.Table(table).Where("id = ?", int(id)).Count(&count).Error; err != nil {
			return fmt.Sprintf("No se pudo verificar el campo %s.", field)
		}
		if count == 0 {
			return fmt.Sprintf("El campo %s seleccionado no existe.", field)
		}
		return ""
	}
}

// stringValue returns the field as a string. ok reports whether the rule
// should keep checking; when the field is present but carries a non-string
// value the third result is the type violation to report, so a JSON number
// in a string field cannot slip past the string rules.
func stringValue(field string, value any, present bool) (string, bool, string) {
	if !present || value == nil {
		return "", false, ""
	}
	s, ok := value.(string)
	if !ok {
		return "", false, fmt.Sprintf("El campo %s debe ser una cadena de texto.", field)
	}
	return s, true, ""
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
