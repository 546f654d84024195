package validation

import "math"

// Fields is the raw field mapping decoded from a request body or query,
// before any typing or checking has been applied.
type Fields map[string]any

// Has reports whether the field came in the request, even as null.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the field as a string, or "" if absent or not a string.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Float returns the field as a float64. JSON numbers always decode as
// float64, numeric strings are accepted as well.
func (f Fields) Float(key string) (float64, bool) {
	return toFloat(f[key])
}

// Int returns the field as an int. Fractional values do not identify a row
// and are rejected rather than truncated.
func (f Fields) Int(key string) (int, bool) {
	v, ok := toFloat(f[key])
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// Errors maps a field name to the list of violation messages for that field.
type Errors map[string][]string

// RuleSet holds the rules to apply per field for one operation.
type RuleSet map[string][]Rule

// Validate evaluates every rule against the given fields. Rules other than
// Required skip fields that are absent, so a RuleSet without Required rules
// naturally gives partial-update ("sometimes") semantics. Returns nil when
// everything passed.
func (rs RuleSet) Validate(fields Fields) Errors {
	errs := Errors{}
	for name, rules := range rs {
		value, present := fields[name]
		for _, rule := range rules {
			if msg := rule(name, value, present); msg != "" {
				errs[name] = append(errs[name], msg)
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
