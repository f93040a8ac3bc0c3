// Package validate checks raw field strings and tagged structs for feastbook.
//
// Two entry points exist. Match tests one raw string against a named
// Pattern and is what the console uses while re-prompting:
//
//	if !validate.Match(input, validate.CustomerID) { ... }
//
// Struct walks the exported fields of a struct and applies the rules in its
// `validate` tag, returning field → message:
//
//	type Customer struct {
//	    ID    string `json:"id"    validate:"required,pattern=customer_id"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	pattern=name        value must match the named Pattern (see Patterns)
//	email               shorthand for pattern=email
//	date                strict dd/mm/yyyy calendar date
//	integer             whole number
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//	regex=pattern       value must match the regex (avoid commas in pattern)
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ─── Patterns ─────────────────────────────────────────────────────────────────

// Pattern is a named, fully anchored regular expression.
type Pattern string

const (
	CustomerID Pattern = `^[CGKcgk]\d{4}$`
	MenuID     Pattern = `^[Pp][Ww]\d{3}$`
	Name       Pattern = `^.{2,25}$`
	Phone      Pattern = `^0[98753]\d{8}$`
	Email      Pattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`
	Date       Pattern = `^\d{2}/\d{2}/\d{4}$`
	OrderCode  Pattern = `^ORD-[A-Z0-9]{8}$`
	Integer    Pattern = `^(0|[1-9]\d*)$`
	Decimal    Pattern = `^\d+(\.\d+)?$`
	NotEmpty   Pattern = `^.+$`
)

// Patterns maps the names usable in `pattern=` tags to their Pattern.
var Patterns = map[string]Pattern{
	"customer_id": CustomerID,
	"menu_id":     MenuID,
	"name":        Name,
	"phone":       Phone,
	"email":       Email,
	"date":        Date,
	"order_code":  OrderCode,
	"integer":     Integer,
	"decimal":     Decimal,
	"not_empty":   NotEmpty,
}

var compiled = func() map[Pattern]*regexp.Regexp {
	out := make(map[Pattern]*regexp.Regexp, len(Patterns))
	for _, p := range Patterns {
		out[p] = regexp.MustCompile(string(p))
	}
	return out
}()

// Match reports whether raw matches p in full. Unknown patterns are compiled
// on the fly; an uncompilable pattern never matches.
func Match(raw string, p Pattern) bool {
	re, ok := compiled[p]
	if !ok {
		var err error
		if re, err = regexp.Compile(string(p)); err != nil {
			return false
		}
	}
	return re.MatchString(raw)
}

// DateLayout is the only accepted textual date form.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/mm/yyyy string into a UTC midnight time.
// Out-of-range days and months (31/02/2025, 01/13/2025) are rejected.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !Match(raw, Date) {
		return time.Time{}, fmt.Errorf("validate: %q is not in dd/mm/yyyy form", raw)
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("validate: %q is not a calendar date: %w", raw, err)
	}
	return t, nil
}

// ─── Struct validation ────────────────────────────────────────────────────────

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return errs
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		value := rv.Field(i)
		rules := splitRules(tag)

		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "pattern":
		p, ok := Patterns[param]
		if !ok {
			return fmt.Sprintf("The %s has an unknown pattern %q.", field, param)
		}
		if !Match(raw, p) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}
	case "email":
		if !Match(raw, Email) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "date":
		if v.Type() == reflect.TypeOf(time.Time{}) {
			if v.Interface().(time.Time).IsZero() {
				return fmt.Sprintf("The %s is not a valid date.", field)
			}
			return ""
		}
		if _, err := ParseDate(raw); err != nil {
			return fmt.Sprintf("The %s is not a valid date.", field)
		}
	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "min":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) < n {
				return fmt.Sprintf("The %s must be at least %s.", field, param)
			}
		} else if float64(len([]rune(raw))) < n {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
	case "max":
		n := mustParseFloat(param)
		if isNumericKind(v) {
			if toFloat(v) > n {
				return fmt.Sprintf("The %s must not be greater than %s.", field, param)
			}
		} else if float64(len([]rune(raw))) > n {
			return fmt.Sprintf("The %s must not exceed %s characters.", field, param)
		}
	case "gte":
		if toFloat(v) < mustParseFloat(param) {
			return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
		}
	case "lte":
		if toFloat(v) > mustParseFloat(param) {
			return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
		}

	case "in":
		for _, a := range strings.Split(param, ",") {
			if raw == strings.TrimSpace(a) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)

	case "regex":
		re, err := regexp.Compile(param)
		if err != nil {
			return fmt.Sprintf("The %s has an invalid validation pattern.", field)
		}
		if !re.MatchString(raw) {
			return fmt.Sprintf("The %s format is invalid.", field)
		}
	}

	return ""
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return t.IsZero()
		}
	}
	return false
}

func isNumericKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	f, _ := strconv.ParseFloat(fmt.Sprintf("%v", v.Interface()), 64)
	return f
}

func mustParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func jsonFieldName(f reflect.StructField) string {
	name := f.Tag.Get("json")
	if name == "" || name == "-" {
		return strings.ToLower(f.Name)
	}
	if idx := strings.Index(name, ","); idx != -1 {
		name = name[:idx]
	}
	return name
}

// splitRules splits the validate tag by comma while keeping the values of
// in= together: "required,in=a,b,max=3" → ["required","in=a,b","max=3"].
func splitRules(tag string) []string {
	var rules []string
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n := len(rules); n > 0 && strings.HasPrefix(rules[n-1], "in=") && !looksLikeRule(part) {
			rules[n-1] += "," + part
			continue
		}
		rules = append(rules, part)
	}
	return rules
}

func looksLikeRule(s string) bool {
	key, _, _ := strings.Cut(s, "=")
	switch key {
	case "required", "nullable", "pattern", "email", "date", "integer", "numeric",
		"min", "max", "gte", "lte", "in", "regex":
		return true
	}
	return false
}

func hasRule(rules []string, target string) bool {
	for _, r := range rules {
		if r == target {
			return true
		}
	}
	return false
}
