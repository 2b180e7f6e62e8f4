// Package validation checks typed request payloads against declarative rule
// tables. Every rule is evaluated so the caller receives all violated fields
// at once.
package validation

import (
	"errors"
	"fmt"
	"pokedex-api/app/server/types"
	"regexp"
	"strings"
	"unicode/utf8"
)

type Errors []types.FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Rule 检查 payload 中的一个字段，返回空字符串表示通过
type Rule[T any] struct {
	Field string
	Check func(T) string
}

func Validate[T any](payload T, rules []Rule[T]) error {
	var errs Errors
	for _, r := range rules {
		if msg := r.Check(payload); msg != "" {
			errs = append(errs, types.FieldError{Field: r.Field, Message: msg})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StringCheck func(field string, v string) string

func MaxLen(n int) StringCheck {
	return func(field string, v string) string {
		if utf8.RuneCountInString(v) > n {
			return fmt.Sprintf("%q length must be less than or equal to %d characters long", field, n)
		}
		return ""
	}
}

func MinLen(n int) StringCheck {
	return func(field string, v string) string {
		if utf8.RuneCountInString(v) < n {
			return fmt.Sprintf("%q length must be at least %d characters long", field, n)
		}
		return ""
	}
}

func Matches(re *regexp.Regexp) StringCheck {
	return func(field string, v string) string {
		if !re.MatchString(v) {
			return fmt.Sprintf("%q fails to match the required pattern", field)
		}
		return ""
	}
}

func RequiredString[T any](field string, get func(T) *string, checks ...StringCheck) Rule[T] {
	return Rule[T]{
		Field: field,
		Check: func(p T) string {
			v := get(p)
			if v == nil {
				return fmt.Sprintf("%q is required", field)
			}
			if *v == "" {
				return fmt.Sprintf("%q is not allowed to be empty", field)
			}
			return runStringChecks(field, *v, checks)
		},
	}
}

func OptionalString[T any](field string, get func(T) *string, checks ...StringCheck) Rule[T] {
	return Rule[T]{
		Field: field,
		Check: func(p T) string {
			v := get(p)
			if v == nil {
				return ""
			}
			if *v == "" {
				return fmt.Sprintf("%q is not allowed to be empty", field)
			}
			return runStringChecks(field, *v, checks)
		},
	}
}

func runStringChecks(field string, v string, checks []StringCheck) string {
	for _, check := range checks {
		if msg := check(field, v); msg != "" {
			return msg
		}
	}
	return ""
}

type Number interface {
	~int | ~int64 | ~float64
}

type NumberCheck[N Number] func(field string, v N) string

func Max[N Number](n N) NumberCheck[N] {
	return func(field string, v N) string {
		if v > n {
			return fmt.Sprintf("%q must be less than or equal to %v", field, n)
		}
		return ""
	}
}

func Min[N Number](n N) NumberCheck[N] {
	return func(field string, v N) string {
		if v < n {
			return fmt.Sprintf("%q must be greater than or equal to %v", field, n)
		}
		return ""
	}
}

func RequiredNumber[T any, N Number](field string, get func(T) *N, checks ...NumberCheck[N]) Rule[T] {
	return Rule[T]{
		Field: field,
		Check: func(p T) string {
			v := get(p)
			if v == nil {
				return fmt.Sprintf("%q is required", field)
			}
			return runNumberChecks(field, *v, checks)
		},
	}
}

func OptionalNumber[T any, N Number](field string, get func(T) *N, checks ...NumberCheck[N]) Rule[T] {
	return Rule[T]{
		Field: field,
		Check: func(p T) string {
			v := get(p)
			if v == nil {
				return ""
			}
			return runNumberChecks(field, *v, checks)
		},
	}
}

func runNumberChecks[N Number](field string, v N, checks []NumberCheck[N]) string {
	for _, check := range checks {
		if msg := check(field, v); msg != "" {
			return msg
		}
	}
	return ""
}

// Merge 合并解析阶段与规则校验阶段的错误，同一字段只保留解析错误
func Merge(parsed Errors, err error) error {
	var ruled Errors
	if err != nil && !errors.As(err, &ruled) {
		return err
	}

	seen := make(map[string]bool, len(parsed))
	merged := append(Errors{}, parsed...)
	for _, fe := range parsed {
		seen[fe.Field] = true
	}
	for _, fe := range ruled {
		if !seen[fe.Field] {
			merged = append(merged, fe)
		}
	}

	if len(merged) > 0 {
		return merged
	}
	return nil
}
