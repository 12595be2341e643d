package xconfig

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"
)

func loadFromEnv(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		name := fieldName(fieldType)
		if name == "" {
			continue
		}

		envKey := strings.ToUpper(prefix + "_" + name)

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := loadFromEnv(field, envKey); err != nil {
				return err
			}
			continue
		}

		envValue, ok := os.LookupEnv(envKey)
		if !ok || envValue == "" {
			continue
		}

		if err := setFromString(field, envValue, separatorOf(fieldType)); err != nil {
			return fmt.Errorf("failed to set field %s from %s: %w", fieldType.Name, envKey, err)
		}
	}

	return nil
}

// fieldName picks the yaml tag, then the json tag, then the snake_case field name.
// An explicit "-" excludes the field.
func fieldName(fieldType reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		tag, ok := fieldType.Tag.Lookup(key)
		if !ok {
			continue
		}

		name := strings.Split(tag, ",")[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return camelToSnake(fieldType.Name)
}

func camelToSnake(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			// keep acronyms together: "HTTPServer" -> "http_server"
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i < len(runes)-1 && unicode.IsLower(runes[i+1])

			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}
