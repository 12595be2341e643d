package xconfig

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// setFromString parses value into field according to the field's kind.
// Slices are read as separator-delimited lists.
func setFromString(field reflect.Value, value, separator string) error {
	if field.Type() == durationType {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q", value)
		}
		field.SetInt(int64(duration))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		field.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil || field.OverflowInt(val) {
			return fmt.Errorf("invalid integer %q for %s", value, field.Type())
		}
		field.SetInt(val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(value, 10, 64)
		if err != nil || field.OverflowUint(val) {
			return fmt.Errorf("invalid unsigned integer %q for %s", value, field.Type())
		}
		field.SetUint(val)
	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q", value)
		}
		field.SetFloat(val)
	case reflect.Slice:
		parts := splitList(value, separator)
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, part := range parts {
			if err := setFromString(slice.Index(i), part, separator); err != nil {
				return err
			}
		}
		field.Set(slice)
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setFromString(field.Elem(), value, separator)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}

	return nil
}

func splitList(value, separator string) []string {
	var result []string
	for _, part := range strings.Split(value, separator) {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

func separatorOf(fieldType reflect.StructField) string {
	if separator := fieldType.Tag.Get("envSeparator"); separator != "" {
		return separator
	}
	return ","
}
