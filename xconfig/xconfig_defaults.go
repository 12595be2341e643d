package xconfig

import (
	"fmt"
	"reflect"
)

func applyDefaultTags(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct && field.Type() != durationType {
			if err := applyDefaultTags(field); err != nil {
				return err
			}
			continue
		}

		defaultValue := fieldType.Tag.Get("default")
		if defaultValue == "" || !field.IsZero() {
			continue
		}

		if err := setFromString(field, defaultValue, separatorOf(fieldType)); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}
