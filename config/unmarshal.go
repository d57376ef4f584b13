package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// unmarshal fills target from the resolved values of the store
func unmarshal(target interface{}) error {
	mutex.RLock()
	defer mutex.RUnlock()

	return unmarshalStruct(reflect.ValueOf(target), "")
}

func unmarshalStruct(v reflect.Value, prefix string) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !fieldValue.CanSet() || field.Tag.Get("yaml") == "-" {
			continue
		}

		key := buildLabel(prefix, getFieldName(field))

		if fieldValue.Kind() == reflect.Struct {
			err := unmarshalStruct(fieldValue, key)
			if err != nil {
				return err
			}
			continue
		}

		value := store.Get(key)
		if value == nil {
			continue
		}

		err := setFieldValue(fieldValue, value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}

func setFieldValue(field reflect.Value, value interface{}) error {
	switch field.Kind() {
	case reflect.String:
		if str, ok := value.(string); ok {
			field.SetString(str)
			return nil
		}
		field.SetString(fmt.Sprintf("%v", value))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(fmt.Sprintf("%v", value), 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := strconv.ParseUint(fmt.Sprintf("%v", value), 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(i)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(fmt.Sprintf("%v", value), 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)

	case reflect.Bool:
		if b, ok := value.(bool); ok {
			field.SetBool(b)
			return nil
		}
		b, err := strconv.ParseBool(fmt.Sprintf("%v", value))
		if err != nil {
			return err
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		field.Set(reflect.ValueOf(toStringSlice(value)))

	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}

	return nil
}

// toStringSlice accepts yaml sequences, flag values and comma separated env values
func toStringSlice(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []interface{}:
		s := make([]string, 0, len(v))
		for _, e := range v {
			s = append(s, fmt.Sprintf("%v", e))
		}
		return s
	case string:
		v = strings.Trim(strings.TrimSpace(v), "[]")
		if v == "" {
			return []string{}
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}
