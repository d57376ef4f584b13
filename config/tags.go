package config

import (
	"reflect"
	"strings"

	"github.com/stoewer/go-strcase"
	"github.com/valentin-kaiser/go-deviceid/apperror"
	"github.com/valentin-kaiser/go-deviceid/flag"
)

var envPrefix string

func setEnvPrefix(name string) {
	envPrefix = strcase.UpperSnakeCase(name)
}

// parseStructTags walks the struct and registers a default, an environment
// variable and a command line flag for every leaf field
func parseStructTags(v reflect.Value, prefix string) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return apperror.NewErrorf("nil pointer at %q", prefix)
		}
		v = v.Elem()
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)
		if !field.IsExported() || field.Tag.Get("yaml") == "-" {
			continue
		}

		key := buildLabel(prefix, getFieldName(field))

		if fieldValue.Kind() == reflect.Struct {
			err := parseStructTags(fieldValue, key)
			if err != nil {
				return err
			}
			continue
		}

		store.SetDefault(key, fieldValue.Interface())

		err := store.BindEnv(key, getEnvKey(key))
		if err != nil {
			return apperror.NewErrorf("binding environment variable for %s failed", key).AddError(err)
		}

		name := getFlagName(key)
		if flag.Lookup(name) == nil {
			flag.Register(name, fieldValue.Addr().Interface(), field.Tag.Get("usage"))
		}

		err = store.BindPFlag(key, flag.Lookup(name))
		if err != nil {
			return apperror.NewErrorf("binding flag for %s failed", key).AddError(err)
		}
	}

	return nil
}

// getFieldName returns the yaml name of the field or the field name in kebab case
func getFieldName(field reflect.StructField) string {
	name := strings.Split(field.Tag.Get("yaml"), ",")[0]
	if name != "" {
		return name
	}
	return strcase.KebabCase(field.Name)
}

func buildLabel(prefix, name string) string {
	if prefix == "" {
		return strings.ToLower(name)
	}
	return prefix + "." + strings.ToLower(name)
}

// getFlagName converts identity.locations into identity-locations
func getFlagName(key string) string {
	return strcase.KebabCase(strings.ReplaceAll(key, ".", "-"))
}

// getEnvKey converts identity.locations into DEVICEID_IDENTITY_LOCATIONS
func getEnvKey(key string) string {
	k := strcase.UpperSnakeCase(strings.ReplaceAll(key, ".", "_"))
	if envPrefix == "" {
		return k
	}
	return envPrefix + "_" + k
}
