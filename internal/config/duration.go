package config

import (
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts either a number of nanoseconds or a string such as
// "1m30s".
type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return d.set(v)
}

// [Duration] implements [yaml.Marshaler]
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case int:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return errors.New("invalid duration")
	}
}

// convertDuration is the gorilla/schema converter for Duration fields.
func convertDuration(s string) reflect.Value {
	d, err := time.ParseDuration(s)
	if err != nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(Duration{d})
}
