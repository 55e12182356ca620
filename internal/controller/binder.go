package controller

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/go-playground/form/v4"
	"github.com/labstack/echo/v4"
)

var formDecoder = newFormDecoder()

// Field names follow the json tags so JSON and multipart requests share DTOs.
// Pointer fields stay nil unless the client sent a value.
func newFormDecoder() *form.Decoder {
	decoder := form.NewDecoder()
	decoder.SetTagName("json")
	return decoder
}

// bindAndValidate fills payload from a JSON body or from form fields (multipart
// uploads carry their text fields this way) and runs the echo validator.
func bindAndValidate(e echo.Context, payload interface{}) error {
	if err := bindPayload(e, payload); err != nil {
		return err
	}

	return e.Validate(payload)
}

func bindPayload(e echo.Context, payload interface{}) error {
	req := e.Request()
	ctype := req.Header.Get(echo.HeaderContentType)

	switch {
	case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
		if req.ContentLength == 0 {
			return nil
		}

		body := map[string]interface{}{}
		err := e.Echo().JSONSerializer.Deserialize(e, &body)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errs.New(errs.ErrValidation, "Invalid JSON payload")
		}

		values, err := jsonValues(body, payload)
		if err != nil {
			return err
		}

		return decodeForm(values, payload)
	case strings.HasPrefix(ctype, echo.MIMEMultipartForm), strings.HasPrefix(ctype, echo.MIMEApplicationForm):
		params, err := e.FormParams()
		if err != nil {
			return errs.New(errs.ErrValidation, "Invalid form payload")
		}

		return decodeForm(params, payload)
	}

	return nil
}

// jsonValues flattens a JSON object into form values. Numbers and booleans may
// arrive as strings ("42", "true") and are converted by the form decoder, while
// a non-string value for a string field is rejected.
func jsonValues(body map[string]interface{}, payload interface{}) (url.Values, error) {
	kinds := fieldKinds(payload)
	values := url.Values{}

	for _, key := range sortedKeys(body) {
		kind, ok := kinds[key]
		if !ok {
			continue
		}

		switch v := body[key].(type) {
		case nil:
		case string:
			values.Set(key, v)
		case float64:
			if kind == reflect.String {
				return nil, typeError(key, kind)
			}
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			if kind == reflect.String {
				return nil, typeError(key, kind)
			}
			values.Set(key, strconv.FormatBool(v))
		default:
			return nil, typeError(key, kind)
		}
	}

	return values, nil
}

func decodeForm(values url.Values, payload interface{}) error {
	err := formDecoder.Decode(payload, values)
	if err == nil {
		return nil
	}

	var decodeErrs form.DecodeErrors
	if errors.As(err, &decodeErrs) {
		if fields := sortedKeys(decodeErrs); len(fields) > 0 {
			return typeError(fields[0], fieldKinds(payload)[fields[0]])
		}
	}

	return errs.New(errs.ErrValidation, "Invalid form payload")
}

func typeError(field string, kind reflect.Kind) error {
	return errs.New(errs.ErrValidation, fmt.Sprintf("%q must be a %s", field, kindName(kind)))
}

// fieldKinds maps json field names of a DTO to the kind behind each pointer.
func fieldKinds(payload interface{}) map[string]reflect.Kind {
	t := reflect.TypeOf(payload).Elem()
	kinds := make(map[string]reflect.Kind, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		ft := field.Type
		if ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		kinds[name] = ft.Kind()
	}

	return kinds
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func kindName(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return kind.String()
	}
}
