// Package bind decodes and validates JSON request payloads
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "readathon/internal/platform/errors"
	"readathon/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes the request body into T, validates it, and maps failures
// to project errors. Safe and idempotent methods may arrive body-less; a
// mutation with an empty body is a JSON error
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T

	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if cerr := r.Body.Close(); cerr != nil {
			logger.Get().Error().Err(cerr).Msg("failed to close request body")
		}
	}()

	reader, early, err := bodyReader(r, o)
	if early || err != nil {
		return zero, err
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	switch derr := dec.Decode(&dst); {
	case derr == nil:
	case o.AllowEmptyBody && errors.Is(derr, io.EOF):
		return dst, nil
	default:
		return zero, perr.JSONErrf("invalid JSON: %v", derr)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if verr := Get().Validator.Struct(dst); verr != nil {
		var inv *validator.InvalidValidationError
		if errors.As(verr, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(verr)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}
	return dst, nil
}

// bodyReader wraps the request body with the configured limits. early reports
// that the caller should return immediately with a nil payload
func bodyReader(r *http.Request, o JSONOptions) (reader io.Reader, early bool, err error) {
	reader = r.Body
	if !o.AllowEmptyBody {
		peek := make([]byte, 1)
		n, _ := r.Body.Read(peek)
		if n == 0 {
			switch r.Method {
			case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
				return nil, true, nil
			}
			return nil, false, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(peek[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}
	return reader, false, nil
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	switch e := err.(type) {
	case nil:
		return "", ""
	case *validator.InvalidValidationError:
		return "", e.Error()
	case validator.ValidationErrors:
		for _, fe := range e {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// ValidatorSvc holds the process-wide validator and its translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	setupOnce sync.Once
	shared    *ValidatorSvc
)

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if shared == nil {
		return Init()
	}
	return shared
}

// Init builds the validator singleton with english messages keyed by json tag names
func Init() *ValidatorSvc {
	setupOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(wireFieldName)

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		shortTranslation(v, trans, "min", "{0} must be at least {1}")
		shortTranslation(v, trans, "max", "{0} must be at most {1}")

		shared = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return shared
}

// wireFieldName reports the json tag so error messages name the wire field,
// not the Go field
func wireFieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		return tag[:idx]
	}
	return tag
}

// shortTranslation swaps a stock message for a terser one
func shortTranslation(v *validator.Validate, trans ut.Translator, tag, tmpl string) {
	register := func(u ut.Translator) error {
		return u.Add(tag, tmpl, true)
	}
	render := func(u ut.Translator, fe validator.FieldError) string {
		msg, _ := u.T(tag, fe.Field(), fe.Param())
		return msg
	}
	_ = v.RegisterTranslation(tag, trans, register, render)
}
