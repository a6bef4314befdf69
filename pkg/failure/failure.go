package failure

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
)

type Kind int

const (
	KindFailure Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindBadRequest
	KindValidation
)

var kindNames = map[Kind]string{
	KindFailure:      "Failure",
	KindNotFound:     "NotFound",
	KindConflict:     "Conflict",
	KindUnauthorized: "Unauthorized",
	KindForbidden:    "Forbidden",
	KindBadRequest:   "BadRequest",
	KindValidation:   "Validation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[KindFailure]
}

// Status returns the HTTP status code the kind is reported with.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`

	cause error
	stack []byte
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// Cause returns the underlying error of an unclassified failure.
func (e *Failure) Cause() error {
	return e.cause
}

// Stack returns the goroutine stack captured when an unclassified failure was created.
func (e *Failure) Stack() []byte {
	return e.stack
}

// BadRequest returns a new Failure for malformed requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure for malformed requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Validation returns a field scoped validation failure.
func Validation(field, msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Message: msg,
		Field:   field,
	}
}

// Unauthorized returns a new Failure for unauthenticated requests.
func Unauthorized(msg string) error {
	return &Failure{
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError wraps an unexpected error and records where it happened.
func InternalError(err error) error {
	if err != nil {
		return newInternal(err)
	}

	return nil
}

func newInternal(err error) *Failure {
	return &Failure{
		Kind:    KindFailure,
		Message: err.Error(),
		cause:   err,
		stack:   debug.Stack(),
	}
}

// NotFound returns a new Failure for a missing entity.
func NotFound(msg string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Kind:    KindForbidden,
		Message: msg,
	}
}

// Errors is an ordered set of failures reported together.
type Errors []*Failure

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e {
		msgs = append(msgs, f.Error())
	}

	return strings.Join(msgs, "; ")
}

// HasField reports whether any failure is scoped to a request field.
func (e Errors) HasField() bool {
	for _, f := range e {
		if f.Field != "" {
			return true
		}
	}

	return false
}

// Representative picks the failure that decides the response status:
// NotFound, then Unauthorized, then Conflict, then the first one.
func (e Errors) Representative() *Failure {
	if len(e) == 0 {
		return nil
	}

	for _, kind := range []Kind{KindNotFound, KindUnauthorized, KindConflict} {
		for _, f := range e {
			if f.Kind == kind {
				return f
			}
		}
	}

	return e[0]
}

// From flattens err into Errors. Errors that were never classified become KindFailure.
func From(err error) Errors {
	if err == nil {
		return nil
	}

	if errs, ok := err.(Errors); ok {
		return errs
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var errs Errors
		for _, e := range joined.Unwrap() {
			errs = append(errs, From(e)...)
		}

		return errs
	}

	var f *Failure
	if errors.As(err, &f) {
		return Errors{f}
	}

	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}

	return Errors{newInternal(err)}
}

// Join aggregates errs, skipping nils. It returns nil when nothing failed.
func Join(errs ...error) error {
	var out Errors
	for _, err := range errs {
		out = append(out, From(err)...)
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// KindOf returns the kind of the representative failure of err.
func KindOf(err error) Kind {
	f := From(err).Representative()
	if f == nil {
		return KindFailure
	}

	return f.Kind
}

// GetCode returns the HTTP status code of an error interface.
func GetCode(err error) int {
	errs := From(err)
	if errs.HasField() {
		return http.StatusBadRequest
	}

	f := errs.Representative()
	if f == nil {
		return http.StatusInternalServerError
	}

	return f.Kind.Status()
}
