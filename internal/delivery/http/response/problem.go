package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/savioruz/geoapi/pkg/failure"
)

const MIMEProblemJSON = "application/problem+json"

// Problem types for RFC 7807 Problem Details responses.
const (
	ProblemTypeBadRequest   = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	ProblemTypeUnauthorized = "https://tools.ietf.org/html/rfc9110#section-15.5.2"
	ProblemTypeForbidden    = "https://tools.ietf.org/html/rfc9110#section-15.5.4"
	ProblemTypeNotFound     = "https://tools.ietf.org/html/rfc9110#section-15.5.5"
	ProblemTypeConflict     = "https://tools.ietf.org/html/rfc9110#section-15.5.10"
	ProblemTypeInternal     = "https://tools.ietf.org/html/rfc9110#section-15.6.1"
)

const (
	TitleValidation = "One or more validation errors occurred."
	TitleEmpty      = "An unexpected error occurred."

	DetailInternal = "An unexpected error occurred. Please try again later."
)

var (
	titles = map[failure.Kind]string{
		failure.KindNotFound:     "Resource Not Found",
		failure.KindUnauthorized: "Unauthorized",
		failure.KindConflict:     "Conflict",
		failure.KindForbidden:    "Forbidden",
		failure.KindBadRequest:   "Bad Request",
		failure.KindFailure:      "An unexpected error occurred",
	}

	types = map[failure.Kind]string{
		failure.KindNotFound:     ProblemTypeNotFound,
		failure.KindUnauthorized: ProblemTypeUnauthorized,
		failure.KindConflict:     ProblemTypeConflict,
		failure.KindForbidden:    ProblemTypeForbidden,
		failure.KindBadRequest:   ProblemTypeBadRequest,
		failure.KindFailure:      ProblemTypeInternal,
	}
)

// Problem represents an RFC 7807 Problem Details response.
type Problem struct {
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Status        int      `json:"status"`
	Detail        string   `json:"detail,omitempty"`
	Instance      string   `json:"instance,omitempty"`
	Errors        []string `json:"errors,omitempty"`
	TraceID       string   `json:"traceId,omitempty"`
	ExceptionType string   `json:"exceptionType,omitempty"`
	StackTrace    string   `json:"stackTrace,omitempty"`
}

// ValidationProblem is the 400 body listing messages per request field.
type ValidationProblem struct {
	Type     string      `json:"type"`
	Title    string      `json:"title"`
	Status   int         `json:"status"`
	Instance string      `json:"instance,omitempty"`
	Errors   FieldErrors `json:"errors"`
	TraceID  string      `json:"traceId,omitempty"`
}

// FieldErrors groups messages by field and keeps fields in first-seen order.
type FieldErrors struct {
	fields   []string
	messages map[string][]string
}

func (f *FieldErrors) Add(field, message string) {
	if f.messages == nil {
		f.messages = map[string][]string{}
	}

	if _, ok := f.messages[field]; !ok {
		f.fields = append(f.fields, field)
	}

	f.messages[field] = append(f.messages[field], message)
}

func (f FieldErrors) Fields() []string {
	return f.fields
}

func (f FieldErrors) Get(field string) []string {
	return f.messages[field]
}

func (f FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, field := range f.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(field)
		if err != nil {
			return nil, err
		}

		msgs, err := json.Marshal(f.messages[field])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(msgs)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Build maps a failure set to a status code and a problem body. Internal details of
// unclassified failures are only exposed when verbose is set.
func Build(errs failure.Errors, verbose bool) (int, any) {
	if len(errs) == 0 {
		return http.StatusInternalServerError, &Problem{
			Type:   ProblemTypeInternal,
			Title:  TitleEmpty,
			Status: http.StatusInternalServerError,
		}
	}

	if errs.HasField() {
		p := &ValidationProblem{
			Type:   ProblemTypeBadRequest,
			Title:  TitleValidation,
			Status: http.StatusBadRequest,
		}

		// Only field scoped failures belong in the per-field map.
		for _, e := range errs {
			if e.Field == "" {
				continue
			}

			p.Errors.Add(e.Field, message(e, verbose))
		}

		return http.StatusBadRequest, p
	}

	rep := errs.Representative()
	status := rep.Kind.Status()

	p := &Problem{
		Type:   types[rep.Kind],
		Title:  titles[rep.Kind],
		Status: status,
		Detail: message(rep, verbose),
		Errors: make([]string, 0, len(errs)),
	}

	if p.Type == "" {
		p.Type, p.Title = ProblemTypeInternal, titles[failure.KindFailure]
	}

	if rep.Kind == failure.KindFailure && verbose {
		p.ExceptionType = fmt.Sprintf("%T", rep.Cause())
		p.StackTrace = string(rep.Stack())
	}

	for _, e := range errs {
		p.Errors = append(p.Errors, message(e, verbose))
	}

	return status, p
}

func message(e *failure.Failure, verbose bool) string {
	if e.Kind == failure.KindFailure && !verbose {
		return DetailInternal
	}

	return e.Message
}
