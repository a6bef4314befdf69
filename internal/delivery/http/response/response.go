package response

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/geoapi/pkg/constant"
	"github.com/savioruz/geoapi/pkg/failure"
	"github.com/savioruz/geoapi/pkg/result"
)

func WithJSON(ctx *fiber.Ctx, code int, payload interface{}) error {
	return response(ctx, code, payload)
}

// WithResult writes 200 with the value, or the problem body of a failed result.
func WithResult[T any](ctx *fiber.Ctx, r result.Result[T]) error {
	if !r.IsSuccess() {
		return WithError(ctx, r.Err())
	}

	return response(ctx, fiber.StatusOK, r.Value())
}

// WithCreated writes 201 with the value and a Location header built from it.
func WithCreated[T any](ctx *fiber.Ctx, r result.Result[T], location func(T) string) error {
	if !r.IsSuccess() {
		return WithError(ctx, r.Err())
	}

	ctx.Location(location(r.Value()))

	return response(ctx, fiber.StatusCreated, r.Value())
}

// WithNoContent writes 204 with an empty body.
func WithNoContent[T any](ctx *fiber.Ctx, r result.Result[T]) error {
	if !r.IsSuccess() {
		return WithError(ctx, r.Err())
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func WithError(ctx *fiber.Ctx, err error) error {
	code, body := Build(failure.From(err), Verbose(ctx))

	traceID, _ := ctx.Locals(constant.LocalRequestID).(string)

	switch p := body.(type) {
	case *Problem:
		p.Instance, p.TraceID = ctx.Path(), traceID
	case *ValidationProblem:
		p.Instance, p.TraceID = ctx.Path(), traceID
	}

	return ctx.Status(code).JSON(body, MIMEProblemJSON)
}

// WithStatus writes a problem body for transport level errors that have no domain kind.
func WithStatus(ctx *fiber.Ctx, code int, detail string) error {
	traceID, _ := ctx.Locals(constant.LocalRequestID).(string)

	return ctx.Status(code).JSON(&Problem{
		Type:     "about:blank",
		Title:    http.StatusText(code),
		Status:   code,
		Detail:   detail,
		Instance: ctx.Path(),
		TraceID:  traceID,
	}, MIMEProblemJSON)
}

// Verbose reports whether internal error details may be sent to the client.
func Verbose(ctx *fiber.Ctx) bool {
	v, _ := ctx.Locals(constant.LocalVerbose).(bool)

	return v
}

// ErrorHandler translates errors that escaped the handlers, including recovered panics.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound:
			return WithError(ctx, failure.NotFound(fe.Message))
		case fiber.StatusUnauthorized:
			return WithError(ctx, failure.Unauthorized(fe.Message))
		case fiber.StatusForbidden:
			return WithError(ctx, failure.Forbidden(fe.Message))
		case fiber.StatusBadRequest:
			return WithError(ctx, failure.BadRequestFromString(fe.Message))
		case fiber.StatusInternalServerError:
			return WithError(ctx, failure.InternalError(fe))
		default:
			return WithStatus(ctx, fe.Code, fe.Message)
		}
	}

	return WithError(ctx, err)
}

func response(ctx *fiber.Ctx, code int, payload interface{}) error {
	if payload == nil {
		return ctx.SendStatus(code)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)

	if err := ctx.Status(code).JSON(payload); err != nil {
		return err
	}

	return nil
}
