package httpapi

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/weather"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !common.IsBlank(fl.Field().String())
	})
	return v
}

// Resolver runs one stateless lookup. *weather.Resolver satisfies it.
type Resolver interface {
	Run(ctx context.Context, query string) weather.Outcome
}

// Widget is the caller-owned display state. *session.Session satisfies it.
type Widget interface {
	Submit(ctx context.Context, text string) (string, bool)
	Snapshot() session.Snapshot
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, resolver Resolver, widget Widget) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		var q lookupQuery
		// c.Query aliases the request buffer, which fasthttp reuses.
		q.Query = utils.CopyString(c.Query("q"))
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "query parameter q is required")
		}

		out := resolver.Run(c.UserContext(), q.Query)
		switch {
		case out.State == weather.StateSuccess:
			return c.JSON(out.Reading)
		case errors.Is(out.Err, weather.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, out.Message)
		default:
			return fiber.NewError(fiber.StatusBadGateway, out.Message)
		}
	})

	v1.Post("/weather/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		id, ok := widget.Submit(c.UserContext(), req.Query)
		if !ok {
			// Blank input is ignored, the same way the search box ignores it.
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"requestId": id})
	})

	v1.Get("/weather/state", func(c *fiber.Ctx) error {
		return c.JSON(widget.Snapshot())
	})
}

// lookupQuery holds query parameters for the stateless lookup.
type lookupQuery struct {
	Query string `validate:"required,notblank"`
}

// searchRequest is the body of a widget submission.
type searchRequest struct {
	Query string `json:"query" form:"query"`
}

// ErrorHandler renders errors as {"error": message}. Errors that are not
// *fiber.Error are logged and replaced by a fixed message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	slog.Error("unhandled request error", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msgInternal})
}

const msgInternal = "internal server error"
