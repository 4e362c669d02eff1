package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/aouyang1/go-predictor/binding"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// PredictRequest is the body of a predict call.
type PredictRequest struct {
	Input any `json:"input"`
}

// PredictStaticRequest is the body of a predict_static call.
type PredictStaticRequest struct {
	Data    any `json:"data"`
	Horizon any `json:"horizon"`
}

// Handler serves the binding functions over HTTP.
type Handler struct {
	log    zerolog.Logger
	caller binding.Caller
}

func NewHandler(log zerolog.Logger, caller binding.Caller) *Handler {
	return &Handler{log: log, caller: caller}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/v1")
	g.GET("/functions", h.Functions)
	g.POST("/predict", h.Predict)
	g.POST("/predict_static", h.PredictStatic)
	g.POST("/call", h.Call)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Functions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.caller.Functions())
}

func (h *Handler) Predict(c echo.Context) error {
	req := &PredictRequest{}
	if err := c.Bind(req); err != nil {
		return h.bindError(c, err)
	}
	return h.respond(c, "predict", req.Input)
}

func (h *Handler) PredictStatic(c echo.Context) error {
	req := &PredictStaticRequest{}
	if err := c.Bind(req); err != nil {
		return h.bindError(c, err)
	}
	return h.respond(c, "predict_static", req.Data, req.Horizon)
}

// Call accepts a request in the binding JSON calling convention.
func (h *Handler) Call(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.bindError(c, err)
	}
	resp := binding.Dispatch(h.caller, payload)
	if resp.Error != nil {
		return h.errorResponse(c, resp.Error)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) respond(c echo.Context, function string, args ...any) error {
	res, err := h.caller.Call(function, args...)
	if err != nil {
		var hostErr *binding.HostError
		if !errors.As(err, &hostErr) {
			hostErr = &binding.HostError{Type: binding.RuntimeError, Message: err.Error(), Err: err}
		}
		return h.errorResponse(c, hostErr)
	}
	return c.JSON(http.StatusOK, &binding.Response{Result: res})
}

func (h *Handler) bindError(c echo.Context, err error) error {
	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	return h.errorResponse(c, &binding.HostError{Type: binding.SyntaxError, Message: msg, Err: err})
}

func (h *Handler) errorResponse(c echo.Context, hostErr *binding.HostError) error {
	status := statusFor(hostErr.Type)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(hostErr).Msg("predictor call failed")
	}
	return c.JSON(status, &binding.Response{Error: hostErr})
}

func statusFor(typ binding.ErrorType) int {
	switch typ {
	case binding.ValueError, binding.TypeError, binding.SyntaxError:
		return http.StatusBadRequest
	case binding.AttributeError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
