package handler

import (
	"net/http"
	"time"

	"vidtube/internal/delivery/api/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	uc usecase.HealthUsecase
}

func NewHealthHandler(uc usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

type healthResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Host    []string  `json:"host"`
	Time    time.Time `json:"time"`
}

// HealthCheck answers 503 while the database is unreachable.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := h.uc.Check(c.Request().Context())

	body := healthResponse{
		Status:  "ok",
		Message: status.Message,
		Host:    nonNil(status.Hosts),
		Time:    status.Time,
	}
	code := http.StatusOK
	if !status.Healthy {
		body.Status = "unavailable"
		code = http.StatusServiceUnavailable
	}

	return response.Success(c, code, body, "Health check completed")
}
