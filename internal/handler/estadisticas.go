package handler

import (
	"errors"
	"net/http"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/apierror"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/dto"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/infra"
	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

// CalcularMargen godoc
// @Summary Calcula el margen bruto de un snapshot de estadisticas
// @Tags estadisticas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EstadisticasDTO true "Snapshot de estadisticas"
// @Success 200 {object} dto.MargenResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/estadisticas/margen [post]
func (h *EstadisticasHandler) CalcularMargen(c *gin.Context) {
	var req dto.EstadisticasDTO
	if !bindJSON(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.CalcularMargen(c.Request.Context(), req))
}

// PublicarSnapshot godoc
// @Summary Publica un snapshot de estadisticas para reportes
// @Tags estadisticas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.EstadisticasDTO true "Snapshot de estadisticas"
// @Success 202 {object} dto.SnapshotResponse
// @Failure 400 {object} apierror.APIError
// @Failure 500 {object} apierror.APIError
// @Failure 503 {object} apierror.APIError
// @Router /v1/estadisticas/snapshots [post]
func (h *EstadisticasHandler) PublicarSnapshot(c *gin.Context) {
	var req dto.EstadisticasDTO
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.PublicarSnapshot(c.Request.Context(), req)
	if errors.Is(err, infra.ErrCircuitOpen) {
		log.Ctx(c.Request.Context()).Warn().Err(err).Msg("publicar snapshot: cola en corte")
		c.JSON(http.StatusServiceUnavailable, apierror.New("Cola de reportes no disponible"))
		return
	}
	if err != nil {
		// rendered as 500 by middleware.ErrorHandler
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
