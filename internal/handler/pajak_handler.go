package handler

import (
	"errors"
	"net/http"

	"samsat-api/internal/service"
	"samsat-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type PajakHandler struct {
	pajakService service.PajakService
}

func NewPajakHandler(pajakService service.PajakService) *PajakHandler {
	return &PajakHandler{pajakService: pajakService}
}

func (h *PajakHandler) RegisterRoutes(router *gin.RouterGroup) {
	pajak := router.Group("/pajak")
	{
		pajak.GET("/detail", h.GetDetail)
	}
}

// GetDetail godoc
// @Summary      Detail pajak by nopol
// @Description  Outstanding PKB/opsen bill with penalties per tax period
// @Tags         pajak
// @Produce      json
// @Param        nopol  query  string  true  "Plate number"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Security     ApiKeyAuth
// @Router       /api/pajak/detail [get]
func (h *PajakHandler) GetDetail(c *gin.Context) {
	nopol, msg := nopolParam(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, response.Error(msg))
		return
	}

	res, err := h.pajakService.GetDetailByNopol(c.Request.Context(), nopol)
	if err != nil {
		if errors.Is(err, service.ErrDataPajakTidakLengkap) {
			c.JSON(http.StatusUnprocessableEntity, response.Error(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, response.Error(response.MsgDataNotFound))
		return
	}

	c.JSON(http.StatusOK, response.Success(response.MsgDataFound, res))
}
