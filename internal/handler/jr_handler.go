package handler

import (
	"errors"
	"net/http"

	"samsat-api/internal/jr"
	"samsat-api/internal/service"
	"samsat-api/pkg/response"

	"github.com/gin-gonic/gin"
)

type JrHandler struct {
	jrService service.JrService
}

func NewJrHandler(jrService service.JrService) *JrHandler {
	return &JrHandler{jrService: jrService}
}

func (h *JrHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/jr")
	{
		group.GET("/detail", h.GetDetail)
	}
}

// GetDetail godoc
// @Summary      Tarif Jasa Raharja by nopol
// @Description  SWDKLLJ tariff quote from the external JR service
// @Tags         jr
// @Produce      json
// @Param        nopol  query  string  true  "Plate number"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Security     ApiKeyAuth
// @Router       /api/jr/detail [get]
func (h *JrHandler) GetDetail(c *gin.Context) {
	nopol, msg := nopolParam(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, response.Error(msg))
		return
	}

	res, err := h.jrService.GetTarifByNopol(c.Request.Context(), nopol)
	if err != nil {
		var semantic *jr.SemanticError
		if errors.As(err, &semantic) {
			c.JSON(http.StatusUnprocessableEntity, response.Error(semantic.Msg))
			return
		}
		// Transport failures after the retry budget: report the classified
		// message so callers see what went wrong and where.
		c.JSON(http.StatusBadGateway, response.Error(err.Error()))
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, response.Error(response.MsgDataNotFound))
		return
	}

	c.JSON(http.StatusOK, response.Success(response.MsgDataFound, res))
}
