package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"samsat-api/internal/service"
	"samsat-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
	maxNopolLength   = 15
)

var nopolPattern = regexp.MustCompile(`^[A-Z0-9 ]+$`)

// nopolParam validates the nopol query parameter. Returns the raw value and
// an Indonesian validation message when it is unusable.
func nopolParam(c *gin.Context) (string, string) {
	nopol := strings.TrimSpace(c.Query("nopol"))
	if nopol == "" {
		return "", "Nopol tidak boleh kosong"
	}
	if len(nopol) > maxNopolLength {
		return "", "Nopol terlalu panjang"
	}
	if !nopolPattern.MatchString(strings.ToUpper(nopol)) {
		return "", "Format nopol tidak valid"
	}
	return nopol, ""
}

type KendaraanHandler struct {
	kendaraanService service.KendaraanService
	pnbpService      service.PnbpService
}

func NewKendaraanHandler(kendaraanService service.KendaraanService, pnbpService service.PnbpService) *KendaraanHandler {
	return &KendaraanHandler{kendaraanService: kendaraanService, pnbpService: pnbpService}
}

func (h *KendaraanHandler) RegisterRoutes(router *gin.RouterGroup) {
	kendaraan := router.Group("/kendaraan")
	{
		kendaraan.GET("", h.GetAll)
		kendaraan.GET("/detail", h.GetDetail)
		kendaraan.GET("/pnbp", h.GetPnbp)
	}
}

// GetAll godoc
// @Summary      List kendaraan
// @Description  Returns a sample of vehicle records from the legacy tables
// @Tags         kendaraan
// @Produce      json
// @Param        limit  query  int  false  "Max rows to return (default 10, max 100)"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     ApiKeyAuth
// @Router       /api/kendaraan [get]
func (h *KendaraanHandler) GetAll(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, response.Error("Parameter limit tidak valid"))
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := h.kendaraanService.GetAll(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		return
	}

	c.JSON(http.StatusOK, response.Success(response.MsgDataFound, rows))
}

// GetDetail godoc
// @Summary      Detail kendaraan by nopol
// @Description  Vehicle attributes, NJKB valuation and last transaction location
// @Tags         kendaraan
// @Produce      json
// @Param        nopol  query  string  true  "Plate number, e.g. BH1234AB"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     ApiKeyAuth
// @Router       /api/kendaraan/detail [get]
func (h *KendaraanHandler) GetDetail(c *gin.Context) {
	nopol, msg := nopolParam(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, response.Error(msg))
		return
	}

	res, err := h.kendaraanService.GetByNopol(c.Request.Context(), nopol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(response.MsgInternalError))
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, response.Error(response.MsgDataNotFound))
		return
	}

	c.JSON(http.StatusOK, response.Success(response.MsgDataFound, res))
}

// GetPnbp godoc
// @Summary      PNBP fees by nopol
// @Description  STNK and TNKB reissue fees for the 5-yearly renewal
// @Tags         kendaraan
// @Produce      json
// @Param        nopol  query  string  true  "Plate number"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Security     ApiKeyAuth
// @Router       /api/kendaraan/pnbp [get]
func (h *KendaraanHandler) GetPnbp(c *gin.Context) {
	nopol, msg := nopolParam(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, response.Error(msg))
		return
	}

	res, err := h.pnbpService.GetByNopol(c.Request.Context(), nopol)
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
