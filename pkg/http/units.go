package http

import (
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"dacops.xyz/dac-monitor-service/pkg/models"
)

func (rs *RestfulServer) GetUnits(c *gin.Context) {
	skip, limit := parsePagination(c)

	units, err := rs.Dac.Unit.ListUnits(skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, units)
}

func (rs *RestfulServer) GetUnit(c *gin.Context) {
	unitID, ok := parseUUIDParam(c, "unit_id")
	if !ok {
		return
	}

	unit, err := rs.Dac.Unit.GetUnit(unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}

type UnitStatusRequest struct {
	Status string `json:"status"`
}

var unitStatusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().Required(),
})

func (rs *RestfulServer) UpdateUnitStatus(c *gin.Context) {
	unitID, ok := parseUUIDParam(c, "unit_id")
	if !ok {
		return
	}

	var req UnitStatusRequest
	if err := unitStatusRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	status := models.UnitStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid status"})
		return
	}

	unit, err := rs.Dac.Unit.UpdateUnitStatus(unitID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, unit)
}
