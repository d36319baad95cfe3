package handler

import (
	"net/http"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req.
// Returns false and writes a 400 if the body is not valid JSON for req;
// the caller should return immediately without writing another response.
// Field contents are not validated: an absent field is a legal value.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}
