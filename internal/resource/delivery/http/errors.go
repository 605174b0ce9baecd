package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"consulate-console/internal/resource"
	"consulate-console/pkg/response"
	"consulate-console/pkg/restclient"
)

// queryError is the single error-surfacing policy for read paths: typed
// errors map to their status, upstream failures to 502, everything else
// to a generic 500. The client's error panel retries by re-issuing the
// same request.
func (h *Handler[T]) queryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, resource.ErrEmptyID):
		response.Error(c, http.StatusBadRequest, "identifiant manquant", nil)
	case errors.Is(err, resource.ErrNotFound):
		response.Error(c, http.StatusNotFound, "ressource introuvable", nil)
	default:
		if apiErr, ok := restclient.AsAPIError(err); ok {
			h.l.Errorf(c.Request.Context(), "delivery %s: upstream failure: %v", h.desc.Name, err)
			response.Error(c, http.StatusBadGateway, apiErr.Message, nil)
			return
		}
		h.l.Errorf(c.Request.Context(), "delivery %s: %v", h.desc.Name, err)
		response.InternalError(c)
	}
}
