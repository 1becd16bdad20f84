// internal/api/handler/api/options.go
package api

import (
	"net/http"

	"github.com/newthinker/overlay/internal/api/response"
	"github.com/newthinker/overlay/internal/config"
)

// OptionsHandler serves the selectable instruments, deltas and holding types.
type OptionsHandler struct {
	options config.Options
}

// NewOptionsHandler creates a new options handler.
func NewOptionsHandler(options config.Options) *OptionsHandler {
	return &OptionsHandler{options: options.Clone()}
}

// List returns all option tables.
func (h *OptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.options.Clone())
}
