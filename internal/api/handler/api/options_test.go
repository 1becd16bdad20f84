// internal/api/handler/api/options_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/newthinker/overlay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsHandler_List(t *testing.T) {
	h := NewOptionsHandler(config.DefaultOptions())

	req := httptest.NewRequest("GET", "/api/options", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data config.Options `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Instruments, 9)
	assert.Len(t, resp.Data.Deltas, 7)
	assert.Equal(t, "physical", resp.Data.HoldingTypes[0].Value)
	assert.Equal(t, "正股持仓", resp.Data.HoldingTypes[0].Label)
}

func TestOptionsHandler_CopiesOptions(t *testing.T) {
	opts := config.DefaultOptions()
	h := NewOptionsHandler(opts)
	opts.Instruments[0].Label = "changed"

	req := httptest.NewRequest("GET", "/api/options", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	assert.NotContains(t, w.Body.String(), "changed")
}
