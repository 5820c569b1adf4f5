package handler

import "net/http"

const apiVersion = "1.0.0"

type RootResponse struct {
	Message   string            `json:"message" example:"Country Currency Exchange API"`
	Version   string            `json:"version" example:"1.0.0"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root godoc
// @Summary API index
// @Description Service name, version and available endpoints
// @Tags Meta
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message: "Country Currency Exchange API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"POST /countries/refresh": "Fetch and cache countries",
			"GET /countries":          "Get all countries (supports ?region, ?currency, ?sort)",
			"GET /countries/:name":    "Get one country by name",
			"DELETE /countries/:name": "Delete a country",
			"GET /status":             "Get API status",
			"GET /countries/image":    "Get summary image",
		},
	})
}
