package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"printhub/internal/adapter/http/handlers/mocks"
	"printhub/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_ListEligible(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/clients/eligible", NewClientHandler(uc).ListEligible)

		uc.EXPECT().ListEligibleClients(gomock.Any()).Return([]entities.Client{{ID: 2, Name: "Acme", Status: entities.ClientStatusActive}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/clients/eligible", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "Acme" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/clients/eligible", NewClientHandler(uc).ListEligible)

		uc.EXPECT().ListEligibleClients(gomock.Any()).Return(nil, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/v1/clients/eligible", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
