package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/UpServices02/service-booking/internal/middleware"
)

func actorContext(t *testing.T, actorID uint, role, paramName, paramValue string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/", nil)
	c.Set(middleware.ContextActorID, actorID)
	c.Set(middleware.ContextActorRole, role)
	c.Params = gin.Params{
		{Key: paramName, Value: paramValue},
		{Key: "id", Value: "7"},
	}
	return c, w
}

func assertForbidden(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	var body struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("corpo inválido: %v", err)
	}
	if body.Code != "forbidden" {
		t.Errorf("error_code = %q, want forbidden", body.Code)
	}
}

// O parâmetro de rota tem que bater com o ator do token. Um prestador
// não pode aceitar, recusar ou listar em nome de outro.
func TestActorParamMismatchForbidden(t *testing.T) {
	h := &AppointmentHandler{}

	cases := []struct {
		name    string
		role    string
		param   string
		handler func(*gin.Context)
	}{
		{"accept", "provider", "providerId", h.Accept},
		{"decline", "provider", "providerId", h.Decline},
		{"cancel prestador", "provider", "providerId", h.Cancel},
		{"cancel cliente", "client", "clientId", h.Cancel},
		{"list cliente", "client", "clientId", h.ListForClient},
		{"list prestador", "provider", "providerId", h.ListForProvider},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := actorContext(t, 10, tc.role, tc.param, "99")
			tc.handler(c)
			assertForbidden(t, w)
		})
	}
}

func TestActorParamMatch(t *testing.T) {
	c, _ := actorContext(t, 10, "provider", "providerId", "10")

	id, ok := actorParam(c, "providerId")
	if !ok {
		t.Fatal("parâmetro igual ao ator deveria passar")
	}
	if id != 10 {
		t.Errorf("id = %d, want 10", id)
	}
}

func TestActorParamInvalidID(t *testing.T) {
	c, w := actorContext(t, 10, "provider", "providerId", "abc")

	if _, ok := actorParam(c, "providerId"); ok {
		t.Fatal("identificador inválido deveria falhar")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
