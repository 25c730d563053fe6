package handler

import (
	"net/http"

	"github.com/vfg2006/clinic-financial-model/pkg/apiErrors"
	"github.com/vfg2006/clinic-financial-model/pkg/middleware"
)

type MeResponse struct {
	Subject   string `json:"subject"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// GetMe retorna o titular e o papel do token usado na requisição
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		response := MeResponse{
			Subject: claims.Subject,
			Role:    claims.Role,
		}
		if claims.ExpiresAt != nil {
			response.ExpiresAt = claims.ExpiresAt.Unix()
		}

		writeJSON(w, r, response)
	}
}
