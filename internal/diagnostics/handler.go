package diagnostics

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kaamkar-app/kaamkar-lambda/internal/config"
)

// requiredEnvVars is what a healthy deployment needs. Values are never
// reported in full.
var requiredEnvVars = []string{
	"DATABASE_DSN",
	"JWT_SECRET",
	"CRYPTO_KEY",
	"GEMINI_API_KEY",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"GOOGLE_REDIRECT_URL",
	"ALLOWED_ORIGINS",
}

type EnvVarStatus struct {
	Exists  bool   `json:"exists"`
	Length  int    `json:"length,omitempty"`
	Preview string `json:"preview,omitempty"`
}

type EnvCheckResponse struct {
	Status    string                  `json:"status"`
	Message   string                  `json:"message"`
	EnvVars   map[string]EnvVarStatus `json:"env_vars"`
	Timestamp time.Time               `json:"timestamp"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) EnvCheck(w http.ResponseWriter, r *http.Request) {
	vars := make(map[string]EnvVarStatus, len(requiredEnvVars))
	for _, name := range requiredEnvVars {
		vars[name] = checkEnvVar(name)
	}

	config.JSON(w, http.StatusOK, EnvCheckResponse{
		Status:    "success",
		Message:   "Environment variables check",
		EnvVars:   vars,
		Timestamp: time.Now(),
	})
}

// checkEnvVar reports presence without exposing the value. Secret-looking
// names get a first/last 3 character preview, everything else at most the
// first 10 characters.
func checkEnvVar(name string) EnvVarStatus {
	value := os.Getenv(name)
	if value == "" {
		return EnvVarStatus{Exists: false}
	}

	if strings.Contains(name, "KEY") || strings.Contains(name, "SECRET") || strings.Contains(name, "DSN") {
		preview := "..."
		if len(value) >= 6 {
			preview = value[:3] + "..." + value[len(value)-3:]
		}
		return EnvVarStatus{Exists: true, Length: len(value), Preview: preview}
	}

	preview := value
	if len(value) > 10 {
		preview = value[:10] + "..."
	}
	return EnvVarStatus{Exists: true, Length: len(value), Preview: preview}
}
