package middlewares

import (
	"net/http"
	"slices"

	"api/utils"
)

func Cors(cfg *utils.Config) func(http.Handler) http.Handler {
	allowedOrigins := []string{
		"http://localhost:5000",
		"http://localhost:3000",
	}

	if cfg.Env == utils.ENV_RELEASE {
		allowedOrigins = []string{
			"https://uscashbuyers.com",
			"https://www.uscashbuyers.com",
			"http://localhost:5000",
			"http://localhost:3000",
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == "OPTIONS" {
				utils.SendResponse(w, http.StatusOK, "", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
