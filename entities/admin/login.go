package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Token   string               `json:"token"`
	Admin   schemas.AdminProfile `json:"admin"`
}

// Login exchanges credentials for a signed session token. Unknown username
// and wrong password produce the same generic message so the endpoint never
// reveals which accounts exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req := LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Username and password are required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	username := strings.ToLower(strings.TrimSpace(req.Username))

	adm := schemas.Admin{}
	err := h.store.Admins().FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&adm)
	if err != nil {
		if isNotFound(err) {
			utils.Logger.Infof("Login failed: user %q not found", username)
			utils.SendResponse(w, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		sendServerError(w, err, "Failed to look up admin", "Server error during login")
		return
	}

	if !utils.CheckPasswordHash(req.Password, adm.Password) {
		utils.Logger.Infof("Login failed: password mismatch for user %q", username)
		utils.SendResponse(w, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	if !adm.IsActive {
		utils.SendResponse(w, http.StatusForbidden, "Account is inactive", nil)
		return
	}

	now := time.Now()
	_, err = h.store.Admins().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: adm.ID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "last_login", Value: now}}}},
	)
	if err != nil {
		// Login still succeeds; the stamp is best-effort.
		utils.Logger.WithError(err).Warn("Failed to stamp last login")
	} else {
		adm.LastLogin = &now
	}

	token, err := middlewares.GenerateToken(h.cfg.JWTSecret, &adm, h.cfg.TokenExpiry)
	if err != nil {
		sendServerError(w, err, "Failed to sign token", "Server error during login")
		return
	}

	utils.SendJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Admin:   adm.Profile(),
	})
}
