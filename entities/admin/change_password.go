package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// ChangePassword rotates the caller's own password after re-verifying the
// current one.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.AdminFromContext(r.Context())
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	req := ChangePasswordRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		errs := []schemas.FieldError{}
		if req.CurrentPassword == "" {
			errs = append(errs, schemas.FieldError{Field: "currentPassword", Message: "Current password is required"})
		}
		if len(req.NewPassword) < 6 {
			errs = append(errs, schemas.FieldError{Field: "newPassword", Message: "New password must be at least 6 characters"})
		}
		utils.SendValidationErrors(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	adm, err := h.findByID(ctx, claims.ID)
	if err != nil {
		if isNotFound(err) {
			utils.SendResponse(w, http.StatusNotFound, "Admin not found", nil)
			return
		}
		sendServerError(w, err, "Failed to fetch admin", "Error changing password")
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, adm.Password) {
		utils.SendResponse(w, http.StatusUnauthorized, "Current password is incorrect", nil)
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		sendServerError(w, err, "Failed to hash password", "Error changing password")
		return
	}

	_, err = h.store.Admins().UpdateOne(ctx,
		bson.D{{Key: "_id", Value: adm.ID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "password", Value: hash}}}},
	)
	if err != nil {
		sendServerError(w, err, "Failed to update password", "Error changing password")
		return
	}

	utils.SendResponse(w, http.StatusOK, "Password changed successfully", nil)
}
