package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpdateAdminRequest carries the mutable account fields. Pointers
// distinguish "absent" from zero values.
type UpdateAdminRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"fullName"`
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

// UpdateOne mutates the allowed fields of an account. Admins may edit
// anyone; other roles only themselves, and never their own role.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.AdminFromContext(r.Context())
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	targetID := r.PathValue("id")
	if claims.Role != schemas.RoleAdmin && claims.ID != targetID {
		utils.SendResponse(w, http.StatusForbidden, "Not authorized to access this resource", nil)
		return
	}

	id, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid admin ID format", nil)
		return
	}

	req := UpdateAdminRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	updateDoc := bson.D{}
	if req.Email != nil {
		updateDoc = append(updateDoc, bson.E{Key: "email", Value: strings.ToLower(strings.TrimSpace(*req.Email))})
	}
	if req.FullName != nil {
		updateDoc = append(updateDoc, bson.E{Key: "full_name", Value: strings.TrimSpace(*req.FullName)})
	}
	if req.IsActive != nil {
		updateDoc = append(updateDoc, bson.E{Key: "is_active", Value: *req.IsActive})
	}
	if req.Role != nil && claims.Role == schemas.RoleAdmin {
		if !schemas.IsValidAdminRole(*req.Role) {
			utils.SendValidationErrors(w, []schemas.FieldError{
				{Field: "role", Message: "Invalid role"},
			})
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "role", Value: *req.Role})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "No updatable fields provided", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	adm := schemas.Admin{}
	err = h.store.Admins().
		FindOneAndUpdate(ctx,
			bson.D{{Key: "_id", Value: id}},
			bson.D{{Key: "$set", Value: updateDoc}},
			opts,
		).
		Decode(&adm)
	if err != nil {
		if isNotFound(err) {
			utils.SendResponse(w, http.StatusNotFound, "Admin not found", nil)
			return
		}
		sendServerError(w, err, "Failed to update admin", "Error updating admin")
		return
	}

	utils.SendResponse(w, http.StatusOK, "Admin updated successfully", adm.Profile())
}
