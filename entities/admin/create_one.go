package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role"`
}

// CreateOne adds another dashboard account. Reachable only through the
// admin-role middleware.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	req := CreateAdminRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "Invalid request data", nil)
		return
	}

	if errs := validateCreateAdmin(&req); len(errs) > 0 {
		utils.SendValidationErrors(w, errs)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	emailAddr := strings.ToLower(strings.TrimSpace(req.Email))

	role := req.Role
	if role == "" {
		role = schemas.RoleAgent
	}

	ctx, cancel := context.WithTimeout(r.Context(), database.MONGO_TIMEOUT)
	defer cancel()

	count, err := h.store.Admins().CountDocuments(ctx, bson.D{
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "username", Value: username}},
			bson.D{{Key: "email", Value: emailAddr}},
		}},
	})
	if err != nil {
		sendServerError(w, err, "Failed to check existing admins", "Error creating admin")
		return
	}
	if count > 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Username or email already exists", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		sendServerError(w, err, "Failed to hash password", "Error creating admin")
		return
	}

	adm := schemas.Admin{
		Username:  username,
		Email:     emailAddr,
		Password:  hash,
		FullName:  strings.TrimSpace(req.FullName),
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	result, err := h.store.Admins().InsertOne(ctx, &adm)
	if err != nil {
		sendServerError(w, err, "Failed to insert admin", "Error creating admin")
		return
	}
	adm.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "Admin created successfully", adm.Profile())
}

func validateCreateAdmin(req *CreateAdminRequest) []schemas.FieldError {
	var errs []schemas.FieldError

	if err := validate.Struct(req); err != nil {
		if strings.TrimSpace(req.Username) == "" {
			errs = append(errs, schemas.FieldError{Field: "username", Message: "Username is required"})
		}
		if len(req.Password) < 6 {
			errs = append(errs, schemas.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
		}
		if req.Email == "" {
			errs = append(errs, schemas.FieldError{Field: "email", Message: "Valid email is required"})
		}
		if strings.TrimSpace(req.FullName) == "" {
			errs = append(errs, schemas.FieldError{Field: "fullName", Message: "Full name is required"})
		}
		if len(errs) == 0 {
			errs = append(errs, schemas.FieldError{Field: "email", Message: "Valid email is required"})
		}
	}

	if req.Role != "" && !schemas.IsValidAdminRole(req.Role) {
		errs = append(errs, schemas.FieldError{Field: "role", Message: "Invalid role"})
	}

	return errs
}
