package main

import (
	"context"
	"os"
	"strings"
	"time"

	"api/database"
	"api/schemas"
	"api/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// One-time bootstrap: creates the first admin account when none exists.
func main() {
	utils.InitLogger("create-admin")

	cfg, err := utils.LoadConfig()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	store, err := database.ConnectMongo(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Could not connect to MongoDB")
	}
	defer store.Close(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	count, err := store.Admins().CountDocuments(ctx, bson.D{{Key: "role", Value: schemas.RoleAdmin}})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Could not check for existing admins")
	}
	if count > 0 {
		utils.Logger.Info("An admin account already exists, nothing to do")
		return
	}

	username := strings.ToLower(getenv(utils.ADMIN_USERNAME, "admin"))
	password := getenv(utils.ADMIN_PASSWORD, "changeme123")
	emailAddr := strings.ToLower(getenv(utils.ADMIN_EMAIL, "admin@example.com"))

	hash, err := utils.HashPassword(password)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Could not hash password")
	}

	adm := schemas.Admin{
		Username:  username,
		Email:     emailAddr,
		Password:  hash,
		FullName:  "System Administrator",
		Role:      schemas.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if _, err := store.Admins().InsertOne(ctx, &adm); err != nil {
		utils.Logger.WithError(err).Fatal("Could not insert admin")
	}

	utils.Logger.Info("Admin user created successfully")
	utils.Logger.Infof("Username: %s", username)
	utils.Logger.Infof("Password: %s", password)
	utils.Logger.Warn("Change the default password after first login")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
