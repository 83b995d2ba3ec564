package database

import (
	"context"
	"time"

	"api/utils"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	MONGO_TIMEOUT = 20 * time.Second

	COLLECTION_LEADS  = "leads"
	COLLECTION_ADMINS = "admins"

	connectAttempts = 3
	connectBackoff  = 3 * time.Second
)

// Mongo wraps the shared client and database handle. It is constructed once
// at startup and passed down to the handlers; nothing reconnects per request.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// ConnectMongo dials the store with a bounded number of attempts and a fixed
// backoff. A failure after the last attempt is returned to the caller, which
// treats it as fatal.
func ConnectMongo(cfg *utils.Config) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(30 * time.Second).
		SetTimeout(45 * time.Second)

	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= connectAttempts; attempt++ {
		utils.Logger.Infof("MongoDB connection attempt %d/%d", attempt, connectAttempts)

		client, err = mongo.Connect(opts)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), MONGO_TIMEOUT)
			err = client.Ping(ctx, nil)
			cancel()
			if err == nil {
				utils.Logger.Infof("Connected to MongoDB, database %q", cfg.MongoDB)
				return &Mongo{Client: client, DB: client.Database(cfg.MongoDB)}, nil
			}
			_ = client.Disconnect(context.Background())
		}

		utils.Logger.WithError(err).Warn("MongoDB connection failed")
		if attempt < connectAttempts {
			time.Sleep(connectBackoff)
		}
	}

	return nil, err
}

// Ping reports store connectivity for the health endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

func (m *Mongo) Leads() *mongo.Collection {
	return m.DB.Collection(COLLECTION_LEADS)
}

func (m *Mongo) Admins() *mongo.Collection {
	return m.DB.Collection(COLLECTION_ADMINS)
}
