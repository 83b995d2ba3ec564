package leads

import (
	"api/database"
	"api/email"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Handler owns the lead endpoints. The store client, mailer and websocket
// feed are constructed once in main and passed in.
type Handler struct {
	store  *database.Mongo
	mailer *email.Mailer
	feed   *Feed
}

func NewHandler(store *database.Mongo, mailer *email.Mailer, feed *Feed) *Handler {
	return &Handler{store: store, mailer: mailer, feed: feed}
}
