package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingerrors "cemdon/internal/bookings/errors"
	"cemdon/pkg/config"
	"cemdon/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionName = "BookingSessions"
	ExpiresAtField = "expires_at"
)

// sessionDocument is model.BookingState plus the TTL index field.
type sessionDocument struct {
	model.BookingState `bson:",inline"`
	ExpiresAt          time.Time `bson:"expires_at"`
}

type mongoDraftRepository struct {
	cfg        *config.Config
	client     *mongo.Client
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoDraftRepository(cfg *config.Config) DraftRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoDraftRepository{
		cfg:        cfg,
		client:     cfg.Client.Mongo,
		collection: db.Collection(CollectionName),
		now:        time.Now,
	}
}

// Get filters on expires_at because the server-side TTL monitor only runs
// about once a minute.
func (r *mongoDraftRepository) Get(ctx context.Context, sessionID string) (*model.BookingState, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"_id":          sessionID,
		ExpiresAtField: bson.M{"$gt": r.now().UTC()},
	}

	var doc sessionDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingerrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	return &doc.BookingState, nil
}

func (r *mongoDraftRepository) Save(ctx context.Context, state *model.BookingState) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	doc := sessionDocument{
		BookingState: *state,
		ExpiresAt:    r.now().UTC().Add(r.cfg.SessionTTL).Truncate(time.Millisecond),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": state.SessionID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.SessionID, err)
	}
	return nil
}

func (r *mongoDraftRepository) Delete(ctx context.Context, sessionID string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (r *mongoDraftRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()
	return r.client.Ping(ctx, readpref.Primary())
}
