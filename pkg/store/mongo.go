package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
)

const (
	defaultMongoDB = "flowcanvas"
	snapshotColl   = "snapshots"
	snapshotDocID  = "current"
)

// mongoDoc wraps the opaque blob in a single fixed-id document so Save is
// one upsert and Load one find.
type mongoDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// MongoStore keeps the snapshot blob in one MongoDB document.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects with the given URI and database name.
func NewMongoStore(ctx context.Context, uri, db string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo URI must not be empty")
	}
	if db == "" {
		db = defaultMongoDB
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connecting to mongo")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(db).Collection(snapshotColl),
	}, nil
}

// Load fetches the snapshot document; absence is a clean "nothing saved".
func (s *MongoStore) Load(ctx context.Context) ([]byte, bool, error) {
	var doc mongoDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": snapshotDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeStore, err, "loading snapshot document")
	}
	return doc.Data, true, nil
}

// Save upserts the snapshot document.
func (s *MongoStore) Save(ctx context.Context, data []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": snapshotDocID},
		mongoDoc{ID: snapshotDocID, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "saving snapshot document")
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
