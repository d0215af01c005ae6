package models

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, name string) *mongo.Collection {
	return mdb.mongodbClient.Database(mdb.dbName).Collection(name)
}

// IsDuplicateKeyErr reports whether err is a unique-index violation and, if
// so, which indexed field caused it so the handler can name it in the 409.
func IsDuplicateKeyErr(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if !mongo.IsDuplicateKeyError(err) {
		return "", false
	}
	msg := err.Error()
	for _, field := range []string{"username", "email", "listingId", "name", "slug"} {
		if strings.Contains(msg, field) {
			return field, true
		}
	}
	return "field", true
}
