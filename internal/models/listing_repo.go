package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingRepo interface {
	CreateListing(ctx context.Context, listing *Listing) (*Listing, error)
	GetListing(ctx context.Context, id primitive.ObjectID) (*Listing, error)
	ListingExists(ctx context.Context, id primitive.ObjectID) (bool, error)
	UpdateListing(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (*Listing, error)
	DeleteListing(ctx context.Context, id primitive.ObjectID) error
	SearchListings(ctx context.Context, params SearchParams) ([]*Listing, error)
	ListByUser(ctx context.Context, userRef string) ([]*Listing, error)
}

func (mdb *MongodbRepo) CreateListing(ctx context.Context, listing *Listing) (*Listing, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	res, err := col.InsertOne(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("error inserting listing: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}
	return listing, nil
}

func (mdb *MongodbRepo) GetListing(ctx context.Context, id primitive.ObjectID) (*Listing, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	var listing Listing
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding listing: %v", err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) ListingExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	count, err := col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("error checking listing: %v", err)
	}
	return count > 0, nil
}

// UpdateListing applies the allow-listed $set fields and clears the stale
// attribute groups named in unset, returning the updated document.
func (mdb *MongodbRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (*Listing, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	set["updatedAt"] = time.Now()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var listing Listing
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&listing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating listing: %v", err)
	}
	return &listing, nil
}

func (mdb *MongodbRepo) DeleteListing(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, ListingColName)

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting listing: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (mdb *MongodbRepo) SearchListings(ctx context.Context, params SearchParams) ([]*Listing, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	opts := options.Find().
		SetSort(params.BuildSort()).
		SetSkip(int64(params.StartIndex)).
		SetLimit(int64(params.ClampedLimit()))
	if params.Term != "" {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}

	cursor, err := col.Find(ctx, params.BuildSearchFilter(), opts)
	if err != nil {
		return nil, fmt.Errorf("error searching listings: %v", err)
	}
	defer cursor.Close(ctx)

	listings := []*Listing{}
	for cursor.Next(ctx) {
		var l Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("error decoding listing: %v", err)
		}
		listings = append(listings, &l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return listings, nil
}

func (mdb *MongodbRepo) ListByUser(ctx context.Context, userRef string) ([]*Listing, error) {
	col := mdb.GetCollection(ctx, ListingColName)

	cursor, err := col.Find(ctx, bson.M{"userRef": userRef},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding user listings: %v", err)
	}
	defer cursor.Close(ctx)

	listings := []*Listing{}
	for cursor.Next(ctx) {
		var l Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("error decoding listing: %v", err)
		}
		listings = append(listings, &l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return listings, nil
}
