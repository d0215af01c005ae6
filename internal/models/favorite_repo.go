package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AddFavorite upserts the pair so that concurrent duplicate requests settle
// on a single stored row without a separate existence check.
func (mdb *MongodbRepo) AddFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, FavoriteColName)

	filter := bson.M{"userId": userID, "listingId": listingID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"userId":    userID,
			"listingId": listingID,
			"createdAt": time.Now(),
		},
	}

	_, err := col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting favorite: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) RemoveFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, FavoriteColName)

	_, err := col.DeleteOne(ctx, bson.M{"userId": userID, "listingId": listingID})
	if err != nil {
		return fmt.Errorf("error deleting favorite: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListFavoriteIDs(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	col := mdb.GetCollection(ctx, FavoriteColName)

	cursor, err := col.Find(ctx, bson.M{"userId": userID},
		options.Find().SetProjection(bson.M{"listingId": 1}))
	if err != nil {
		return nil, fmt.Errorf("error finding favorites: %v", err)
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var row struct {
			ListingID primitive.ObjectID `bson:"listingId"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("error decoding favorite: %v", err)
		}
		ids = append(ids, row.ListingID.Hex())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return ids, nil
}

// ListFavorites returns the favorited listing documents newest-first,
// dropping pairs whose listing has since been deleted.
func (mdb *MongodbRepo) ListFavorites(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*Listing, int, error) {
	col := mdb.GetCollection(ctx, FavoriteColName)

	total, err := col.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, 0, fmt.Errorf("error counting favorites: %v", err)
	}

	skip := int64((page - 1) * limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))

	cursor, err := col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding favorites: %v", err)
	}
	defer cursor.Close(ctx)

	var favorites []Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, 0, fmt.Errorf("error decoding favorites: %v", err)
	}
	if len(favorites) == 0 {
		return []*Listing{}, int(total), nil
	}

	listingIDs := make([]primitive.ObjectID, 0, len(favorites))
	for _, f := range favorites {
		listingIDs = append(listingIDs, f.ListingID)
	}

	listingsCol := mdb.GetCollection(ctx, ListingColName)
	lcur, err := listingsCol.Find(ctx, bson.M{"_id": bson.M{"$in": listingIDs}})
	if err != nil {
		return nil, 0, fmt.Errorf("error finding favorite listings: %v", err)
	}
	defer lcur.Close(ctx)

	byID := make(map[primitive.ObjectID]*Listing, len(listingIDs))
	for lcur.Next(ctx) {
		var l Listing
		if err := lcur.Decode(&l); err != nil {
			return nil, 0, fmt.Errorf("error decoding listing: %v", err)
		}
		byID[l.ID] = &l
	}
	if err := lcur.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %v", err)
	}

	// keep favorite order
	results := make([]*Listing, 0, len(favorites))
	for _, f := range favorites {
		if l, ok := byID[f.ListingID]; ok {
			results = append(results, l)
		}
	}
	return results, int(total), nil
}

// RemoveFavoritesForListing clears every favorite pointing at a listing,
// used when the listing itself is deleted.
func (mdb *MongodbRepo) RemoveFavoritesForListing(ctx context.Context, listingID primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, FavoriteColName)
	_, err := col.DeleteMany(ctx, bson.M{"listingId": listingID})
	return err
}
