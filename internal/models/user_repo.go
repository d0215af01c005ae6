package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound = errors.New("user not found")

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col := mdb.GetCollection(ctx, UserColName)

	now := time.Now()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	col := mdb.GetCollection(ctx, UserColName)

	var user User
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col := mdb.GetCollection(ctx, UserColName)

	var user User
	err := col.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetPublicUser(ctx context.Context, id primitive.ObjectID) (*PublicUser, error) {
	col := mdb.GetCollection(ctx, UserColName)

	opts := options.FindOne().SetProjection(bson.M{
		"username":  1,
		"avatar":    1,
		"createdAt": 1,
	})

	var user PublicUser
	err := col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*User, error) {
	col := mdb.GetCollection(ctx, UserColName)

	set := bson.M{"updatedAt": time.Now()}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	if update.Avatar != nil {
		set["avatar"] = *update.Avatar
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (mdb *MongodbRepo) MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error {
	col := mdb.GetCollection(ctx, UserColName)

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"emailVerified": true, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (mdb *MongodbRepo) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	col := mdb.GetCollection(ctx, UserColName)

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUserCascade removes the user together with their listings and every
// favorite that references either side of them. Listing ids and image URLs
// are collected up front; the database deletions then run concurrently since
// none depends on another. Storage cleanup is left to the caller because it
// is best-effort while these deletions are not.
func (mdb *MongodbRepo) DeleteUserCascade(ctx context.Context, id primitive.ObjectID) (*CascadeResult, error) {
	user, err := mdb.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listingsCol := mdb.GetCollection(ctx, ListingColName)
	favoritesCol := mdb.GetCollection(ctx, FavoriteColName)
	usersCol := mdb.GetCollection(ctx, UserColName)

	cursor, err := listingsCol.Find(ctx, bson.M{"userRef": id.Hex()},
		options.Find().SetProjection(bson.M{"_id": 1, "images": 1}))
	if err != nil {
		return nil, fmt.Errorf("error collecting user listings: %v", err)
	}
	var owned []struct {
		ID     primitive.ObjectID `bson:"_id"`
		Images []string           `bson:"images"`
	}
	if err := cursor.All(ctx, &owned); err != nil {
		return nil, fmt.Errorf("error decoding user listings: %v", err)
	}

	listingIDs := make([]primitive.ObjectID, 0, len(owned))
	var imageURLs []string
	for _, l := range owned {
		listingIDs = append(listingIDs, l.ID)
		imageURLs = append(imageURLs, l.Images...)
	}
	if user.Avatar != "" {
		imageURLs = append(imageURLs, user.Avatar)
	}

	result := &CascadeResult{ImageURLs: imageURLs}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := listingsCol.DeleteMany(gctx, bson.M{"userRef": id.Hex()})
		if err != nil {
			return fmt.Errorf("error deleting listings: %v", err)
		}
		result.ListingsDeleted = res.DeletedCount
		return nil
	})
	g.Go(func() error {
		filter := bson.M{"userId": id}
		if len(listingIDs) > 0 {
			filter = bson.M{"$or": bson.A{
				bson.M{"userId": id},
				bson.M{"listingId": bson.M{"$in": listingIDs}},
			}}
		}
		res, err := favoritesCol.DeleteMany(gctx, filter)
		if err != nil {
			return fmt.Errorf("error deleting favorites: %v", err)
		}
		result.FavoritesDeleted = res.DeletedCount
		return nil
	})
	g.Go(func() error {
		if _, err := usersCol.DeleteOne(gctx, bson.M{"_id": id}); err != nil {
			return fmt.Errorf("error deleting user: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
