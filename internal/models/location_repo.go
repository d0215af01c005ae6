package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrGovernorateNotFound = errors.New("Governorate not found")
	ErrCityNotFound        = errors.New("City not found in governorate")
	ErrAreaNotFound        = errors.New("Area not found")
)

type LocationRepo interface {
	GetGovernorates(ctx context.Context, q string) ([]Governorate, error)
	GetGovernorate(ctx context.Context, govSlug string) (*Governorate, error)
	GetCity(ctx context.Context, govSlug, citySlug string) (*Governorate, *City, error)
	GetArea(ctx context.Context, govSlug, citySlug, areaSlug string) (*Governorate, *City, *Area, error)
	UpsertGovernorate(ctx context.Context, gov Governorate) error
	LogSuggestedArea(ctx context.Context, govSlug, govName, displayName string) error
}

// GetGovernorates lists all governorates, optionally filtered by a
// case-insensitive q across names and slug. Sorted by sort then name.
func (mdb *MongodbRepo) GetGovernorates(ctx context.Context, q string) ([]Governorate, error) {
	col := mdb.GetCollection(ctx, LocationColName)

	filter := bson.M{}
	if q = strings.TrimSpace(q); q != "" {
		quoted := regexp.QuoteMeta(q)
		slugQ := regexp.QuoteMeta(strings.ToLower(collapseSpaces.ReplaceAllString(q, "-")))
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": quoted, "$options": "i"}},
			bson.M{"nameAr": bson.M{"$regex": quoted, "$options": "i"}},
			bson.M{"slug": bson.M{"$regex": slugQ, "$options": "i"}},
		}
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "nameAr": 1, "slug": 1, "sort": 1}).
		SetSort(bson.D{{Key: "sort", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding governorates: %v", err)
	}
	defer cursor.Close(ctx)

	var govs []Governorate
	if err := cursor.All(ctx, &govs); err != nil {
		return nil, fmt.Errorf("error decoding governorates: %v", err)
	}
	return DedupeBySlug(govs, func(g Governorate) string { return g.Slug }), nil
}

func (mdb *MongodbRepo) GetGovernorate(ctx context.Context, govSlug string) (*Governorate, error) {
	col := mdb.GetCollection(ctx, LocationColName)

	var gov Governorate
	err := col.FindOne(ctx, bson.M{"slug": strings.ToLower(govSlug)}).Decode(&gov)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGovernorateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding governorate: %v", err)
	}
	return &gov, nil
}

// GetCity validates each level independently: a missing governorate and a
// missing city report different errors.
func (mdb *MongodbRepo) GetCity(ctx context.Context, govSlug, citySlug string) (*Governorate, *City, error) {
	gov, err := mdb.GetGovernorate(ctx, govSlug)
	if err != nil {
		return nil, nil, err
	}
	for i := range gov.Cities {
		if gov.Cities[i].Slug == strings.ToLower(citySlug) {
			return gov, &gov.Cities[i], nil
		}
	}
	return nil, nil, ErrCityNotFound
}

func (mdb *MongodbRepo) GetArea(ctx context.Context, govSlug, citySlug, areaSlug string) (*Governorate, *City, *Area, error) {
	gov, city, err := mdb.GetCity(ctx, govSlug, citySlug)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := range city.Areas {
		if city.Areas[i].Slug == strings.ToLower(areaSlug) {
			return gov, city, &city.Areas[i], nil
		}
	}
	return nil, nil, nil, ErrAreaNotFound
}

// UpsertGovernorate writes seed data idempotently, keyed by slug.
func (mdb *MongodbRepo) UpsertGovernorate(ctx context.Context, gov Governorate) error {
	col := mdb.GetCollection(ctx, LocationColName)

	_, err := col.UpdateOne(ctx,
		bson.M{"slug": gov.Slug},
		bson.M{"$set": bson.M{
			"name":   gov.Name,
			"nameAr": gov.NameAr,
			"slug":   gov.Slug,
			"sort":   gov.Sort,
			"cities": gov.Cities,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("error upserting governorate %s: %v", gov.Slug, err)
	}
	return nil
}

// LogSuggestedArea records a free-text area once per (governorate,
// normalized name). Repeat submissions leave the first record untouched.
func (mdb *MongodbRepo) LogSuggestedArea(ctx context.Context, govSlug, govName, displayName string) error {
	col := mdb.GetCollection(ctx, SuggestedAreaColName)

	_, err := col.UpdateOne(ctx,
		bson.M{
			"governorateSlug": strings.ToLower(govSlug),
			"name":            strings.ToLower(displayName),
		},
		bson.M{"$setOnInsert": bson.M{
			"governorateName": govName,
			"displayName":     displayName,
			"source":          "listing",
			"createdAt":       time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
