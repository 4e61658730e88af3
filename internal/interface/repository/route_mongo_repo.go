package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"ferry-schedule-service/internal/domain/entity"
	"ferry-schedule-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRouteRepository implements RouteRepository on the "routes" collection
type MongoRouteRepository struct {
	collection *mongo.Collection
}

// NewMongoRouteRepository creates a new MongoDB route repository
func NewMongoRouteRepository(db *mongo.Database) *MongoRouteRepository {
	return &MongoRouteRepository{
		collection: db.Collection("routes"),
	}
}

// routeDocument keeps the numeric fields raw so that documents written by other
// tools with strings or missing values still decode.
type routeDocument struct {
	ID                    bson.RawValue `bson:"_id"`
	Name                  string        `bson:"name"`
	Code                  string        `bson:"code,omitempty"`
	FromCity              string        `bson:"fromCity"`
	ToCity                string        `bson:"toCity"`
	FirstDepartureMinutes bson.RawValue `bson:"firstDepartureMinutes"`
	LastDepartureMinutes  bson.RawValue `bson:"lastDepartureMinutes"`
	IntervalMinutes       bson.RawValue `bson:"intervalMinutes"`
	CreatedAt             time.Time     `bson:"createdAt"`
	UpdatedAt             *time.Time    `bson:"updatedAt,omitempty"`
}

func (d *routeDocument) toEntity() *entity.Route {
	return &entity.Route{
		ID:                    idString(d.ID),
		Name:                  d.Name,
		Code:                  d.Code,
		FromCity:              d.FromCity,
		ToCity:                d.ToCity,
		FirstDepartureMinutes: rawInt(d.FirstDepartureMinutes),
		LastDepartureMinutes:  rawInt(d.LastDepartureMinutes),
		IntervalMinutes:       rawInt(d.IntervalMinutes),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func idString(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return ""
}

// rawInt returns nil for missing, non-numeric or fractional values
func rawInt(v bson.RawValue) *int {
	switch v.Type {
	case bson.TypeInt32:
		n := int(v.Int32())
		return &n
	case bson.TypeInt64:
		n := int(v.Int64())
		return &n
	case bson.TypeDouble:
		f := v.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil
		}
		n := int(f)
		return &n
	}
	return nil
}

// EnsureIndexes creates the indexes the repository relies on
func (r *MongoRouteRepository) EnsureIndexes(ctx context.Context) error {
	// Index on code for uniqueness, sparse since older documents may lack it
	codeIndex := mongo.IndexModel{
		Keys:    bson.M{"code": 1},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}

	// Index on fromCity for sorted listing
	fromCityIndex := mongo.IndexModel{
		Keys: bson.M{"fromCity": 1},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{codeIndex, fromCityIndex})
	return err
}

// List returns all routes sorted by fromCity
func (r *MongoRouteRepository) List(ctx context.Context) ([]*entity.Route, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fromCity", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find routes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []routeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}

	routes := make([]*entity.Route, 0, len(docs))
	for i := range docs {
		routes = append(routes, docs[i].toEntity())
	}
	return routes, nil
}

// FindByID finds a route by its ObjectID hex string or, failing that, by its code
func (r *MongoRouteRepository) FindByID(ctx context.Context, id string) (*entity.Route, error) {
	filter := bson.M{"code": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"$or": []bson.M{{"_id": oid}, {"code": id}}}
	}

	var doc routeDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find route: %w", err)
	}
	return doc.toEntity(), nil
}

// Count returns the number of stored routes
func (r *MongoRouteRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// InsertMany stores new routes and assigns their generated IDs
func (r *MongoRouteRepository) InsertMany(ctx context.Context, routes []*entity.Route) error {
	if len(routes) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(routes))
	for _, route := range routes {
		doc := bson.M{
			"name":      route.Name,
			"fromCity":  route.FromCity,
			"toCity":    route.ToCity,
			"createdAt": route.CreatedAt,
		}
		if route.Code != "" {
			doc["code"] = route.Code
		}
		if route.FirstDepartureMinutes != nil {
			doc["firstDepartureMinutes"] = *route.FirstDepartureMinutes
		}
		if route.LastDepartureMinutes != nil {
			doc["lastDepartureMinutes"] = *route.LastDepartureMinutes
		}
		if route.IntervalMinutes != nil {
			doc["intervalMinutes"] = *route.IntervalMinutes
		}
		docs = append(docs, doc)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert routes: %w", err)
	}

	for i, id := range result.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(routes) {
			routes[i].ID = oid.Hex()
		}
	}
	return nil
}

var _ repository.RouteRepository = (*MongoRouteRepository)(nil)
