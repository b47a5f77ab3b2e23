package reports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the append-only report store. There is deliberately no update
// or delete path: reports are immutable once ingested.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// Lookup path: all reports for a number, newest first
			Keys: bson.D{
				{Key: "number", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			// Trending window scans
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			// Dashboard category distribution
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})

	return &Repository{
		collection: collection,
	}
}

// Insert appends one report. A single document insert is atomic, which is all
// the isolation concurrent submissions need.
func (r *Repository) Insert(ctx context.Context, report *Report) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// FindByNumber returns every report for a normalized number, newest first
func (r *Repository) FindByNumber(ctx context.Context, number string) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"number": number}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Report
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// FindSince returns all reports created at or after cutoff, across numbers
func (r *Repository) FindSince(ctx context.Context, cutoff time.Time) ([]Report, error) {
	filter := bson.M{"createdAt": bson.M{"$gte": cutoff}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Report
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// CountAll returns the total number of stored reports
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CategoryCounts returns the report count per category, via aggregation
func (r *Repository) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}

	return counts, nil
}
