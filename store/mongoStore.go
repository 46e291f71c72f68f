package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastetrack-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	complaintsCollection = "complaints"
	vehiclesCollection   = "vehicles"
	countersCollection   = "counters"

	queryTimeout = 10 * time.Second
)

// MongoComplaintRepository stores complaints in MongoDB. Ids come from a
// counters document so concurrent submissions never share one.
type MongoComplaintRepository struct {
	complaints *mongo.Collection
	counters   *mongo.Collection
}

func NewMongoComplaintRepository(db *mongo.Database) *MongoComplaintRepository {
	return &MongoComplaintRepository{
		complaints: db.Collection(complaintsCollection),
		counters:   db.Collection(countersCollection),
	}
}

// Seed loads seed when the collection is empty and aligns the id counter.
func (r *MongoComplaintRepository) Seed(ctx context.Context, seed []models.Complaint) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := r.complaints.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count complaints: %w", err)
	}
	if count == 0 && len(seed) > 0 {
		docs := make([]interface{}, 0, len(seed))
		for _, c := range seed {
			docs = append(docs, c)
		}
		if _, err := r.complaints.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed complaints: %w", err)
		}
		count = int64(len(seed))
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": complaintsCollection},
		bson.M{"$max": bson.M{"value": count}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("init complaint counter: %w", err)
	}
	return nil
}

func (r *MongoComplaintRepository) List(ctx context.Context) ([]models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}, {Key: "_id", Value: -1}})
	cursor, err := r.complaints.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find complaints: %w", err)
	}
	defer cursor.Close(ctx)

	complaints := []models.Complaint{}
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, fmt.Errorf("decode complaints: %w", err)
	}
	return complaints, nil
}

func (r *MongoComplaintRepository) FindByID(ctx context.Context, id int) (models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var complaint models.Complaint
	err := r.complaints.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrNotFound)
		}
		return models.Complaint{}, fmt.Errorf("find complaint %d: %w", id, err)
	}
	return complaint, nil
}

func (r *MongoComplaintRepository) InsertFront(ctx context.Context, c models.Complaint) (models.Complaint, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return models.Complaint{}, err
	}
	c.ID = id
	c.Seq = frontSeq(id)

	if _, err := r.complaints.InsertOne(ctx, c); err != nil {
		return models.Complaint{}, fmt.Errorf("insert complaint: %w", err)
	}
	return c, nil
}

func (r *MongoComplaintRepository) nextID(ctx context.Context) (int, error) {
	var counter struct {
		Value int `bson:"value"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": complaintsCollection},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate complaint id: %w", err)
	}
	return counter.Value, nil
}

// UpdateStatus replaces the document only if its status is still the one
// mutate saw, so two racing transitions cannot both succeed.
func (r *MongoComplaintRepository) UpdateStatus(ctx context.Context, id int, mutate func(*models.Complaint) error) (models.Complaint, error) {
	current, err := r.FindByID(ctx, id)
	if err != nil {
		return models.Complaint{}, err
	}

	updated := current.Clone()
	if err := mutate(&updated); err != nil {
		return models.Complaint{}, err
	}
	updated.ID = current.ID
	updated.Seq = current.Seq

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.complaints.ReplaceOne(ctx, bson.M{"_id": id, "status": current.Status}, updated)
	if err != nil {
		return models.Complaint{}, fmt.Errorf("update complaint %d: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return models.Complaint{}, fmt.Errorf("complaint %d: %w", id, ErrConflict)
	}
	return updated, nil
}

// MongoVehicleRepository reads the fleet from MongoDB.
type MongoVehicleRepository struct {
	vehicles *mongo.Collection
}

func NewMongoVehicleRepository(db *mongo.Database) *MongoVehicleRepository {
	return &MongoVehicleRepository{vehicles: db.Collection(vehiclesCollection)}
}

// Seed loads seed when the collection is empty.
func (r *MongoVehicleRepository) Seed(ctx context.Context, seed []models.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := r.vehicles.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count vehicles: %w", err)
	}
	if count > 0 || len(seed) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seed))
	for _, v := range seed {
		docs = append(docs, v)
	}
	if _, err := r.vehicles.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed vehicles: %w", err)
	}
	return nil
}

func (r *MongoVehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.vehicles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	if err := cursor.All(ctx, &vehicles); err != nil {
		return nil, fmt.Errorf("decode vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *MongoVehicleRepository) FindByID(ctx context.Context, id string) (models.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var vehicle models.Vehicle
	err := r.vehicles.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Vehicle{}, fmt.Errorf("vehicle %q: %w", id, ErrNotFound)
		}
		return models.Vehicle{}, fmt.Errorf("find vehicle %q: %w", id, err)
	}
	return vehicle, nil
}
