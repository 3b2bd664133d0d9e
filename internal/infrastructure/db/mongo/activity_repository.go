package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobdash/jobsearch-api/internal/core/domain"
)

const activityCollection = "linkedin_activities"

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	ActivityDate int64              `bson:"activity_date,omitempty"`
	ActivityType string             `bson:"activity_type"`
	Description  string             `bson:"description,omitempty"`
	Link         string             `bson:"link,omitempty"`
}

func activityToDoc(a *domain.LinkedInActivity) mongoActivity {
	return mongoActivity{
		UserID:       a.UserID,
		ActivityDate: dateToUnix(a.ActivityDate),
		ActivityType: a.ActivityType,
		Description:  a.Description,
		Link:         a.Link,
	}
}

func (ma mongoActivity) toDomain() *domain.LinkedInActivity {
	return &domain.LinkedInActivity{
		ID:           ma.ID.Hex(),
		UserID:       ma.UserID,
		ActivityDate: unixToDate(ma.ActivityDate),
		ActivityType: ma.ActivityType,
		Description:  ma.Description,
		Link:         ma.Link,
	}
}

func (r *MongoActivityRepository) Create(ctx context.Context, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	res, err := r.coll.InsertOne(ctx, activityToDoc(activity))
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	created := *activity
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoActivityRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.LinkedInActivity, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	var docs []mongoActivity
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	activities := make([]*domain.LinkedInActivity, 0, len(docs))
	for _, ma := range docs {
		activities = append(activities, ma.toDomain())
	}
	return activities, nil
}

func (r *MongoActivityRepository) Update(ctx context.Context, id, userID string, activity *domain.LinkedInActivity) (*domain.LinkedInActivity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	doc := activityToDoc(activity)
	doc.UserID = userID

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated mongoActivity
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": doc},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoActivityRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
