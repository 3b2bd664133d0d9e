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

const recruiterCollection = "recruiters"

type MongoRecruiterRepository struct {
	coll *mongo.Collection
}

func NewRecruiterRepository(db *mongo.Database) *MongoRecruiterRepository {
	return &MongoRecruiterRepository{coll: db.Collection(recruiterCollection)}
}

type mongoRecruiter struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	UserID                string             `bson:"user_id"`
	Name                  string             `bson:"name"`
	Company               string             `bson:"company"`
	LinkedinProfile       string             `bson:"linkedin_profile,omitempty"`
	Sector                string             `bson:"sector,omitempty"`
	ConnectionRequestSent bool               `bson:"connection_request_sent"`
	RequestDate           int64              `bson:"request_date,omitempty"`
	ConnectionStatus      string             `bson:"connection_status"`
	DMSent                bool               `bson:"dm_sent"`
	DMDate                int64              `bson:"dm_date,omitempty"`
	MessageType           string             `bson:"message_type,omitempty"`
	ResponseReceived      bool               `bson:"response_received"`
	Notes                 string             `bson:"notes,omitempty"`
}

func recruiterToDoc(r *domain.Recruiter) mongoRecruiter {
	return mongoRecruiter{
		UserID:                r.UserID,
		Name:                  r.Name,
		Company:               r.Company,
		LinkedinProfile:       r.LinkedinProfile,
		Sector:                r.Sector,
		ConnectionRequestSent: r.ConnectionRequestSent,
		RequestDate:           dateToUnix(r.RequestDate),
		ConnectionStatus:      r.ConnectionStatus,
		DMSent:                r.DMSent,
		DMDate:                dateToUnix(r.DMDate),
		MessageType:           r.MessageType,
		ResponseReceived:      r.ResponseReceived,
		Notes:                 r.Notes,
	}
}

func (mr mongoRecruiter) toDomain() *domain.Recruiter {
	return &domain.Recruiter{
		ID:                    mr.ID.Hex(),
		UserID:                mr.UserID,
		Name:                  mr.Name,
		Company:               mr.Company,
		LinkedinProfile:       mr.LinkedinProfile,
		Sector:                mr.Sector,
		ConnectionRequestSent: mr.ConnectionRequestSent,
		RequestDate:           unixToDate(mr.RequestDate),
		ConnectionStatus:      mr.ConnectionStatus,
		DMSent:                mr.DMSent,
		DMDate:                unixToDate(mr.DMDate),
		MessageType:           mr.MessageType,
		ResponseReceived:      mr.ResponseReceived,
		Notes:                 mr.Notes,
	}
}

func (r *MongoRecruiterRepository) Create(ctx context.Context, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	res, err := r.coll.InsertOne(ctx, recruiterToDoc(recruiter))
	if err != nil {
		return nil, fmt.Errorf("insert recruiter: %w", err)
	}
	created := *recruiter
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoRecruiterRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Recruiter, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list recruiters: %w", err)
	}
	var docs []mongoRecruiter
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recruiters: %w", err)
	}
	recruiters := make([]*domain.Recruiter, 0, len(docs))
	for _, mr := range docs {
		recruiters = append(recruiters, mr.toDomain())
	}
	return recruiters, nil
}

func (r *MongoRecruiterRepository) Update(ctx context.Context, id, userID string, recruiter *domain.Recruiter) (*domain.Recruiter, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	doc := recruiterToDoc(recruiter)
	doc.UserID = userID

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated mongoRecruiter
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": doc},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update recruiter: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoRecruiterRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete recruiter: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
