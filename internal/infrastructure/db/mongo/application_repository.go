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

const applicationCollection = "applications"

type MongoApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *MongoApplicationRepository {
	return &MongoApplicationRepository{coll: db.Collection(applicationCollection)}
}

type mongoApplication struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Company       string             `bson:"company"`
	Position      string             `bson:"position"`
	CompanyLink   string             `bson:"company_link,omitempty"`
	OfferLink     string             `bson:"offer_link,omitempty"`
	RecruiterName string             `bson:"recruiter_name,omitempty"`
	DMSentDate    int64              `bson:"dm_sent_date,omitempty"`
	FollowUp5     int64              `bson:"follow_up_5_date,omitempty"`
	FollowUp15    int64              `bson:"follow_up_15_date,omitempty"`
	FollowUp30    int64              `bson:"follow_up_30_date,omitempty"`
	FinalStatus   string             `bson:"final_status"`
	Notes         string             `bson:"notes,omitempty"`
}

func applicationToDoc(a *domain.Application) mongoApplication {
	return mongoApplication{
		UserID:        a.UserID,
		Company:       a.Company,
		Position:      a.Position,
		CompanyLink:   a.CompanyLink,
		OfferLink:     a.OfferLink,
		RecruiterName: a.RecruiterName,
		DMSentDate:    dateToUnix(a.DMSentDate),
		FollowUp5:     dateToUnix(a.FollowUp5),
		FollowUp15:    dateToUnix(a.FollowUp15),
		FollowUp30:    dateToUnix(a.FollowUp30),
		FinalStatus:   a.FinalStatus,
		Notes:         a.Notes,
	}
}

func (ma mongoApplication) toDomain() *domain.Application {
	return &domain.Application{
		ID:            ma.ID.Hex(),
		UserID:        ma.UserID,
		Company:       ma.Company,
		Position:      ma.Position,
		CompanyLink:   ma.CompanyLink,
		OfferLink:     ma.OfferLink,
		RecruiterName: ma.RecruiterName,
		DMSentDate:    unixToDate(ma.DMSentDate),
		FollowUp5:     unixToDate(ma.FollowUp5),
		FollowUp15:    unixToDate(ma.FollowUp15),
		FollowUp30:    unixToDate(ma.FollowUp30),
		FinalStatus:   ma.FinalStatus,
		Notes:         ma.Notes,
	}
}

func (r *MongoApplicationRepository) Create(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	res, err := r.coll.InsertOne(ctx, applicationToDoc(application))
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	created := *application
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoApplicationRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoApplicationRepository) ListAll(ctx context.Context) ([]*domain.Application, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoApplicationRepository) list(ctx context.Context, filter bson.M) ([]*domain.Application, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	var docs []mongoApplication
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	applications := make([]*domain.Application, 0, len(docs))
	for _, ma := range docs {
		applications = append(applications, ma.toDomain())
	}
	return applications, nil
}

func (r *MongoApplicationRepository) Update(ctx context.Context, id, userID string, application *domain.Application) (*domain.Application, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	doc := applicationToDoc(application)
	doc.UserID = userID

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated mongoApplication
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": doc},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoApplicationRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoApplicationRepository) CountByOwner(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}
