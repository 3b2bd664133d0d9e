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

const offerCollection = "job_offers"

type MongoJobOfferRepository struct {
	coll *mongo.Collection
}

func NewJobOfferRepository(db *mongo.Database) *MongoJobOfferRepository {
	return &MongoJobOfferRepository{coll: db.Collection(offerCollection)}
}

type mongoJobOffer struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	UserID           string             `bson:"user_id"`
	Platform         string             `bson:"platform"`
	Type             string             `bson:"type,omitempty"`
	RegistrationDone bool               `bson:"registration_done"`
	RegistrationDate int64              `bson:"registration_date,omitempty"`
	ProfileLink      string             `bson:"profile_link,omitempty"`
	OfferTitle       string             `bson:"offer_title"`
	OfferLink        string             `bson:"offer_link,omitempty"`
	SaveDate         int64              `bson:"save_date,omitempty"`
	ApplicationSent  bool               `bson:"application_sent"`
	ApplicationDate  int64              `bson:"application_date,omitempty"`
	Status           string             `bson:"status"`
}

func offerToDoc(o *domain.JobOffer) mongoJobOffer {
	return mongoJobOffer{
		UserID:           o.UserID,
		Platform:         o.Platform,
		Type:             o.Type,
		RegistrationDone: o.RegistrationDone,
		RegistrationDate: dateToUnix(o.RegistrationDate),
		ProfileLink:      o.ProfileLink,
		OfferTitle:       o.OfferTitle,
		OfferLink:        o.OfferLink,
		SaveDate:         dateToUnix(o.SaveDate),
		ApplicationSent:  o.ApplicationSent,
		ApplicationDate:  dateToUnix(o.ApplicationDate),
		Status:           o.Status,
	}
}

func (mo mongoJobOffer) toDomain() *domain.JobOffer {
	return &domain.JobOffer{
		ID:               mo.ID.Hex(),
		UserID:           mo.UserID,
		Platform:         mo.Platform,
		Type:             mo.Type,
		RegistrationDone: mo.RegistrationDone,
		RegistrationDate: unixToDate(mo.RegistrationDate),
		ProfileLink:      mo.ProfileLink,
		OfferTitle:       mo.OfferTitle,
		OfferLink:        mo.OfferLink,
		SaveDate:         unixToDate(mo.SaveDate),
		ApplicationSent:  mo.ApplicationSent,
		ApplicationDate:  unixToDate(mo.ApplicationDate),
		Status:           mo.Status,
	}
}

func (r *MongoJobOfferRepository) Create(ctx context.Context, offer *domain.JobOffer) (*domain.JobOffer, error) {
	res, err := r.coll.InsertOne(ctx, offerToDoc(offer))
	if err != nil {
		return nil, fmt.Errorf("insert offer: %w", err)
	}
	created := *offer
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoJobOfferRepository) ListAll(ctx context.Context, skip, limit int64) ([]*domain.JobOffer, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return decodeOffers(ctx, cur)
}

func (r *MongoJobOfferRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.JobOffer, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return decodeOffers(ctx, cur)
}

func decodeOffers(ctx context.Context, cur *mongo.Cursor) ([]*domain.JobOffer, error) {
	var docs []mongoJobOffer
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	offers := make([]*domain.JobOffer, 0, len(docs))
	for _, mo := range docs {
		offers = append(offers, mo.toDomain())
	}
	return offers, nil
}

func (r *MongoJobOfferRepository) ExistsByOfferLink(ctx context.Context, offerLink string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"offer_link": offerLink}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count offers by link: %w", err)
	}
	return n > 0, nil
}

func (r *MongoJobOfferRepository) Update(ctx context.Context, id, userID string, offer *domain.JobOffer) (*domain.JobOffer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	doc := offerToDoc(offer)
	doc.UserID = userID

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated mongoJobOffer
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": doc},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update offer: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *MongoJobOfferRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoJobOfferRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoJobOfferRepository) CountByOwner(ctx context.Context, userID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
}
