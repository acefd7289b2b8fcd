// file: internals/features/holidays/holidays/repository/holiday_mongo_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	m "holiday_backend/internals/features/holidays/holidays/model"
)

const MongoHolidayCollection = "holidays"

// holidayDocument is the stored shape; _id is the UUID string so ids look the
// same whichever store is active.
type holidayDocument struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Slug        string     `bson:"slug"`
	Description string     `bson:"description"`
	StartDate   time.Time  `bson:"startDate"`
	EndDate     *time.Time `bson:"endDate"`
	IsRecurring bool       `bson:"isRecurring"`
	Type        string     `bson:"type"`
	IsActive    bool       `bson:"isActive"`
	CreatedAt   time.Time  `bson:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt"`
}

func toDocument(h m.HolidayModel) holidayDocument {
	return holidayDocument{
		ID:          h.HolidayID.String(),
		Name:        h.HolidayName,
		Slug:        h.HolidaySlug,
		Description: h.HolidayDescription,
		StartDate:   h.HolidayStartDate,
		EndDate:     h.HolidayEndDate,
		IsRecurring: h.HolidayIsRecurring,
		Type:        h.HolidayType,
		IsActive:    h.HolidayIsActive,
		CreatedAt:   h.HolidayCreatedAt,
		UpdatedAt:   h.HolidayUpdatedAt,
	}
}

func (d holidayDocument) toModel() (m.HolidayModel, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return m.HolidayModel{}, err
	}
	h := m.HolidayModel{
		HolidayID:          id,
		HolidayName:        d.Name,
		HolidaySlug:        d.Slug,
		HolidayDescription: d.Description,
		HolidayStartDate:   d.StartDate.UTC(),
		HolidayIsRecurring: d.IsRecurring,
		HolidayType:        d.Type,
		HolidayIsActive:    d.IsActive,
		HolidayCreatedAt:   d.CreatedAt.UTC(),
		HolidayUpdatedAt:   d.UpdatedAt.UTC(),
	}
	if d.EndDate != nil {
		end := d.EndDate.UTC()
		h.HolidayEndDate = &end
	}
	if h.HolidayType == "" {
		h.HolidayType = m.HolidayTypeDynamic
	}
	return h, nil
}

// MongoHolidayRepository stores holidays as documents, the closest match to a
// managed document store.
type MongoHolidayRepository struct {
	Client *mongo.Client
	Coll   *mongo.Collection
}

// NewMongoHolidayRepository connects to uri and pings it before returning.
func NewMongoHolidayRepository(ctx context.Context, uri, database string) (*MongoHolidayRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &MongoHolidayRepository{
		Client: client,
		Coll:   client.Database(database).Collection(MongoHolidayCollection),
	}, nil
}

// EnsureIndexes mirrors the GORM indexes (start date, slug) and adds the
// compound index used by the static importer lookup.
func (r *MongoHolidayRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "startDate", Value: 1}}},
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "isRecurring", Value: 1}, {Key: "type", Value: 1}}},
	})
	return err
}

func (r *MongoHolidayRepository) Close(ctx context.Context) error {
	return r.Client.Disconnect(ctx)
}

func (r *MongoHolidayRepository) GetByID(ctx context.Context, id uuid.UUID) (m.HolidayModel, error) {
	var doc holidayDocument
	if err := r.Coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return m.HolidayModel{}, ErrHolidayNotFound
		}
		return m.HolidayModel{}, err
	}
	return doc.toModel()
}

func (r *MongoHolidayRepository) ListAll(ctx context.Context) ([]m.HolidayModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoHolidayRepository) Insert(ctx context.Context, h *m.HolidayModel) error {
	h.Normalize()
	if h.HolidayID == uuid.Nil {
		h.HolidayID = uuid.New()
	}
	now := time.Now().UTC()
	h.HolidayCreatedAt = now
	h.HolidayUpdatedAt = now

	_, err := r.Coll.InsertOne(ctx, toDocument(*h))
	return err
}

func (r *MongoHolidayRepository) Update(ctx context.Context, h *m.HolidayModel) error {
	h.Normalize()
	now := time.Now().UTC()

	res, err := r.Coll.UpdateOne(ctx,
		bson.M{"_id": h.HolidayID.String()},
		bson.M{"$set": bson.M{
			"name":        h.HolidayName,
			"slug":        h.HolidaySlug,
			"description": h.HolidayDescription,
			"startDate":   h.HolidayStartDate,
			"endDate":     h.HolidayEndDate,
			"isRecurring": h.HolidayIsRecurring,
			"type":        h.HolidayType,
			"isActive":    h.HolidayIsActive,
			"updatedAt":   now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrHolidayNotFound
	}
	h.HolidayUpdatedAt = now
	return nil
}

func (r *MongoHolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

func (r *MongoHolidayRepository) FindWhere(ctx context.Context, f HolidayFilter) ([]m.HolidayModel, error) {
	filter := bson.M{}
	if f.Name != nil {
		filter["name"] = *f.Name
	}
	if f.IsRecurring != nil {
		filter["isRecurring"] = *f.IsRecurring
	}
	if f.Type != nil {
		filter["type"] = *f.Type
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (r *MongoHolidayRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx, nil)
}

func (r *MongoHolidayRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]m.HolidayModel, error) {
	cur, err := r.Coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []holidayDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]m.HolidayModel, 0, len(docs))
	for _, d := range docs {
		h, err := d.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
