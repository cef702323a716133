package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emsuite/employee-system/internal/core/domain"
)

const collectionHolidays = "holidays"

type HolidayRepository struct {
	col *mongo.Collection
}

func NewHolidayRepository(db *mongo.Database) *HolidayRepository {
	return &HolidayRepository{col: db.Collection(collectionHolidays)}
}

func (r *HolidayRepository) Insert(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	holiday.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, holiday); err != nil {
		return nil, err
	}
	return holiday, nil
}

func (r *HolidayRepository) List(ctx context.Context) ([]domain.Holiday, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	holidays := []domain.Holiday{}
	if err := cursor.All(ctx, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrHolidayNotFound
	}
	return nil
}
