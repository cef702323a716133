package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emsuite/employee-system/internal/core/domain"
)

const collectionLeave = "leave_requests"

type LeaveRepository struct {
	col *mongo.Collection
}

func NewLeaveRepository(db *mongo.Database) *LeaveRepository {
	return &LeaveRepository{col: db.Collection(collectionLeave)}
}

func (r *LeaveRepository) Insert(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	request.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (r *LeaveRepository) FindByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var request domain.LeaveRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *LeaveRepository) ListByEmployee(ctx context.Context, employee string) ([]domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{"employee": employee})
}

func (r *LeaveRepository) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	return r.list(ctx, bson.M{})
}

func (r *LeaveRepository) list(ctx context.Context, filter bson.M) ([]domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Newest applications first, the order the review queue shows them.
	opts := options.Find().SetSort(bson.D{{Key: "applied_date", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	requests := []domain.LeaveRequest{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *LeaveRepository) Update(ctx context.Context, request *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": request.ID}, request)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeaveNotFound
	}
	return nil
}
