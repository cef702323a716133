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

const collectionPayslips = "payslips"

type PayslipRepository struct {
	col *mongo.Collection
}

func NewPayslipRepository(db *mongo.Database) *PayslipRepository {
	return &PayslipRepository{col: db.Collection(collectionPayslips)}
}

func (r *PayslipRepository) Insert(ctx context.Context, payslip *domain.Payslip) (*domain.Payslip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	payslip.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, payslip); err != nil {
		return nil, err
	}
	return payslip, nil
}

func (r *PayslipRepository) FindByID(ctx context.Context, id string) (*domain.Payslip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var payslip domain.Payslip
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&payslip); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPayslipNotFound
		}
		return nil, err
	}
	return &payslip, nil
}

// ListByEmployee returns the employee's payslips, optionally filtered
// to a single year (year == 0 means all years).
func (r *PayslipRepository) ListByEmployee(ctx context.Context, employee string, year int) ([]domain.Payslip, error) {
	filter := bson.M{"employee": employee}
	if year != 0 {
		filter["year"] = year
	}
	return r.list(ctx, filter)
}

func (r *PayslipRepository) ListAll(ctx context.Context) ([]domain.Payslip, error) {
	return r.list(ctx, bson.M{})
}

func (r *PayslipRepository) list(ctx context.Context, filter bson.M) ([]domain.Payslip, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payslips := []domain.Payslip{}
	if err := cursor.All(ctx, &payslips); err != nil {
		return nil, err
	}
	return payslips, nil
}

func (r *PayslipRepository) Update(ctx context.Context, payslip *domain.Payslip) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": payslip.ID}, payslip)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPayslipNotFound
	}
	return nil
}
