package recordsRepo

import (
	"context"

	"schedmate/database"
	"schedmate/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	ListRecent(ctx context.Context, limit int64) ([]models.BookingRecord, error)
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a new BookingRecordRepository instance using MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("schedmate")
	return &mongoRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
