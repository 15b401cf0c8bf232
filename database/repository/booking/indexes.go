package bookingRepo

import (
	"fmt"
	"time"

	"huzla/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries. The
// partial unique index over the active (serviceId, date, slot) tuple closes
// the check-then-insert race on booking creation: cancelled bookings are
// excluded so a freed slot can be rebooked.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	activeStatuses := bson.A{models.BookingPending, models.BookingConfirmed, models.BookingCompleted}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "serviceId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "slot.start", Value: 1},
				{Key: "slot.end", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": activeStatuses}}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
