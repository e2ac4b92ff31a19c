package recipientmodel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const extrasCollection = "recipient-extras"

type extrasDocument struct {
	ID     string            `bson:"_id"`
	Fields map[string]string `bson:"fields"`
}

// saveCustomFields upserts the custom fields document for a recipient.
func (r *RecipientRepository) saveCustomFields(recipientId string, fields map[string]string) error {
	collection := r.mongo.Collection(extrasCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.UpdateOne(
		ctx,
		bson.M{"_id": recipientId},
		bson.M{"$set": bson.M{"fields": fields}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		slog.Error("Recipient saveCustomFields failed", "error", err, "recipient_id", recipientId)
		return err
	}

	return nil
}

// getCustomFields returns nil without error when no document exists; most
// recipients carry no custom fields.
func (r *RecipientRepository) getCustomFields(recipientId string) (map[string]string, error) {
	collection := r.mongo.Collection(extrasCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc extrasDocument
	err := collection.FindOne(ctx, bson.M{"_id": recipientId}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		slog.Error("Recipient getCustomFields failed", "error", err, "recipient_id", recipientId)
		return nil, err
	}

	return doc.Fields, nil
}

// getCustomFieldsBulk fetches the documents for many recipients in one query.
func (r *RecipientRepository) getCustomFieldsBulk(recipientIds []string) (map[string]map[string]string, error) {
	extras := make(map[string]map[string]string)
	if len(recipientIds) == 0 {
		return extras, nil
	}

	collection := r.mongo.Collection(extrasCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": recipientIds}})
	if err != nil {
		slog.Error("Recipient getCustomFieldsBulk failed", "error", err, "count", len(recipientIds))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []extrasDocument
	if err = cursor.All(ctx, &docs); err != nil {
		slog.Error("Recipient getCustomFieldsBulk cursor failed", "error", err)
		return nil, err
	}

	for _, doc := range docs {
		extras[doc.ID] = doc.Fields
	}

	return extras, nil
}

func (r *RecipientRepository) deleteCustomFields(recipientId string) error {
	collection := r.mongo.Collection(extrasCollection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": recipientId})
	if err != nil {
		slog.Error("Recipient deleteCustomFields failed", "error", err, "recipient_id", recipientId)
		return err
	}

	return nil
}
