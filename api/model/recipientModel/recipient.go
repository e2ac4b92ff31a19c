package recipientmodel

import (
	"errors"
	"log/slog"

	"github.com/certward/certward-api/type/payload"
	"github.com/certward/certward-api/type/shared/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// RecipientRepository splits a recipient across two stores: the relational
// columns live in PostgreSQL, the free-form custom fields in a MongoDB
// document keyed by the same ID.
type RecipientRepository struct {
	db    *gorm.DB
	mongo *mongo.Database
}

// RecipientCreateResult reports a bulk insert. Rows that landed in PostgreSQL
// but whose custom fields failed to persist are listed separately; the
// relational record is the source of truth and is kept.
type RecipientCreateResult struct {
	Created         []*model.Recipient
	FailedExtrasIDs []string
}

// CombinedRecipient is a recipient with its custom fields folded back in.
type CombinedRecipient struct {
	model.Recipient
	CustomFields map[string]string `json:"custom_fields"`
}

func NewRecipientRepository(db *gorm.DB, mongoDb *mongo.Database) *RecipientRepository {
	return &RecipientRepository{db: db, mongo: mongoDb}
}

// Add inserts recipient rows with generated UUIDs shared between both stores.
func (r *RecipientRepository) Add(userId string, rows []payload.RecipientRow) (*RecipientCreateResult, error) {
	result := &RecipientCreateResult{}

	for _, row := range rows {
		recipient := &model.Recipient{
			ID:        uuid.New().String(),
			UserID:    userId,
			Name:      row.Name,
			Email:     row.Email,
			Course:    row.Course,
			IssueDate: row.IssueDate,
		}

		createErr := r.db.Create(recipient).Error
		if createErr != nil {
			slog.Error("Recipient Add PostgreSQL creation failed",
				"error", createErr,
				"user_id", userId,
				"name", row.Name)
			return nil, createErr
		}

		if len(row.CustomFields) > 0 {
			if extrasErr := r.saveCustomFields(recipient.ID, row.CustomFields); extrasErr != nil {
				slog.Warn("Recipient Add custom fields persistence failed",
					"error", extrasErr,
					"recipient_id", recipient.ID)
				result.FailedExtrasIDs = append(result.FailedExtrasIDs, recipient.ID)
			}
		}

		result.Created = append(result.Created, recipient)
	}

	slog.Info("Recipient Add completed",
		"user_id", userId,
		"created", len(result.Created),
		"extras_failed", len(result.FailedExtrasIDs))

	return result, nil
}

func (r *RecipientRepository) GetByUser(userId string) ([]*CombinedRecipient, error) {
	var recipients []*model.Recipient
	queryErr := r.db.Where("user_id = ?", userId).Order("created_at DESC").Find(&recipients).Error
	if queryErr != nil {
		slog.Error("Recipient GetByUser", "error", queryErr, "user_id", userId)
		return nil, queryErr
	}

	ids := make([]string, len(recipients))
	for i, recipient := range recipients {
		ids[i] = recipient.ID
	}

	extras, extrasErr := r.getCustomFieldsBulk(ids)
	if extrasErr != nil {
		slog.Warn("Recipient GetByUser custom fields lookup failed", "error", extrasErr, "user_id", userId)
		extras = map[string]map[string]string{}
	}

	combined := make([]*CombinedRecipient, len(recipients))
	for i, recipient := range recipients {
		combined[i] = &CombinedRecipient{
			Recipient:    *recipient,
			CustomFields: extras[recipient.ID],
		}
	}

	return combined, nil
}

// GetById returns nil, nil when the recipient does not exist.
func (r *RecipientRepository) GetById(id string) (*CombinedRecipient, error) {
	recipient := new(model.Recipient)
	queryErr := r.db.Where("id = ?", id).First(recipient).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Recipient GetById", "error", queryErr, "recipient_id", id)
		return nil, queryErr
	}

	fields, extrasErr := r.getCustomFields(id)
	if extrasErr != nil {
		slog.Warn("Recipient GetById custom fields lookup failed", "error", extrasErr, "recipient_id", id)
		fields = nil
	}

	return &CombinedRecipient{Recipient: *recipient, CustomFields: fields}, nil
}

func (r *RecipientRepository) GetByEmail(email string) ([]*model.Recipient, error) {
	var recipients []*model.Recipient
	queryErr := r.db.Where("email = ?", email).Find(&recipients).Error
	if queryErr != nil {
		slog.Error("Recipient GetByEmail", "error", queryErr, "email", email)
		return nil, queryErr
	}

	return recipients, nil
}

// Delete removes the recipient row and its custom fields document. Certificate
// cleanup is the caller's responsibility.
func (r *RecipientRepository) Delete(id string) (*model.Recipient, error) {
	recipient := new(model.Recipient)
	queryErr := r.db.Where("id = ?", id).First(recipient).Error
	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, errors.New("recipient not found")
		}
		slog.Error("Recipient Delete find", "error", queryErr, "recipient_id", id)
		return nil, queryErr
	}

	deleteErr := r.db.Delete(recipient).Error
	if deleteErr != nil {
		slog.Error("Recipient Delete", "error", deleteErr, "recipient_id", id)
		return nil, deleteErr
	}

	if extrasErr := r.deleteCustomFields(id); extrasErr != nil {
		slog.Warn("Recipient Delete custom fields cleanup failed", "error", extrasErr, "recipient_id", id)
	}

	return recipient, nil
}
