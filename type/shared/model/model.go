package model

import "time"

type User struct {
	ID        string    `gorm:"column:id;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Firstname string    `gorm:"column:firstname;not null" json:"firstname"`
	Lastname  string    `gorm:"column:lastname;not null" json:"lastname"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "user" }

// Template is a reusable certificate background plus a JSON array of
// positioned fields (see internal/renderer.Field).
type Template struct {
	ID         string    `gorm:"column:id;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"column:user_id;index;not null" json:"user_id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	ImageURL   string    `gorm:"column:image_url" json:"image_url"`
	Fields     string    `gorm:"column:fields;type:text" json:"fields"`
	Width      int       `gorm:"column:width" json:"width"`
	Height     int       `gorm:"column:height" json:"height"`
	ArchiveURL string    `gorm:"column:archive_url" json:"archive_url"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Template) TableName() string { return "template" }

// Recipient carries the relational part of a recipient record. Free-form
// custom fields live in MongoDB, keyed by this ID.
type Recipient struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;index;not null" json:"user_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email" json:"email"`
	Course    string    `gorm:"column:course" json:"course"`
	IssueDate string    `gorm:"column:issue_date" json:"issue_date"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Recipient) TableName() string { return "recipient" }

const (
	CertificateStatusDraft     = "draft"
	CertificateStatusPublished = "published"
)

// Certificate links a recipient to a template. The ID doubles as the public
// verification token, so it is generated as a random short token rather than
// a database sequence.
type Certificate struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	RecipientID string    `gorm:"column:recipient_id;index;not null" json:"recipient_id"`
	TemplateID  string    `gorm:"column:template_id;index;not null" json:"template_id"`
	Status      string    `gorm:"column:status;default:draft" json:"status"`
	IssueDate   string    `gorm:"column:issue_date" json:"issue_date"`
	FileURL     string    `gorm:"column:file_url" json:"file_url"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Certificate) TableName() string { return "certificate" }
