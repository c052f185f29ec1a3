package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminAction string

const (
	ActionCreate     AdminAction = "create"
	ActionUpdate     AdminAction = "update"
	ActionDelete     AdminAction = "delete"
	ActionActivate   AdminAction = "activate"
	ActionDeactivate AdminAction = "deactivate"
)

type AuditedModel string

const (
	AuditedProduct  AuditedModel = "product"
	AuditedCategory AuditedModel = "category"
	AuditedTag      AuditedModel = "tag"
	AuditedOrder    AuditedModel = "order"
)

var ErrAuditLogImmutable = errors.New("admin action log entries cannot be modified")

// AdminActionLog is the append-only audit trail of admin mutations. The
// acting user reference is nulled when the user is deleted; the entry itself
// survives.
type AdminActionLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     *string        `gorm:"index:idx_admin_log_user_time" json:"user_id"`
	User       *User          `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	Action     AdminAction    `gorm:"type:varchar(20);index" json:"action"`
	ModelName  AuditedModel   `gorm:"type:varchar(50);index:idx_admin_log_object" json:"model_name"`
	ObjectID   uint           `gorm:"index:idx_admin_log_object" json:"object_id"`
	ObjectRepr string         `gorm:"size:200" json:"object_repr"`
	Changes    datatypes.JSON `json:"changes"`
	IPAddress  string         `gorm:"size:45" json:"ip_address"`
	UserAgent  string         `gorm:"type:text" json:"user_agent"`
	Timestamp  time.Time      `gorm:"autoCreateTime;index:idx_admin_log_user_time" json:"timestamp"`
}

// BeforeUpdate makes entries write-once.
func (l *AdminActionLog) BeforeUpdate(tx *gorm.DB) error {
	return ErrAuditLogImmutable
}

// LogAdminAction appends one audit entry. A logging failure is reported to
// the caller but must not roll back the mutation it describes.
func LogAdminAction(db *gorm.DB, entry *AdminActionLog) error {
	return db.Create(entry).Error
}

// GetRecentAdminActions returns audit entries newest first, optionally
// filtered by action and audited model.
func GetRecentAdminActions(db *gorm.DB, action, modelName string, limit int) ([]AdminActionLog, error) {
	query := db.Model(&AdminActionLog{}).Order("timestamp DESC")
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if modelName != "" {
		query = query.Where("model_name = ?", modelName)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []AdminActionLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
