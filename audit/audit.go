package audit

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/urolovforever/eccomerce/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Record appends an admin action log entry built from the current request.
// Audit failures are logged, never propagated: the mutation the entry
// describes has already committed.
func Record(db *gorm.DB, c *gin.Context, action models.AdminAction, modelName models.AuditedModel, objectID uint, objectRepr string, changes map[string]interface{}) {
	var userID *string
	if v, ok := c.Get("admin_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			userID = &s
		}
	}

	var payload datatypes.JSON
	if len(changes) > 0 {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Printf("⚠️ Failed to encode audit changes: %v", err)
		} else {
			payload = data
		}
	}

	entry := models.AdminActionLog{
		UserID:     userID,
		Action:     action,
		ModelName:  modelName,
		ObjectID:   objectID,
		ObjectRepr: objectRepr,
		Changes:    payload,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if err := models.LogAdminAction(db, &entry); err != nil {
		log.Printf("⚠️ Failed to write admin action log: %v", err)
	}
}

// FieldChange is the before/after pair stored in the changes diff.
type FieldChange struct {
	From interface{} `json:"from"`
	To   interface{} `json:"to"`
}

// Diff records a single changed field into the changes map.
func Diff(changes map[string]interface{}, field string, from, to interface{}) {
	changes[field] = FieldChange{From: from, To: to}
}
