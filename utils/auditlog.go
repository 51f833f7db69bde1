package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pmhours/pmhours-go/models"
)

// BuildAuditLog assembles one audit entry from before/after snapshots.
// The caller persists it; for allocation edits that happens inside the
// same transaction as the write so the pair is atomic.
func BuildAuditLog(c *gin.Context, actorID uint, action, resourceType, resourceID, batchID string, before, after any, description string) *models.AuditLog {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("Audit marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("Audit marshal newData error: %v", err)
		}
	}

	var ip, ua string
	if c != nil {
		ip = c.ClientIP()
		ua = c.GetHeader("User-Agent")
	}

	return &models.AuditLog{
		UserID:       actorID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		BatchID:      batchID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}
}
