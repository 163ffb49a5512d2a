package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"supervisi_backend/internals/features/audit/model"
)

// Record menulis jejak audit secara best-effort. Gagal menulis audit
// tidak boleh menggagalkan operasi utamanya.
func Record(db *gorm.DB, actorUserID uuid.UUID, action string, payload []byte) {
	entry := model.AuditLogModel{
		ActorUserID: actorUserID,
		Action:      action,
		Payload:     datatypes.JSON(payload),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] audit log gagal ditulis (action=%s): %v", action, err)
	}
}
