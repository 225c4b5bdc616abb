package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"edusaber_backend/internals/configs"
	"edusaber_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler borra cada 24 horas los tokens de la lista
// negra que llevan vencidos más del TTL configurado (default: 7 días).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ttlDays := 7
		if val := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				ttlDays = parsed
			}
		}

		for {
			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			res := db.Unscoped().
				Where("token_blacklist_expired_at < ?", deleteBefore).
				Delete(&model.TokenBlacklist{})
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] No se pudieron borrar tokens vencidos: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d tokens vencidos eliminados de la lista negra", res.RowsAffected)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
