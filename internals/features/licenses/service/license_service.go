package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/licenses/model"
)

// planDuration devuelve la vigencia del plan desde la fecha de pago.
func planDuration(plan string) time.Duration {
	if plan == model.LicensePlanAnual {
		return 365 * 24 * time.Hour
	}
	return 30 * 24 * time.Hour
}

// ApplyPaymentNotification actualiza la licencia según la notificación de
// Midtrans. Estados settlement/capture activan; expire/cancel/deny/failure
// dejan la licencia expirada; cualquier otro estado la deja pendiente.
func ApplyPaymentNotification(db *gorm.DB, orderID, transactionStatus string) error {
	var license model.TeacherLicenseModel
	if err := db.Where("teacher_license_order_id = ?", orderID).First(&license).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("licencia con orden %s no encontrada", orderID)
		}
		return fmt.Errorf("consultar licencia: %w", err)
	}

	now := time.Now()
	switch transactionStatus {
	case "settlement", "capture", "success":
		validUntil := now.Add(planDuration(license.TeacherLicensePlan))
		license.TeacherLicenseStatus = model.LicenseStatusActive
		license.TeacherLicensePaidAt = &now
		license.TeacherLicenseValidUntil = &validUntil
	case "expire", "cancel", "deny", "failure":
		license.TeacherLicenseStatus = model.LicenseStatusExpired
	default:
		license.TeacherLicenseStatus = model.LicenseStatusPending
	}

	if err := db.Save(&license).Error; err != nil {
		return fmt.Errorf("actualizar licencia: %w", err)
	}
	return nil
}

// HasActiveLicense indica si el docente tiene una licencia vigente.
func HasActiveLicense(db *gorm.DB, teacherID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&model.TeacherLicenseModel{}).
		Where("teacher_license_teacher_id = ?", teacherID).
		Where("teacher_license_status = ?", model.LicenseStatusActive).
		Where("teacher_license_valid_until IS NULL OR teacher_license_valid_until > ?", time.Now()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("consultar licencia activa: %w", err)
	}
	return count > 0, nil
}

// ExpireOverdueLicenses marca como expiradas las licencias activas vencidas.
// Devuelve cuántas filas cambió.
func ExpireOverdueLicenses(db *gorm.DB) (int64, error) {
	res := db.Model(&model.TeacherLicenseModel{}).
		Where("teacher_license_status = ?", model.LicenseStatusActive).
		Where("teacher_license_valid_until IS NOT NULL AND teacher_license_valid_until <= ?", time.Now()).
		Update("teacher_license_status", model.LicenseStatusExpired)
	if res.Error != nil {
		return 0, fmt.Errorf("expirar licencias vencidas: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// StartExpirySweep corre el barrido de vencimientos cada 12 horas.
func StartExpirySweep(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(12 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			n, err := ExpireOverdueLicenses(db)
			if err != nil {
				log.Println("[ERROR] Barrido de licencias falló:", err)
				continue
			}
			if n > 0 {
				log.Printf("✅ Licencias expiradas en el barrido: %d", n)
			}
		}
	}()
}
