package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImprovementPlanModel es un plan de mejoramiento generado cuando un
// estudiante reprueba indicadores. Única por (student, questionnaire): el
// guard de duplicados es una restricción real, no un LIKE sobre el título.
type ImprovementPlanModel struct {
	ImprovementPlanID uuid.UUID `gorm:"column:improvement_plan_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"improvement_plan_id"`

	ImprovementPlanStudentID       uuid.UUID  `gorm:"column:improvement_plan_student_id;type:uuid;not null;uniqueIndex:uq_improvement_plan_origin" json:"improvement_plan_student_id"`
	ImprovementPlanQuestionnaireID *uuid.UUID `gorm:"column:improvement_plan_questionnaire_id;type:uuid;uniqueIndex:uq_improvement_plan_origin" json:"improvement_plan_questionnaire_id,omitempty"`
	ImprovementPlanTeacherID       uuid.UUID  `gorm:"column:improvement_plan_teacher_id;type:uuid;not null;index" json:"improvement_plan_teacher_id"`

	ImprovementPlanTitle       string     `gorm:"column:improvement_plan_title;type:varchar(200);not null" json:"improvement_plan_title"`
	ImprovementPlanSubject     string     `gorm:"column:improvement_plan_subject;type:varchar(100);not null" json:"improvement_plan_subject"`
	ImprovementPlanDescription string     `gorm:"column:improvement_plan_description;not null"             json:"improvement_plan_description"`
	ImprovementPlanActivities  string     `gorm:"column:improvement_plan_activities;not null"              json:"improvement_plan_activities"`
	ImprovementPlanDeadline    *time.Time `gorm:"column:improvement_plan_deadline"                         json:"improvement_plan_deadline,omitempty"`

	// Indicadores reprobados que originaron el plan: ["desc1", "desc2", ...]
	ImprovementPlanFailedAchievements datatypes.JSON `gorm:"column:improvement_plan_failed_achievements;type:jsonb" json:"improvement_plan_failed_achievements,omitempty"`

	ImprovementPlanActivityStatus string  `gorm:"column:improvement_plan_activity_status;type:varchar(20);not null;default:'pendiente'" json:"improvement_plan_activity_status"`
	ImprovementPlanTeacherNotes   *string `gorm:"column:improvement_plan_teacher_notes" json:"improvement_plan_teacher_notes,omitempty"`
	ImprovementPlanAcademicYear   string  `gorm:"column:improvement_plan_academic_year;type:varchar(9);not null" json:"improvement_plan_academic_year"`

	ImprovementPlanCreatedAt time.Time      `gorm:"column:improvement_plan_created_at;not null;autoCreateTime" json:"improvement_plan_created_at"`
	ImprovementPlanUpdatedAt time.Time      `gorm:"column:improvement_plan_updated_at;not null;autoUpdateTime" json:"improvement_plan_updated_at"`
	ImprovementPlanDeletedAt gorm.DeletedAt `gorm:"column:improvement_plan_deleted_at;index"                   json:"improvement_plan_deleted_at,omitempty"`

	Resources  []RecoveryResourceModel `gorm:"foreignKey:RecoveryResourcePlanID;references:ImprovementPlanID" json:"resources,omitempty"`
	Activities []RecoveryActivityModel `gorm:"foreignKey:RecoveryActivityPlanID;references:ImprovementPlanID" json:"activities,omitempty"`
}

func (ImprovementPlanModel) TableName() string { return "improvement_plans" }
