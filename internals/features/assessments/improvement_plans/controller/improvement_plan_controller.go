package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/constants"
	"edusaber_backend/internals/features/assessments/improvement_plans/dto"
	"edusaber_backend/internals/features/assessments/improvement_plans/model"
	"edusaber_backend/internals/features/assessments/improvement_plans/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type ImprovementPlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewImprovementPlanController(db *gorm.DB) *ImprovementPlanController {
	return &ImprovementPlanController{DB: db, Validator: validator.New()}
}

// POST /t/improvement-plans/process/:questionnaireId
func (ctrl *ImprovementPlanController) ProcessQuestionnaire(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}

	result, err := service.ProcessQuestionnaireResults(ctrl.DB, questionnaireID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Planes de mejoramiento procesados", result)
}

// POST /t/improvement-plans/process/:questionnaireId/student/:studentId
func (ctrl *ImprovementPlanController) ProcessStudent(c *fiber.Ctx) error {
	questionnaireID, err := uuid.Parse(c.Params("questionnaireId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de cuestionario inválido")
	}
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	plan, err := service.ProcessStudentImprovementPlan(ctrl.DB, studentID, questionnaireID)
	if err != nil {
		if errors.Is(err, service.ErrPlanAlreadyExists) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if plan == nil {
		return helper.Success(c, "El estudiante no tiene indicadores reprobados; no se creó plan", nil)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Plan de mejoramiento creado", plan)
}

// GET /t/improvement-plans?student_id=&status=
func (ctrl *ImprovementPlanController) GetPlans(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ImprovementPlanModel{}).
		Preload("Resources").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("recovery_activity_order")
		})

	if teacherID, err := helperAuth.GetTeacherIDFromToken(c); err == nil {
		q = q.Where("improvement_plan_teacher_id = ?", teacherID)
	}
	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "student_id inválido")
		}
		q = q.Where("improvement_plan_student_id = ?", id)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("improvement_plan_activity_status = ?", status)
	}

	var plans []model.ImprovementPlanModel
	if err := q.Order("improvement_plan_created_at DESC").Find(&plans).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los planes")
	}
	return helper.Success(c, "Planes obtenidos", plans)
}

// GET /u/improvement-plans/mine — los planes del estudiante autenticado.
func (ctrl *ImprovementPlanController) GetMyPlans(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var plans []model.ImprovementPlanModel
	err = ctrl.DB.Preload("Resources").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("recovery_activity_order")
		}).
		Where("improvement_plan_student_id = ?", studentID).
		Order("improvement_plan_created_at DESC").
		Find(&plans).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar tus planes")
	}
	return helper.Success(c, "Tus planes de mejoramiento", plans)
}

// GET /u/improvement-plans/:id
func (ctrl *ImprovementPlanController) GetPlanByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	var plan model.ImprovementPlanModel
	err = ctrl.DB.Preload("Resources").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("recovery_activity_order")
		}).
		Where("improvement_plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el plan")
	}

	if !canAccessStudentPlan(c, plan.ImprovementPlanStudentID) {
		return helper.Error(c, fiber.StatusForbidden, "No tienes acceso a este plan")
	}
	return helper.Success(c, "Plan obtenido", plan)
}

// canAccessStudentPlan: un estudiante solo toca sus propios planes; docentes
// y superiores pueden verlos todos.
func canAccessStudentPlan(c *fiber.Ctx, planStudentID uuid.UUID) bool {
	if helperAuth.HasRole(c, constants.DocenteAndAbove...) {
		return true
	}
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	return err == nil && studentID == planStudentID
}

// PATCH /t/improvement-plans/:id
func (ctrl *ImprovementPlanController) UpdatePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	var req dto.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	updates := map[string]interface{}{}
	if req.ActivityStatus.ShouldUpdate() && !req.ActivityStatus.IsNull() {
		status := req.ActivityStatus.Val()
		if status != model.ActivityStatusPendiente &&
			status != model.ActivityStatusEnProgreso &&
			status != model.ActivityStatusCompletada {
			return helper.Error(c, fiber.StatusBadRequest, "Estado de plan inválido")
		}
		updates["improvement_plan_activity_status"] = status
	}
	if req.TeacherNotes.ShouldUpdate() {
		if req.TeacherNotes.IsNull() {
			updates["improvement_plan_teacher_notes"] = nil
		} else {
			updates["improvement_plan_teacher_notes"] = req.TeacherNotes.Val()
		}
	}
	if req.Deadline.ShouldUpdate() && !req.Deadline.IsNull() {
		deadline, perr := time.Parse("2006-01-02", req.Deadline.Val())
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Fecha límite inválida (YYYY-MM-DD)")
		}
		updates["improvement_plan_deadline"] = deadline
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.ImprovementPlanModel{}).
		Where("improvement_plan_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el plan")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Plan no encontrado")
	}
	return helper.Success(c, "Plan actualizado", nil)
}

// PATCH /u/improvement-plans/activities/:activityId/status
//
// El estudiante marca el avance de sus actividades de recuperación.
func (ctrl *ImprovementPlanController) UpdateActivityStatus(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(c.Params("activityId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de actividad inválido")
	}

	var req dto.UpdateActivityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	q := ctrl.DB.Model(&model.RecoveryActivityModel{}).
		Where("recovery_activity_id = ?", activityID)

	// Un estudiante solo marca actividades de sus propios planes; docentes y
	// superiores pueden corregir cualquiera.
	if !helperAuth.HasRole(c, constants.DocenteAndAbove...) {
		studentID, serr := helperAuth.GetStudentIDFromToken(c)
		if serr != nil {
			return serr
		}
		q = q.Where(`recovery_activity_plan_id IN (
			SELECT improvement_plan_id FROM improvement_plans
			WHERE improvement_plan_student_id = ? AND improvement_plan_deleted_at IS NULL)`, studentID)
	}

	res := q.Update("recovery_activity_status", req.Status)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la actividad")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Actividad no encontrada")
	}
	return helper.Success(c, "Actividad actualizada", nil)
}

// DELETE /t/improvement-plans/:id
func (ctrl *ImprovementPlanController) DeletePlan(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recovery_resource_plan_id = ?", id).
			Delete(&model.RecoveryResourceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recovery_activity_plan_id = ?", id).
			Delete(&model.RecoveryActivityModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("improvement_plan_id = ?", id).Delete(&model.ImprovementPlanModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el plan")
	}
	return helper.Success(c, "Plan eliminado", nil)
}
