package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusaber_backend/internals/features/academics/students/dto"
	"edusaber_backend/internals/features/academics/students/model"
	"edusaber_backend/internals/features/academics/students/service"
	authService "edusaber_backend/internals/features/users/auth/service"
	userModel "edusaber_backend/internals/features/users/users/model"
	"edusaber_backend/internals/constants"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

const studentSelect = `
	s.student_id, s.student_user_id, s.student_grade, s.student_course_id,
	s.student_institution, s.student_contact_email, s.student_contact_phone,
	u.user_name, u.user_email, u.user_is_active`

// POST /t/students
//
// Crea usuario + perfil de estudiante en una transacción; si algo falla no
// queda usuario huérfano.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	passwordHash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	var student model.StudentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			UserName:        strings.TrimSpace(req.Name),
			UserEmail:       strings.ToLower(strings.TrimSpace(req.Email)),
			UserPassword:    passwordHash,
			UserRole:        constants.RoleEstudiante,
			UserInstitution: strings.TrimSpace(req.Institution),
			UserIsActive:    true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		student = model.StudentModel{
			StudentUserID:       user.UserID,
			StudentCourseID:     req.CourseID,
			StudentGrade:        strings.TrimSpace(req.Grade),
			StudentContactEmail: helper.TrimPtr(req.ContactEmail),
			StudentContactPhone: helper.TrimPtr(req.ContactPhone),
			StudentInstitution:  strings.TrimSpace(req.Institution),
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		// El docente que crea al estudiante se lo asigna de una vez.
		if teacherID, terr := helperAuth.GetTeacherIDFromToken(c); terr == nil {
			assignment := model.TeacherStudentModel{
				TeacherStudentTeacherID:    teacherID,
				TeacherStudentStudentID:    student.StudentID,
				TeacherStudentAcademicYear: service.CurrentAcademicYear(),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "El correo ya está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el estudiante")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiante creado", student)
}

// GET /t/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var row dto.StudentWithUser
	err = ctrl.DB.Table("students AS s").
		Select(studentSelect).
		Joins("JOIN users u ON u.user_id = s.student_user_id").
		Where("s.student_id = ? AND s.student_deleted_at IS NULL", id).
		Scan(&row).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el estudiante")
	}
	if row.StudentID == uuid.Nil {
		return helper.Error(c, fiber.StatusNotFound, "Estudiante no encontrado")
	}
	return helper.Success(c, "Estudiante obtenido", row)
}

// GET /t/students/teacher/:teacherId
func (ctrl *StudentController) GetStudentsByTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de docente inválido")
	}

	var rows []dto.StudentWithUser
	q := ctrl.DB.Table("students AS s").
		Select(studentSelect).
		Joins("JOIN users u ON u.user_id = s.student_user_id").
		Joins("JOIN teacher_students ts ON ts.teacher_student_student_id = s.student_id").
		Where("ts.teacher_student_teacher_id = ? AND s.student_deleted_at IS NULL", teacherID)
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("ts.teacher_student_academic_year = ?", year)
	}
	if err := q.Order("u.user_name").Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los estudiantes")
	}
	return helper.Success(c, "Estudiantes del docente obtenidos", rows)
}

// POST /t/students/assign
func (ctrl *StudentController) AssignStudent(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment := model.TeacherStudentModel{
		TeacherStudentTeacherID:    teacherID,
		TeacherStudentStudentID:    req.StudentID,
		TeacherStudentAcademicYear: req.AcademicYear,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo asignar el estudiante")
	}

	// La consistencia de institución es un best-effort, no una restricción.
	if err := service.SyncStudentInstitution(ctrl.DB, teacherID, req.StudentID); err != nil {
		c.Locals("sync_warning", err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Estudiante asignado", assignment)
}

// PATCH /t/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.StudentModel{}).Where("student_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el estudiante")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Estudiante no encontrado")
	}
	return helper.Success(c, "Estudiante actualizado", nil)
}

// DELETE /t/students/:id
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de estudiante inválido")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var student model.StudentModel
		if err := tx.Where("student_id = ?", id).First(&student).Error; err != nil {
			return err
		}
		if err := tx.Where("teacher_student_student_id = ?", id).
			Delete(&model.TeacherStudentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&student).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", student.StudentUserID).Delete(&userModel.UserModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Estudiante no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el estudiante")
	}
	return helper.Success(c, "Estudiante eliminado", nil)
}
