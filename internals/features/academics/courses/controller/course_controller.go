package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edusaber_backend/internals/features/academics/courses/dto"
	"edusaber_backend/internals/features/academics/courses/model"
	studentDTO "edusaber_backend/internals/features/academics/students/dto"
	helper "edusaber_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validator: validator.New()}
}

// GET /t/courses?grade=&institution=
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CourseModel{})
	if grade := strings.TrimSpace(c.Query("grade")); grade != "" {
		q = q.Where("course_grade = ?", grade)
	}
	if inst := strings.TrimSpace(c.Query("institution")); inst != "" {
		q = q.Where("course_institution = ?", inst)
	}

	var courses []model.CourseModel
	if err := q.Order("course_grade, course_name").Find(&courses).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los cursos")
	}
	return helper.Success(c, "Cursos obtenidos", courses)
}

// GET /t/courses/:id
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar el curso")
	}
	return helper.Success(c, "Curso obtenido", course)
}

// GET /t/courses/:id/students
func (ctrl *CourseController) GetCourseStudents(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var rows []studentDTO.StudentWithUser
	err = ctrl.DB.Table("students AS s").
		Select(`s.student_id, s.student_user_id, s.student_grade, s.student_course_id,
			s.student_institution, s.student_contact_email, s.student_contact_phone,
			u.user_name, u.user_email, u.user_is_active`).
		Joins("JOIN users u ON u.user_id = s.student_user_id AND u.user_deleted_at IS NULL").
		Where("s.student_course_id = ? AND s.student_deleted_at IS NULL", id).
		Order("u.user_name").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los estudiantes del curso")
	}
	return helper.Success(c, "Estudiantes del curso obtenidos", rows)
}

// POST /a/courses
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := model.CourseModel{
		CourseName:        strings.TrimSpace(req.Name),
		CourseGrade:       strings.TrimSpace(req.Grade),
		CourseInstitution: strings.TrimSpace(req.Institution),
		CourseTeacherID:   req.TeacherID,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el curso")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Curso creado", course)
}

// PATCH /a/courses/:id
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Nada que actualizar")
	}

	res := ctrl.DB.Model(&model.CourseModel{}).Where("course_id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el curso")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	return helper.Success(c, "Curso actualizado", nil)
}

// DELETE /a/courses/:id
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de curso inválido")
	}

	res := ctrl.DB.Where("course_id = ?", id).Delete(&model.CourseModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el curso")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	return helper.Success(c, "Curso eliminado", nil)
}
