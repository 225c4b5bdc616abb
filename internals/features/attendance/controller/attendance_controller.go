package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusaber_backend/internals/features/attendance/model"
	"edusaber_backend/internals/features/attendance/service"
	helper "edusaber_backend/internals/helpers"
	helperAuth "edusaber_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

type createSessionRequest struct {
	CourseID       uuid.UUID      `json:"course_id"        validate:"required"`
	Date           string         `json:"date"             validate:"omitempty,datetime=2006-01-02"`
	ExpiresMinutes int            `json:"expires_minutes"  validate:"omitempty,min=1,max=1440"`
	Metadata       datatypes.JSON `json:"metadata"`
}

// POST /t/attendance/sessions
func (ctrl *AttendanceController) CreateSession(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sessionDate := time.Now()
	if req.Date != "" {
		sessionDate, _ = time.Parse("2006-01-02", req.Date)
	}
	if req.ExpiresMinutes == 0 {
		req.ExpiresMinutes = 30
	}

	token, err := service.NewSessionToken()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el token de la sesión")
	}

	session := model.AttendanceSessionModel{
		AttendanceSessionCourseID:  req.CourseID,
		AttendanceSessionTeacherID: teacherID,
		AttendanceSessionDate:      sessionDate,
		AttendanceSessionQRToken:   token,
		AttendanceSessionExpiresAt: time.Now().Add(time.Duration(req.ExpiresMinutes) * time.Minute),
		AttendanceSessionMetadata:  req.Metadata,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la sesión de asistencia")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesión de asistencia creada", session)
}

// GET /t/attendance/sessions/:id/qr — PNG del QR para proyectar.
func (ctrl *AttendanceController) GetSessionQR(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de sesión inválido")
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.Where("attendance_session_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Sesión no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar la sesión")
	}
	if session.IsExpired(time.Now()) {
		return helper.Error(c, fiber.StatusGone, "El QR de la sesión ya expiró")
	}

	png, err := service.RenderQRPNG(session.AttendanceSessionQRToken, c.QueryInt("size", 512))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo generar el QR")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

type scanRequest struct {
	Token string `json:"token" validate:"required"`
}

// POST /u/attendance/records
//
// El estudiante escanea el QR: el token resuelve la sesión, el vencimiento
// decide entre presente y rechazo, y el par (session, student) se upserta.
func (ctrl *AttendanceController) RegisterScan(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		return err
	}

	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.Where("attendance_session_qr_token = ?", req.Token).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Token de asistencia desconocido")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo consultar la sesión")
	}

	now := time.Now()
	if session.IsExpired(now) {
		return helper.Error(c, fiber.StatusGone, "La sesión de asistencia ya cerró")
	}

	// Los primeros 10 minutos cuentan como presente, el resto como tarde.
	status := model.AttendanceStatusPresente
	if now.After(session.AttendanceSessionCreatedAt.Add(10 * time.Minute)) {
		status = model.AttendanceStatusTarde
	}

	record := model.AttendanceRecordModel{
		AttendanceRecordSessionID:  session.AttendanceSessionID,
		AttendanceRecordStudentID:  studentID,
		AttendanceRecordStatus:     status,
		AttendanceRecordRecordedAt: now,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_session_id"},
			{Name: "attendance_record_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_record_status",
			"attendance_record_recorded_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo registrar la asistencia")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Asistencia registrada", record)
}

// GET /t/attendance/sessions/:id/records
func (ctrl *AttendanceController) GetSessionRecords(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID de sesión inválido")
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_session_id = ?", id).
		Order("attendance_record_recorded_at").
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar los registros")
	}
	return helper.Success(c, "Registros de asistencia", records)
}

// GET /t/attendance/sessions?course_id=
func (ctrl *AttendanceController) GetSessions(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_teacher_id = ?", teacherID)
	if cid := c.Query("course_id"); cid != "" {
		courseID, perr := uuid.Parse(cid)
		if perr != nil {
			return helper.Error(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q = q.Where("attendance_session_course_id = ?", courseID)
	}

	var sessions []model.AttendanceSessionModel
	if err := q.Order("attendance_session_created_at DESC").Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron listar las sesiones")
	}
	return helper.Success(c, "Sesiones de asistencia", sessions)
}
