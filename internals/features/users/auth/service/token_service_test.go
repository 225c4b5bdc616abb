package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"edusaber_backend/internals/constants"
	userModel "edusaber_backend/internals/features/users/users/model"
)

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-abc", "secreto")
	h2 := ComputeRefreshHash("token-abc", "secreto")

	assert.Equal(t, h1, h2, "mismo token y secreto, mismo hash")
	assert.Len(t, h1, 64, "hex de SHA-256")

	assert.NotEqual(t, h1, ComputeRefreshHash("token-abc", "otro-secreto"))
	assert.NotEqual(t, h1, ComputeRefreshHash("token-xyz", "secreto"))
}

func TestBuildAccessClaims(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	user := &userModel.UserModel{
		UserID:          uuid.New(),
		UserName:        "Carlos Pérez",
		UserRole:        constants.RoleDocente,
		UserInstitution: "IE La Esperanza",
	}
	teacherID := uuid.New()

	claims := BuildAccessClaims(user, ProfileRefs{TeacherID: &teacherID}, now)

	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, user.UserID.String(), claims["sub"])
	assert.Equal(t, user.UserID.String(), claims["id"])
	assert.Equal(t, "Carlos Pérez", claims["user_name"])
	assert.Equal(t, constants.RoleDocente, claims["user_role"])
	assert.Equal(t, "IE La Esperanza", claims["user_institution"])
	assert.Equal(t, teacherID.String(), claims["teacher_id"])
	_, hasStudent := claims["student_id"]
	assert.False(t, hasStudent)

	iat := claims["iat"].(int64)
	exp := claims["exp"].(int64)
	assert.Equal(t, now.Unix(), iat)
	assert.Equal(t, int64(24*60*60), exp-iat, "el access token dura 24 horas")
}

func TestBuildAccessClaims_Estudiante(t *testing.T) {
	now := time.Now()
	user := &userModel.UserModel{
		UserID:   uuid.New(),
		UserName: "Ana",
		UserRole: constants.RoleEstudiante,
	}
	studentID := uuid.New()

	claims := BuildAccessClaims(user, ProfileRefs{StudentID: &studentID}, now)

	assert.Equal(t, studentID.String(), claims["student_id"])
	_, hasTeacher := claims["teacher_id"]
	assert.False(t, hasTeacher)
}

func TestBuildAccessClaims_SinPerfiles(t *testing.T) {
	claims := BuildAccessClaims(&userModel.UserModel{UserID: uuid.New()}, ProfileRefs{}, time.Now())

	_, hasTeacher := claims["teacher_id"]
	_, hasStudent := claims["student_id"]
	assert.False(t, hasTeacher)
	assert.False(t, hasStudent)
}
