package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyNotificationSignature(t *testing.T) {
	InitMidtrans("server-key-de-prueba")

	sig := ComputeNotificationSignature("LIC-1-abc", "200", "35000.00", "server-key-de-prueba")

	assert.True(t, VerifyNotificationSignature("LIC-1-abc", "200", "35000.00", sig))

	assert.False(t, VerifyNotificationSignature("LIC-1-abc", "200", "35000.00", "firma-falsa"),
		"una firma inventada no activa licencias")
	assert.False(t, VerifyNotificationSignature("LIC-2-xyz", "200", "35000.00", sig),
		"la firma está atada al order_id")
	assert.False(t, VerifyNotificationSignature("LIC-1-abc", "200", "350000.00", sig),
		"la firma está atada al monto")
	assert.False(t, VerifyNotificationSignature("LIC-1-abc", "200", "35000.00", ""))
}

func TestVerifyNotificationSignature_SinServerKey(t *testing.T) {
	InitMidtrans("")
	defer InitMidtrans("server-key-de-prueba")

	sig := ComputeNotificationSignature("LIC-1-abc", "200", "35000.00", "")
	assert.False(t, VerifyNotificationSignature("LIC-1-abc", "200", "35000.00", sig),
		"sin server key configurada el webhook se rechaza")
}
