package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"edusaber_backend/internals/features/licenses/model"
)

var (
	SnapClient    snap.Client
	snapServerKey string
)

// Precios por plan en COP.
var planPrices = map[string]int64{
	model.LicensePlanMensual: 35000,
	model.LicensePlanAnual:   350000,
}

// InitMidtrans inicializa el cliente Snap con la server key.
func InitMidtrans(serverKey string) {
	snapServerKey = serverKey
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// ComputeNotificationSignature es la firma que Midtrans adjunta a cada
// notificación: SHA-512 de order_id + status_code + gross_amount + server key.
func ComputeNotificationSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifyNotificationSignature valida la firma del webhook contra la server
// key configurada. Sin server key no hay forma de validar: se rechaza.
func VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	if snapServerKey == "" || signatureKey == "" {
		return false
	}
	expected := ComputeNotificationSignature(orderID, statusCode, grossAmount, snapServerKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signatureKey))) == 1
}

// PlanPrice devuelve el precio del plan o un error si el plan no existe.
func PlanPrice(plan string) (int64, error) {
	price, ok := planPrices[strings.ToLower(plan)]
	if !ok {
		return 0, fmt.Errorf("plan desconocido: %s", plan)
	}
	return price, nil
}

// GenerateSnapToken crea el token Snap de la orden de licencia.
func GenerateSnapToken(license *model.TeacherLicenseModel, teacherName, teacherEmail string) (string, error) {
	if license.TeacherLicenseOrderID == nil {
		return "", fmt.Errorf("la licencia no tiene order_id")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  *license.TeacherLicenseOrderID,
			GrossAmt: license.TeacherLicenseAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: teacherName,
			Email: teacherEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
