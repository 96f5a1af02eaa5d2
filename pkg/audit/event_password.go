package audit

import "fmt"

// PasswordEvent represents a password change audit event
type PasswordEvent struct {
	UserID       int64
	Username     string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e PasswordEvent) MessageID() string {
	return "password"
}

func (e PasswordEvent) Message() string {
	subject := e.Username
	if subject == "" {
		subject = fmt.Sprintf("user %d", e.UserID)
	}
	if e.Success {
		return fmt.Sprintf("password changed for %s", subject)
	}
	msg := fmt.Sprintf("failed to change password for %s", subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e PasswordEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e PasswordEvent) Facility() int {
	return FacilityAuthPriv
}

func (e PasswordEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDSubject: {
			"user": fmt.Sprintf("%d", e.UserID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "change-password",
			"result":    result,
		},
	}
}
