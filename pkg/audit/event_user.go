package audit

import "fmt"

// UserEvent represents a user lifecycle audit event. Operation is one of
// "create", "update" or "delete".
type UserEvent struct {
	UserID       int64
	Username     string
	ClientIP     string
	Operation    string
	Success      bool
	ErrorMessage string
}

func (e UserEvent) MessageID() string {
	return "user"
}

func (e UserEvent) Message() string {
	subject := e.Username
	if subject == "" {
		subject = fmt.Sprintf("user %d", e.UserID)
	}
	if e.Success {
		return fmt.Sprintf("%sd account %s", e.Operation, subject)
	}
	msg := fmt.Sprintf("failed to %s account %s", e.Operation, subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e UserEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e UserEvent) Facility() int {
	return FacilityAuth
}

func (e UserEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDSubject: {
			"user": fmt.Sprintf("%d", e.UserID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result,
		},
	}
	if e.Username != "" {
		sd[SDIDSubject]["username"] = e.Username
	}
	return sd
}
