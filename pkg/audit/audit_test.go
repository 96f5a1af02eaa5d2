package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := AuthenticateEvent{
		Email:    "alice@example.com",
		UserID:   7,
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "userd") {
		t.Error("Expected app name 'userd' in output")
	}
	if !strings.Contains(output, "authn") {
		t.Error("Expected message ID 'authn' in output")
	}
	if !strings.Contains(output, "alice@example.com") {
		t.Error("Expected email in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully authenticated") {
		t.Error("Expected success message in output")
	}
}

func TestAuthenticateEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     AuthenticateEvent
		wantMsg   string
		wantSev   Severity
		wantMsgID string
	}{
		{
			name: "success",
			event: AuthenticateEvent{
				Email:   "alice@example.com",
				UserID:  1,
				Success: true,
			},
			wantMsg:   "alice@example.com successfully authenticated",
			wantSev:   SeverityInfo,
			wantMsgID: "authn",
		},
		{
			name: "failure",
			event: AuthenticateEvent{
				Email:        "alice@example.com",
				Success:      false,
				ErrorMessage: "invalid credentials",
			},
			wantMsg:   "alice@example.com failed to authenticate: invalid credentials",
			wantSev:   SeverityWarning,
			wantMsgID: "authn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.event.Severity(); got != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", got, tt.wantSev)
			}
			if got := tt.event.MessageID(); got != tt.wantMsgID {
				t.Errorf("MessageID() = %q, want %q", got, tt.wantMsgID)
			}
		})
	}
}

func TestUserEventMessages(t *testing.T) {
	tests := []struct {
		name    string
		event   UserEvent
		wantMsg string
	}{
		{
			name:    "create success",
			event:   UserEvent{UserID: 3, Username: "bob", Operation: "create", Success: true},
			wantMsg: "created account bob",
		},
		{
			name:    "delete failure",
			event:   UserEvent{UserID: 3, Operation: "delete", Success: false, ErrorMessage: "user not found"},
			wantMsg: "failed to delete account user 3: user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Message(); got != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestEscapeSDValue(t *testing.T) {
	got := escapeSDValue(`va"l]ue\`)
	want := `"va\"l\]ue\\"`
	if got != want {
		t.Errorf("escapeSDValue() = %s, want %s", got, want)
	}
}
