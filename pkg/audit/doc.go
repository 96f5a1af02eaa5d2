// Package audit provides audit logging for security-relevant operations.
//
// Events cover authentication attempts, account lifecycle changes and
// password changes. They are written to stdout in RFC5424 syslog format
// and, when AUDIT_DATABASE_URL is set, persisted to a messages table for
// later inspection.
//
// # Usage
//
//	audit.Log(audit.AuthenticateEvent{
//	    Email:    email,
//	    ClientIP: r.RemoteAddr,
//	    Success:  true,
//	})
package audit
