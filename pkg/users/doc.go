// Package users implements account lifecycle and credential verification.
//
// The Service sits between the HTTP endpoints and the UsersStore. It owns
// input validation, bcrypt hashing, uniqueness enforcement and the mapping
// of store errors onto the Kind taxonomy. Password hashes never appear in
// its results; callers only ever see Account views.
package users
