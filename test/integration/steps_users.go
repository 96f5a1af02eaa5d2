package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	sessionToken string
	userIDs      map[string]int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:      tc,
		userIDs: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a userd server is running$`, s.aUserdServerIsRunning)
	sc.Step(`^no users exist$`, s.noUsersExist)

	// Registration steps
	sc.Step(`^I register "([^"]*)" with email "([^"]*)" and password "([^"]*)"$`, s.iRegister)

	// Authentication steps
	sc.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, s.iLogIn)
	sc.Step(`^I should receive a session token$`, s.iShouldReceiveASessionToken)
	sc.Step(`^I request my identity with the session token$`, s.iRequestMyIdentity)

	// User management steps
	sc.Step(`^I list the users$`, s.iListUsers)
	sc.Step(`^I fetch the user "([^"]*)"$`, s.iFetchUser)
	sc.Step(`^I change the email of "([^"]*)" to "([^"]*)"$`, s.iChangeEmail)
	sc.Step(`^I delete the user "([^"]*)"$`, s.iDeleteUser)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain "([^"]*)" "([^"]*)"$`, s.theResponseShouldContain)
	sc.Step(`^the response should contain the error "([^"]*)"$`, s.theResponseShouldContainError)
	sc.Step(`^the response should not contain a password$`, s.theResponseShouldNotContainPassword)

	// Database assertion steps
	sc.Step(`^the user "([^"]*)" should exist in the database$`, s.userShouldExistInDatabase)
	sc.Step(`^the user "([^"]*)" should not exist in the database$`, s.userShouldNotExistInDatabase)
}

// Background steps

func (s *StepsContext) aUserdServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) noUsersExist() error {
	return s.tc.DB.Exec(`DELETE FROM users`).Error
}

func (s *StepsContext) doJSON(method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.sessionToken)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	if err != nil {
		return err
	}

	// Remember ids of created or fetched users for later steps
	var account struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if json.Unmarshal(s.responseBody, &account) == nil && account.ID != 0 && account.Username != "" {
		s.userIDs[account.Username] = account.ID
	}

	return nil
}

// Registration steps

func (s *StepsContext) iRegister(username, email, password string) error {
	return s.doJSON("POST", "/users", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
}

// Authentication steps

func (s *StepsContext) iLogIn(email, password string) error {
	return s.doJSON("POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (s *StepsContext) iShouldReceiveASessionToken() error {
	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(s.responseBody, &login); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	if login.AccessToken == "" {
		return fmt.Errorf("missing 'access_token' field in response: %s", string(s.responseBody))
	}
	if login.TokenType != "Bearer" {
		return fmt.Errorf("expected token_type 'Bearer', got %q", login.TokenType)
	}

	if _, err := s.tc.Tokens.Verify(login.AccessToken); err != nil {
		return fmt.Errorf("token did not verify: %w", err)
	}

	s.sessionToken = login.AccessToken
	return nil
}

func (s *StepsContext) iRequestMyIdentity() error {
	return s.doJSON("GET", "/whoami", nil)
}

// User management steps

func (s *StepsContext) iListUsers() error {
	return s.doJSON("GET", "/users", nil)
}

func (s *StepsContext) iFetchUser(username string) error {
	id, ok := s.userIDs[username]
	if !ok {
		return fmt.Errorf("no known id for user %q", username)
	}
	return s.doJSON("GET", fmt.Sprintf("/users/%d", id), nil)
}

func (s *StepsContext) iChangeEmail(username, email string) error {
	id, ok := s.userIDs[username]
	if !ok {
		return fmt.Errorf("no known id for user %q", username)
	}
	return s.doJSON("PUT", fmt.Sprintf("/users/%d", id), map[string]string{
		"email": email,
	})
}

func (s *StepsContext) iDeleteUser(username string) error {
	id, ok := s.userIDs[username]
	if !ok {
		return fmt.Errorf("no known id for user %q", username)
	}
	return s.doJSON("DELETE", fmt.Sprintf("/users/%d", id), nil)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldContain(field, expected string) error {
	var payload map[string]any
	if err := json.Unmarshal(s.responseBody, &payload); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	actual, ok := payload[field]
	if !ok {
		return fmt.Errorf("field %q not present in response: %s", field, string(s.responseBody))
	}
	if fmt.Sprintf("%v", actual) != expected {
		return fmt.Errorf("expected %q to be %q, got %v", field, expected, actual)
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainError(expected string) error {
	return s.theResponseShouldContain("error", expected)
}

func (s *StepsContext) theResponseShouldNotContainPassword() error {
	body := string(s.responseBody)
	if strings.Contains(body, "password") {
		return fmt.Errorf("response leaks password data: %s", body)
	}
	return nil
}

// Database assertion steps

func (s *StepsContext) userShouldExistInDatabase(username string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count).Error; err != nil {
		return err
	}
	if count != 1 {
		return fmt.Errorf("expected 1 user named %q, found %d", username, count)
	}
	return nil
}

func (s *StepsContext) userShouldNotExistInDatabase(username string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected no user named %q, found %d", username, count)
	}
	return nil
}
