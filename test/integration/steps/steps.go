package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/pocket-ledger/backend/test/integration/mock"
)

func (t *testContext) theAPIServerIsRunning() error {
	t.startServers()
	t.uri = accountsURL
	return nil
}

func (t *testContext) theGuestAPIServerIsRunning() error {
	t.startServers()
	t.uri = guestURL
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.clock.SetCurrentTime(now)
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	body := fmt.Sprintf(`{"email": %q, "name": "Test User", "password": %q}`, email, password)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to register %s: %d %v", email, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) iAmRegisteredAndLoggedInAs(email string) error {
	if err := t.aUserExistsWithEmailAndPassword(email, "SecurePass123!"); err != nil {
		return err
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected register response: %v", t.response.body)
	}
	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	if access == "" || refresh == "" {
		return fmt.Errorf("register response carries no tokens: %v", body)
	}
	t.accessToken = access
	t.refreshToken = refresh
	return nil
}

func (t *testContext) iLoggedACashExpenseIn(amount, category string) error {
	body := fmt.Sprintf(`{"amount": %s, "category": %q, "payment_type": "cash"}`, amount, category)
	if err := t.executeRequest(http.MethodPost, "/api/v1/expenses", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to log expense: %d %v", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(text string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if body, ok := t.response.body.(map[string]any); ok {
		if _, exists := body[text]; exists {
			return nil
		}
	}

	raw := fmt.Sprintf("%v", t.response.body)
	if !strings.Contains(raw, text) {
		return fmt.Errorf("response does not contain '%s': %v", text, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.field(field)
	return err
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	value, err := t.field(field)
	if err != nil {
		return err
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) field(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return value, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := t.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theRedisKeyShouldExist(key string) error {
	if !mock.RedisKeyExists(key) {
		return fmt.Errorf("redis key '%s' does not exist", key)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
