package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/facility_gis/internal/config"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) (*WebhookWorker, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return NewWebhookWorker(nil, logger, cfg), logs
}

func testEvent(t *testing.T) (models.FacilityEvent, string) {
	t.Helper()
	event := models.FacilityEvent{
		Action: models.FacilityCreated,
		Facility: &models.Facility{
			ID:       uuid.New(),
			Name:     "SD Negeri 2 Sidigede",
			Type:     "SD",
			Category: models.CategoryEducation,
		},
		Timestamp: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// Эталон из RFC 4231, тестовый случай 2
	sig := generateHMACSHA256("what do ya want for nothing?", "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", sig)
}

func TestProcessEvent_DeliversSignedPayload(t *testing.T) {
	event, payload := testEvent(t)
	var gotBody, gotSignature, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker, _ := newTestWorker(&config.Config{
		WebhookURL:     server.URL,
		WebhookSecret:  "secret",
		WebhookTimeout: time.Second,
	})
	worker.processEvent(context.Background(), event, payload)

	assert.Equal(t, payload, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, generateHMACSHA256(payload, "secret"), gotSignature)
}

func TestProcessEvent_SingleAttemptOnFailure(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker, logs := newTestWorker(&config.Config{
		WebhookURL:     server.URL,
		WebhookTimeout: time.Second,
	})
	worker.processEvent(context.Background(), event, payload)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Contains(t, logs.String(), "status code 500")
}

func TestProcessEvent_NoURL(t *testing.T) {
	event, payload := testEvent(t)
	worker, logs := newTestWorker(&config.Config{WebhookTimeout: time.Second})

	worker.processEvent(context.Background(), event, payload)
	assert.Contains(t, logs.String(), "Webhook URL is not configured")
}

func TestNopPublisher(t *testing.T) {
	event, _ := testEvent(t)
	var p WebhookPublisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), event))
}
