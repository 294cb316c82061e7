package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/glowdecor/backend/pkg/errors"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorDependencyFailureIs500WithRawMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	cause := errors.New("connection refused")

	WriteError(context.Background(), nil, rec,
		pkgerrors.Wrap(pkgerrors.CodeDependency, cause, "listing products"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "connection refused", body["error"])
	assert.Empty(t, body["message"])
}

func TestWriteErrorInternalWithoutCauseUsesMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec,
		pkgerrors.New(pkgerrors.CodeInternal, "something broke"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "something broke", decodeError(t, rec)["error"])
}

func TestWriteErrorPlainErrorSurfacesRawText(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "pq: relation does not exist", decodeError(t, rec)["error"])
}

func TestWriteErrorNotFoundBody(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec,
		pkgerrors.New(pkgerrors.CodeNotFound, "Product not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", decodeError(t, rec)["error"])
}

func TestWriteErrorUnauthorizedBody(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(context.Background(), nil, rec,
		pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid or missing admin token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "Invalid or missing admin token", body["message"])
}
