// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResponseWriter_CapturesStatusAndSize verifies that explicit WriteHeader
// and Write calls are recorded.
func TestResponseWriter_CapturesStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.Write([]byte("hello"))
	rw.Write([]byte(" world"))

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, len("hello world"), rw.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hello world", rec.Body.String())
}

// TestResponseWriter_ImplicitOK verifies that Write without a prior
// WriteHeader records 200 OK.
func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Write([]byte("body"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 4, rw.size)
}

// TestResponseWriter_SecondWriteHeaderIgnored verifies that only the first
// WriteHeader call takes effect.
func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, rw.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
