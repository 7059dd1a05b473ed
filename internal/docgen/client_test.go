package docgen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		BuyerName:     "ACME FOOTWEAR",
		InvoiceNumber: "INV-042",
		InvoiceDate:   "2026-09-01",
		CGSTRate:      "2.5",
		SGSTRate:      "2.5",
		Products: []Product{
			{Description: "H9QA9108L660", Size: "SZ-6", HSN: "640220", Quantity: 24, Rate: 108.60, Amount: 2606.40},
		},
	}
}

func TestFileName(t *testing.T) {
	require.Equal(t, "Invoice_INV-042_2026-09-01.pdf", FileName("INV-042", "2026-09-01"))
}

func TestHTTPGeneratorSuccess(t *testing.T) {
	pdf := []byte("%PDF-1.4\nfake\n")
	var received Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	result, err := gen.Generate(context.Background(), samplePayload())
	require.NoError(t, err)
	require.Equal(t, "Invoice_INV-042_2026-09-01.pdf", result.FileName)
	require.Equal(t, "application/pdf", result.ContentType)
	require.Equal(t, pdf, result.Data)

	require.Equal(t, "ACME FOOTWEAR", received.BuyerName)
	require.Equal(t, "2.5", received.CGSTRate)
	require.Len(t, received.Products, 1)
	require.Equal(t, 108.60, received.Products[0].Rate)
}

func TestHTTPGeneratorSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invoice template missing"}`))
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	_, err := gen.Generate(context.Background(), samplePayload())
	var genErr *Error
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, http.StatusBadRequest, genErr.StatusCode)
	require.Equal(t, "invoice template missing", genErr.Message)
}

func TestHTTPGeneratorServerErrorWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"lambda timed out"}`))
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	_, err := gen.Generate(context.Background(), samplePayload())
	var genErr *Error
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, http.StatusInternalServerError, genErr.StatusCode)
	require.Equal(t, "lambda timed out", genErr.Message)
}

func TestHTTPGeneratorMalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	_, err := gen.Generate(context.Background(), samplePayload())
	var genErr *Error
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, GenericFailureMessage, genErr.Message)
}

func TestHTTPGeneratorTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	_, err := gen.Generate(context.Background(), samplePayload())
	var genErr *Error
	require.True(t, errors.As(err, &genErr))
	require.Equal(t, 0, genErr.StatusCode)
	require.Equal(t, GenericFailureMessage, genErr.Message)
}

func TestHTTPGeneratorDoesNotRetry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"busy"}`))
	}))
	defer srv.Close()

	gen := NewHTTPGenerator(srv.URL, time.Second, nil)
	_, err := gen.Generate(context.Background(), samplePayload())
	require.Error(t, err)
	require.Equal(t, 1, attempts)
}

func TestMockGeneratorRecordsPayload(t *testing.T) {
	mock := &Mock{}
	result, err := mock.Generate(context.Background(), samplePayload())
	require.NoError(t, err)
	require.Equal(t, "Invoice_INV-042_2026-09-01.pdf", result.FileName)
	require.NotNil(t, mock.Payload)
	require.Equal(t, "INV-042", mock.Payload.InvoiceNumber)
}
