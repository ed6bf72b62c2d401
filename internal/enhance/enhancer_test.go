package enhance

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return &Client{
		baseURL: url,
		apiKey:  "test-key",
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestEnhance_ReturnsImage(t *testing.T) {
	enhanced := []byte("enhanced-image-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
			t.Errorf("unexpected request shape: %+v", req)
		}

		resp := generateResponse{}
		resp.Candidates = []struct {
			Content content `json:"content"`
		}{{Content: content{Parts: []part{
			{Text: "here is your image"},
			{InlineData: &inlineData{
				MimeType: "image/png",
				Data:     base64.StdEncoding.EncodeToString(enhanced),
			}},
		}}}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	got, err := testClient(srv.URL).Enhance(context.Background(), []byte("original"), "image/png", "soft lighting")
	if err != nil {
		t.Fatalf("Enhance failed: %v", err)
	}
	if string(got) != string(enhanced) {
		t.Errorf("Enhance = %q, want %q", got, enhanced)
	}
}

func TestEnhance_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Enhance(context.Background(), []byte("x"), "image/png", "brighten"); err == nil {
		t.Error("Enhance succeeded against a failing service")
	}
}

func TestEnhance_NoImageInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Enhance(context.Background(), []byte("x"), "image/png", "brighten"); err == nil {
		t.Error("Enhance succeeded with no image in the response")
	}
}
