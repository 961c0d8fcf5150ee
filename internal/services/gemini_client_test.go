package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateSendsConversationAndReturnsReply(t *testing.T) {
	var captured geminiRequest
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path + "?" + r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Drink more water."}}}},
			},
		})
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	reply, err := client.Generate(context.Background(), []AiTurn{
		{Role: "user", Content: "How much water per day?"},
		{Role: "assistant", Content: "Around two liters."},
		{Role: "user", Content: "And when exercising?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if reply != "Drink more water." {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if !strings.Contains(capturedPath, "/v1beta/models/gemini-1.5-flash:generateContent") {
		t.Fatalf("unexpected endpoint: %s", capturedPath)
	}
	if !strings.Contains(capturedPath, "key=test-key") {
		t.Fatalf("expected api key in query, got %s", capturedPath)
	}
	if len(captured.Contents) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(captured.Contents))
	}
	if captured.Contents[0].Role != "user" || captured.Contents[1].Role != "model" {
		t.Fatalf("unexpected roles: %s, %s", captured.Contents[0].Role, captured.Contents[1].Role)
	}
	if captured.GenerationConfig.MaxOutputTokens != 1024 {
		t.Fatalf("expected max output tokens 1024, got %d", captured.GenerationConfig.MaxOutputTokens)
	}
	if len(captured.SafetySettings) != 4 {
		t.Fatalf("expected 4 safety settings, got %d", len(captured.SafetySettings))
	}
}

func TestGenerateReportsUpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.Generate(context.Background(), []AiTurn{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestGenerateRejectsEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.Generate(context.Background(), []AiTurn{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for empty candidates")
	}
}
