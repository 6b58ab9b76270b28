package quizgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ysato/dokkai/internal/llm"
)

const testPassage = "昨日、東京で大きな祭りがありました。多くの人が集まりました。"

func validSetJSON(t *testing.T) json.RawMessage {
	t.Helper()
	set := map[string]any{
		"questions": []map[string]any{
			{
				"category": "事実",
				"question": "祭りはどこでありましたか。",
				"options":  []string{"東京", "大阪", "京都", "名古屋"},
				"answer":   "A",
			},
			{
				"category": "暗示されたメッセージ",
				"question": "この文章から何がわかりますか。",
				"options":  []string{"祭りは人気がある", "祭りは中止された", "雨が降った", "誰も来なかった"},
				"answer":   "A",
			},
			{
				"category": "文法や表現",
				"question": "「集まりました」の辞書形は何ですか。",
				"options":  []string{"集める", "集まる", "集う", "集めた"},
				"answer":   "B",
			},
		},
	}
	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("marshal test set: %v", err)
	}
	return data
}

func TestGenerateDirect(t *testing.T) {
	content := validSetJSON(t)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, Config{Style: StyleDirect, MaxTokens: 4096})

	cand, err := gen.Generate(context.Background(), Input{Passage: testPassage})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cand.Set.Len() != 3 {
		t.Errorf("got %d questions, want 3", cand.Set.Len())
	}
	if string(cand.Raw) != string(content) {
		t.Error("candidate should carry the provider payload unmodified")
	}

	req := mock.Calls[0]
	if req.Schema != QuestionSetSchema {
		t.Error("direct style should use QuestionSetSchema")
	}
	if strings.Contains(req.System, "reasoning") {
		t.Error("direct system prompt should not mention reasoning")
	}
	if !strings.Contains(req.Messages[0].Content, testPassage) {
		t.Error("user message should contain the passage")
	}
}

func TestGenerateReasoned(t *testing.T) {
	// Reasoned responses carry a reasoning field alongside questions.
	var withReasoning map[string]any
	if err := json.Unmarshal(validSetJSON(t), &withReasoning); err != nil {
		t.Fatal(err)
	}
	withReasoning["reasoning"] = "本文の事実: 東京で祭り。含意: 人気がある。"
	content, err := json.Marshal(withReasoning)
	if err != nil {
		t.Fatal(err)
	}

	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	gen := New(mock, Config{Style: StyleReasoned, MaxTokens: 4096})

	cand, err := gen.Generate(context.Background(), Input{Passage: testPassage})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cand.Set.Len() != 3 {
		t.Errorf("got %d questions, want 3", cand.Set.Len())
	}

	req := mock.Calls[0]
	if req.Schema != ReasonedQuestionSetSchema {
		t.Error("reasoned style should use ReasonedQuestionSetSchema")
	}
	if !strings.Contains(req.System, "step by step") {
		t.Error("reasoned system prompt should ask for step-by-step analysis")
	}
}

func TestGenerateEmptyPassage(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Passage: "   "})
	if err == nil {
		t.Fatal("expected error for empty passage")
	}
	if mock.CallCount() != 0 {
		t.Error("should not call provider for empty passage")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Passage: testPassage})
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": "oops"}`)})
	gen := New(mock, Config{Style: StyleDirect, MaxTokens: 4096})

	_, err := gen.Generate(context.Background(), Input{Passage: testPassage})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DOKKAI_PROMPT_STYLE", "direct")
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style != StyleDirect {
		t.Errorf("got style %q, want direct", cfg.Style)
	}

	t.Setenv("DOKKAI_PROMPT_STYLE", "bogus")
	if _, err := ConfigFromEnv(); err == nil {
		t.Error("expected error for invalid style")
	}
}
