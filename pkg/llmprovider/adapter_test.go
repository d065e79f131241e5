package llmprovider

import (
	"context"
	"testing"

	"github.com/nikitalobanov12/dayflow-sub002/pkg/deepseek"
	"github.com/nikitalobanov12/dayflow-sub002/pkg/gemini"
)

type fakeGemini struct {
	got *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "ok"}}},
		Usage:   &gemini.Usage{InputTokens: 3, OutputTokens: 1, TotalTokens: 4},
	}, nil
}

func (f *fakeGemini) Model() string { return "gemini-fake" }

type fakeDeepSeek struct {
	got *deepseek.Request
}

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return &deepseek.Response{
		Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "ok"}}},
		Usage:   deepseek.Usage{PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4},
	}, nil
}

func (f *fakeDeepSeek) Model() string { return "deepseek-fake" }

func jsonRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "be terse"}}},
		Messages:          []Message{{Role: "user", Parts: []Part{{Text: "plan"}}}},
		Temperature:       0.2,
		JSONMode:          true,
	}
}

func TestGeminiAdapter(t *testing.T) {
	fake := &fakeGemini{}
	resp, err := NewGeminiAdapter(fake).GenerateContent(context.Background(), jsonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.got.ResponseMIMEType != gemini.MIMETypeJSON {
		t.Errorf("JSON mode not forwarded")
	}
	if fake.got.SystemInstruction.Parts[0].Text != "be terse" {
		t.Errorf("system instruction not forwarded")
	}
	if resp.Content.Text() != "ok" || resp.ProviderName != "gemini" || resp.Usage.TotalTokens != 4 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestDeepSeekAdapter(t *testing.T) {
	fake := &fakeDeepSeek{}
	resp, err := NewDeepSeekAdapter(fake).GenerateContent(context.Background(), jsonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.got.Messages) != 2 || fake.got.Messages[0].Role != "system" || fake.got.Messages[1].Content != "plan" {
		t.Errorf("unexpected messages %+v", fake.got.Messages)
	}
	if fake.got.ResponseFormat == nil || fake.got.ResponseFormat.Type != deepseek.ResponseFormatJSON {
		t.Errorf("JSON mode not forwarded")
	}
	if resp.Content.Text() != "ok" || resp.ProviderName != "deepseek" || resp.Usage.InputTokens != 3 {
		t.Errorf("unexpected response %+v", resp)
	}
}
