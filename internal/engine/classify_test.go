package engine

import (
	"context"
	"testing"
)

func TestKeywordClassifier(t *testing.T) {
	kc := NewKeywordClassifier([]string{"NSFW", " gore ", ""})
	tests := []struct {
		text string
		want bool
	}{
		{"nsfw clip", true},
		{"NSFW CLIP", true},
		{"NsFw", true},
		{"Gore warning", true},
		{"cooking show", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := kc.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestKeywordClassifier_Pure(t *testing.T) {
	kc := NewKeywordClassifier(DefaultSensitiveTerms)
	for i := 0; i < 3; i++ {
		if !kc.Classify("Bikini haul") {
			t.Fatalf("call %d: expected true", i)
		}
		if kc.Classify("Go concurrency patterns") {
			t.Fatalf("call %d: expected false", i)
		}
	}
}

func TestKeywordClassifier_EmptyTerms(t *testing.T) {
	kc := NewKeywordClassifier(nil)
	if kc.Classify("nsfw anything") {
		t.Error("empty term set must classify nothing")
	}
	if len(kc.Terms()) != 0 {
		t.Errorf("Terms() = %v, want empty", kc.Terms())
	}
}

func TestKeywordClassifier_TermsNormalized(t *testing.T) {
	kc := NewKeywordClassifier([]string{"  Foo ", "BAR", "   "})
	got := kc.Terms()
	if len(got) != 2 || got[0] != "foo" || got[1] != "bar" {
		t.Errorf("Terms() = %v, want [foo bar]", got)
	}
}

func TestNewClassifier(t *testing.T) {
	t.Run("keyword default with extra terms", func(t *testing.T) {
		c := NewClassifier(Config{SensitiveTerms: []string{"jumpscare"}})
		if _, ok := c.(*KeywordClassifier); !ok {
			t.Fatalf("got %T, want *KeywordClassifier", c)
		}
		if !c.Classify("Top 10 JUMPSCARE moments") {
			t.Error("extra term not applied")
		}
		if !c.Classify("nsfw") {
			t.Error("default terms dropped")
		}
	})
	t.Run("llm without key falls back to keyword", func(t *testing.T) {
		c := NewClassifier(Config{Classifier: "llm"})
		if _, ok := c.(*KeywordClassifier); !ok {
			t.Fatalf("got %T, want *KeywordClassifier", c)
		}
	})
	t.Run("llm with key", func(t *testing.T) {
		c := NewClassifier(Config{Classifier: "LLM", LLMAPIKey: "k", LLMAPIBase: "http://127.0.0.1:1", LLMModel: "m"})
		if _, ok := c.(*LLMClassifier); !ok {
			t.Fatalf("got %T, want *LLMClassifier", c)
		}
	})
}

func TestAnnotate(t *testing.T) {
	items := []SearchResultItem{
		{Kind: KindVideo, Title: "Pasta night", ChannelTitle: "NSFW kitchen"},
		{Kind: KindChannel, Title: "Kitchen", ChannelTitle: "nsfw kitchen"},
		{Kind: KindVideo, Title: "nsfw"},
	}
	if err := annotate(context.Background(), NewKeywordClassifier([]string{"nsfw"}), items); err != nil {
		t.Fatalf("annotate: %v", err)
	}
	want := []bool{false, true, true}
	for i, it := range items {
		if it.IsSensitive != want[i] {
			t.Errorf("item %d IsSensitive = %v, want %v", i, it.IsSensitive, want[i])
		}
	}
}
