package quickadd_test

import (
	"testing"
	"time"

	"task-planner/internal/model"
	"task-planner/internal/quickadd"
)

// Wednesday, May 1, 2024.
var ref = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     model.Priority
		wantName string
	}{
		{"Urgent", "urgent Buy groceries", model.PriorityHigh, "Buy groceries"},
		{"Asap", "fix login asap", model.PriorityHigh, "fix login"},
		{"Critical mixed case", "CRITICAL deploy hotfix", model.PriorityHigh, "deploy hotfix"},
		{"High priority phrase", "high priority call bank", model.PriorityHigh, "call bank"},
		{"Hyphenated", "high-priority call bank", model.PriorityHigh, "call bank"},
		{"Important", "important team offsite", model.PriorityMedium, "team offsite"},
		{"Medium priority phrase", "medium priority clean desk", model.PriorityMedium, "clean desk"},
		{"Someday", "someday learn piano", model.PriorityLow, "learn piano"},
		{"Whenever", "water plants whenever", model.PriorityLow, "water plants"},
		{"Low priority phrase", "low priority sort photos", model.PriorityLow, "sort photos"},
		{"No keyword", "Buy groceries", "", "Buy groceries"},
		{"High beats medium when both appear", "urgent important review", model.PriorityHigh, "important review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quickadd.Parse(tt.input, ref)
			if got.Priority != tt.want {
				t.Errorf("priority = %q, want %q", got.Priority, tt.want)
			}
			if got.Name != tt.wantName {
				t.Errorf("name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestParseListReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantList string
		wantName string
	}{
		{"In form", "Buy groceries in Work", "Work", "Buy groceries"},
		{"Hash form", "Buy groceries #Errands", "Errands", "Buy groceries"},
		{"Hyphenated list", "standup notes in team-alpha", "team-alpha", "standup notes"},
		{"List mid-sentence", "in Work review budget", "Work", "review budget"},
		{"No reference", "Buy groceries", "", "Buy groceries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quickadd.Parse(tt.input, ref)
			if got.ListName != tt.wantList {
				t.Errorf("listName = %q, want %q", got.ListName, tt.wantList)
			}
			if got.Name != tt.wantName {
				t.Errorf("name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestParseListDoesNotEatDatePhrases(t *testing.T) {
	got := quickadd.Parse("renew passport in 10 days", ref)
	if got.ListName != "" {
		t.Fatalf("listName = %q, want none", got.ListName)
	}
	if got.Date == nil {
		t.Fatal("date phrase was not recognized")
	}
	if want := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC); !got.Date.Equal(want) {
		t.Errorf("date = %v, want %v", got.Date, want)
	}
	if got.Name != "renew passport" {
		t.Errorf("name = %q, want %q", got.Name, "renew passport")
	}
}

func TestParseFallbacks(t *testing.T) {
	t.Run("Plain text is just the name", func(t *testing.T) {
		got := quickadd.Parse("Buy milk", ref)
		if got.Name != "Buy milk" {
			t.Errorf("name = %q, want %q", got.Name, "Buy milk")
		}
		if got.Date != nil || got.Time != "" || got.Priority != "" || got.ListName != "" {
			t.Errorf("unexpected extracted fields: %+v", got)
		}
	})

	t.Run("Fully consumed input keeps original as name", func(t *testing.T) {
		got := quickadd.Parse("tomorrow", ref)
		if got.Date == nil {
			t.Fatal("date not extracted")
		}
		if got.Name != "tomorrow" {
			t.Errorf("name = %q, want original input", got.Name)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		got := quickadd.Parse("", ref)
		if got.Name != "" || got.Date != nil || got.Priority != "" {
			t.Errorf("empty input should yield empty result, got %+v", got)
		}
	})

	t.Run("Whitespace only input", func(t *testing.T) {
		got := quickadd.Parse("   ", ref)
		if got.Name != "" {
			t.Errorf("name = %q, want empty", got.Name)
		}
	})
}

func TestParseCombinedSignalsAndPermutations(t *testing.T) {
	inputs := []string{
		"urgent Review PR in Work tomorrow at 3 PM",
		"Review PR urgent tomorrow at 3 PM in Work",
		"in Work urgent Review PR at 3 PM tomorrow",
		"tomorrow at 3 PM urgent Review PR in Work",
	}

	wantDate := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := quickadd.Parse(input, ref)
			if got.Priority != model.PriorityHigh {
				t.Errorf("priority = %q, want high", got.Priority)
			}
			if got.ListName != "Work" {
				t.Errorf("listName = %q, want Work", got.ListName)
			}
			if got.Date == nil || !got.Date.Equal(wantDate) {
				t.Errorf("date = %v, want %v", got.Date, wantDate)
			}
			if got.Time != "15:00" {
				t.Errorf("time = %q, want 15:00", got.Time)
			}
			if got.Name != "Review PR" {
				t.Errorf("name = %q, want %q", got.Name, "Review PR")
			}
		})
	}
}

func TestCachedParser(t *testing.T) {
	p := quickadd.NewCachedParser(8, time.Minute)

	first := p.Parse("urgent Buy groceries", ref)
	second := p.Parse("urgent Buy groceries", ref)
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
	if first.Priority != model.PriorityHigh || first.Name != "Buy groceries" {
		t.Errorf("unexpected parse result: %+v", first)
	}

	// A different reference day must not reuse the cached date.
	later := ref.AddDate(0, 0, 1)
	moved := p.Parse("pay rent tomorrow", later)
	if moved.Date == nil {
		t.Fatal("date not extracted")
	}
	if want := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC); !moved.Date.Equal(want) {
		t.Errorf("date = %v, want %v", moved.Date, want)
	}
}
