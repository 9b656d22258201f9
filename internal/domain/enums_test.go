package domain

import "testing"

func TestMoodLabels(t *testing.T) {
	tests := []struct {
		mood Mood
		want string
	}{
		{MoodHappy, "😊 Happy"},
		{MoodSad, "😢 Sad"},
		{MoodExcited, "😃 Excited"},
		{MoodAngry, "😠 Angry"},
		{MoodPeaceful, "😌 Peaceful"},
		{MoodAnxious, "😰 Anxious"},
		{MoodGrateful, "🙏 Grateful"},
		{MoodTired, "😴 Tired"},
	}
	for _, tt := range tests {
		if got := tt.mood.Label(); got != tt.want {
			t.Errorf("Label(%s) = %q, want %q", tt.mood, got, tt.want)
		}
	}
	if len(Moods()) != len(tests) {
		t.Errorf("Moods() returned %d moods, want %d", len(Moods()), len(tests))
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from EntryState
		to   EntryState
		want bool
	}{
		{EntryStateDraft, EntryStatePublished, true},
		{EntryStateDraft, EntryStateArchived, true},
		{EntryStatePublished, EntryStateDraft, true},
		{EntryStatePublished, EntryStateArchived, true},
		{EntryStateArchived, EntryStateDraft, true},
		{EntryStateArchived, EntryStatePublished, true},
		{EntryStateDraft, EntryStateDraft, false},
		{EntryStateArchived, EntryStateArchived, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
