package service

import (
	"testing"
	"time"

	"campusfeedback_backend/internals/features/feedback/responses/model"
)

func ratings(vals ...int) []model.ResponseItem {
	items := make([]model.ResponseItem, len(vals))
	for i, v := range vals {
		items[i] = model.ResponseItem{QuestionIndex: i, Rating: v}
	}
	return items
}

func TestComputeTotalScore(t *testing.T) {
	cases := []struct {
		in   []model.ResponseItem
		want float64
	}{
		{ratings(5, 5, 5, 5), 100},
		{ratings(1, 1, 1, 1), 20},
		{ratings(3, 4, 5, 2), 70},
		{ratings(3), 60},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := ComputeTotalScore(tc.in); got != tc.want {
			t.Errorf("ComputeTotalScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDaysUntilResubmit(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	cases := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 15},
		{1 * day, 14},
		{14 * day, 1},
		// 14.9 hari: masih di dalam window, sisa dibulatkan ke atas.
		{14*day + 21*time.Hour + 36*time.Minute, 1},
		{15 * day, 0},
		{20 * day, 0},
	}
	for _, tc := range cases {
		if got := DaysUntilResubmit(base, base.Add(tc.elapsed)); got != tc.want {
			t.Errorf("DaysUntilResubmit(+%v) = %d, want %d", tc.elapsed, got, tc.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(nil); got != StatusNotSubmitted {
		t.Errorf("StatusOf(nil) = %q", got)
	}

	empty := &model.FeedbackModel{}
	if got := StatusOf(empty); got != StatusNotSubmitted {
		t.Errorf("StatusOf(empty) = %q", got)
	}

	partial := &model.FeedbackModel{}
	if err := partial.SetResponses(ratings(4, 4)); err != nil {
		t.Fatal(err)
	}
	if got := StatusOf(partial); got != StatusInProgress {
		t.Errorf("StatusOf(partial) = %q", got)
	}

	done := &model.FeedbackModel{FeedbackIsCompleted: true}
	if err := done.SetResponses(ratings(4, 4)); err != nil {
		t.Fatal(err)
	}
	if got := StatusOf(done); got != StatusDone {
		t.Errorf("StatusOf(done) = %q", got)
	}
}

func TestCooldownState(t *testing.T) {
	now := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

	if ok, days := CooldownState(nil, now); !ok || days != 0 {
		t.Errorf("CooldownState(nil) = (%v, %d)", ok, days)
	}

	submitted := now.Add(-10 * 24 * time.Hour)
	fb := &model.FeedbackModel{FeedbackIsCompleted: true, FeedbackSubmittedAt: &submitted}
	if ok, days := CooldownState(fb, now); ok || days != 5 {
		t.Errorf("inside window = (%v, %d), want (false, 5)", ok, days)
	}

	old := now.Add(-15 * 24 * time.Hour)
	fb.FeedbackSubmittedAt = &old
	if ok, days := CooldownState(fb, now); !ok || days != 0 {
		t.Errorf("window elapsed = (%v, %d), want (true, 0)", ok, days)
	}

	// Record yang belum completed tidak pernah memblokir submit.
	fresh := now.Add(-1 * time.Hour)
	inProgress := &model.FeedbackModel{FeedbackSubmittedAt: &fresh}
	if ok, _ := CooldownState(inProgress, now); !ok {
		t.Errorf("incomplete record must not trigger cooldown")
	}
}
