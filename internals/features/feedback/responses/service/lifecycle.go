package service

import (
	"math"
	"time"

	"campusfeedback_backend/internals/features/feedback/responses/model"
)

// Masa tunggu resubmit setelah submission selesai.
const ResubmitCooldownDays = 15

// Status feedback per (student, subject) untuk dashboard.
const (
	StatusNotSubmitted = "not submitted"
	StatusInProgress   = "in progress"
	StatusDone         = "done"
)

// ComputeTotalScore: persentase dari skor maksimum (5 per pertanyaan) —
// BUKAN rata-rata rating. [5,5,5,5] → 100.0, [1,1,1,1] → 20.0.
func ComputeTotalScore(items []model.ResponseItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range items {
		sum += it.Rating
	}
	return float64(sum) / float64(5*len(items)) * 100
}

// DaysUntilResubmit: sisa hari cooldown, ceil(15 − hari berlalu).
// 0 artinya sudah boleh resubmit. Pada T+14.9 hari → 1; T+15.0 → 0.
func DaysUntilResubmit(submittedAt, now time.Time) int {
	elapsed := now.Sub(submittedAt).Hours() / 24
	if elapsed >= ResubmitCooldownDays {
		return 0
	}
	return int(math.Ceil(ResubmitCooldownDays - elapsed))
}

// StatusOf derive status dashboard dari record feedback (nil = belum ada).
// "in progress" hanya muncul kalau record punya jawaban tapi belum completed
// — path submit saat ini selalu submit lengkap, jadi status ini read-only.
func StatusOf(fb *model.FeedbackModel) string {
	if fb == nil {
		return StatusNotSubmitted
	}
	if fb.FeedbackIsCompleted {
		return StatusDone
	}
	if len(fb.Responses()) > 0 {
		return StatusInProgress
	}
	return StatusNotSubmitted
}

// CooldownState: (canResubmit, daysUntilResubmit) untuk satu record.
func CooldownState(fb *model.FeedbackModel, now time.Time) (bool, int) {
	if fb == nil || !fb.FeedbackIsCompleted || fb.FeedbackSubmittedAt == nil {
		return true, 0
	}
	days := DaysUntilResubmit(*fb.FeedbackSubmittedAt, now)
	return days == 0, days
}
