package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "بی خوابی", Normalize("بی‌خوابی"))
	assert.Equal(t, "adhd", Normalize("ADHD"))
	assert.Equal(t, "سلام", Normalize("سلام"))
}

func TestHasAny(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		vocab Vocab
		want  bool
	}{
		{"exact substring", "دیشب تپش قلب داشتم", Panic, true},
		{"no cue", "امروز هوا خوب بود", Panic, false},
		{"zwnj in text matches spaced entry", "خیلی بی‌قراری دارم", GADCore, false},
		{"plain match", "خیلی نگرانی دارم", GADCore, true},
		{"latin case folded", "فکر کنم ADHD دارم", ADHD, true},
		{"empty text", "", Depressive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAny(tt.text, tt.vocab))
		})
	}
}

func TestIsManiaLike(t *testing.T) {
	assert.True(t, IsManiaLike("چند روزه خیلی پرانرژی هستم و نمی‌خوابم"))
	assert.True(t, IsManiaLike("دوره‌های خلق بالا دارم"))
	assert.False(t, IsManiaLike("فقط خسته‌ام"))
}

func TestIsGriefDominant(t *testing.T) {
	assert.True(t, IsGriefDominant("بعد از فوت پدرم هیچی مثل قبل نیست"))
	// manic phrasing cancels the grief gate
	assert.False(t, IsGriefDominant("بعد از فوت پدرم گاهی خیلی پرانرژی می‌شم"))
	assert.False(t, IsGriefDominant("حالم خوب نیست"))
}

func TestHasADHDSignal(t *testing.T) {
	assert.True(t, HasADHDSignal("بیش‌فعالی دارم"))
	assert.True(t, HasADHDSignal("از کودکی مشکل تمرکز داشتم"))
	// attention complaint alone is not enough without childhood onset
	assert.False(t, HasADHDSignal("این روزها تمرکز ندارم"))
	assert.False(t, HasADHDSignal("حالم خوبه"))
}

func TestIsEmergency(t *testing.T) {
	assert.True(t, IsEmergency("می‌خوام خودکشی کنم"))
	assert.True(t, IsEmergency("دارم به خودم آسیب می‌زنم"))
	assert.False(t, IsEmergency("خیلی ناراحتم"))
}
