package textnorm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	cafeComposed   = "caf\u00e9"
	cafeDecomposed = "cafe\u0301"
)

func TestNormalizedEqual(t *testing.T) {
	// Raw comparison is what normalization fixes.
	assert.NotEqual(t, cafeComposed, cafeDecomposed)

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"composed vs decomposed", cafeComposed, cafeDecomposed, true},
		{"identical", "abc", "abc", true},
		{"case sensitive", "A", "a", false},
		{"no folding", "Straße", "strasse", false},
		{"empty", "", "", true},
		{"ohm sign vs omega", "\u2126", "\u03a9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizedEqual(tt.a, tt.b))
		})
	}
}

func TestFoldedEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"sharp s", "Straße", "strasse", true},
		{"composed vs decomposed", cafeComposed, cafeDecomposed, true},
		{"ascii case", "A", "a", true},
		{"decomposed upper", "CAFE\u0301", cafeComposed, true},
		{"different words", "apple", "apples", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldedEqual(tt.a, tt.b))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "strasse", Fold("STRAßE"))
	assert.Equal(t, cafeComposed, Fold("CAFE\u0301"))
}

func TestIsCombining(t *testing.T) {
	assert.True(t, IsCombining('\u0301'))  // combining acute accent
	assert.True(t, IsCombining('\u0327'))  // combining cedilla
	assert.False(t, IsCombining('e'))      // base letter
	assert.False(t, IsCombining('\u00e9')) // precomposed
	assert.False(t, IsCombining(' '))
}

func TestStripMarks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"composed", cafeComposed, "cafe"},
		{"decomposed", cafeDecomposed, "cafe"},
		{"latin phrase", "“Herr Voß: • ½ cup of Œtker™ caffè latte • bowl of açaí.”", "“Herr Voß: • ½ cup of Œtker™ caffe latte • bowl of acai.”"},
		{"greek too", "Ζέφυρος, Zéfiro", "Ζεφυρος, Zefiro"},
		{"no marks", "plain ascii", "plain ascii"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarks(tt.in))
		})
	}
}

func TestStripMarksLatinOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin stripped", cafeComposed, "cafe"},
		{"greek kept", "Ζέφυρος, Zéfiro", "Ζέφυρος, Zefiro"},
		{"stacked marks on latin", "a\u0301\u0327", "a"},
		{"mark after digit kept", "1\u0301", "1\u0301"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarksLatinOnly(tt.in))
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, FoldedEqual("Straße", "strasse"))
				assert.Equal(t, "cafe", StripMarks(cafeDecomposed))
			}
		}()
	}
	wg.Wait()
}
