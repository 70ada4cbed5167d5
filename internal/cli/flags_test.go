package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Addr", flags.Addr, ":8080"},
		{"Background", flags.Background, "back.jpg"},
		{"DetectEngine", flags.DetectEngine, "lingua"},
		{"Backend", flags.Backend, "google"},
		{"TranslateModel", flags.TranslateModel, "gpt-4o-mini"},
		{"AudioProvider", flags.AudioProvider, "google"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini-tts"},
		{"OpenAIVoice", flags.OpenAIVoice, "alloy"},
		{"OpenAISpeed", flags.OpenAISpeed, 1.0},
		{"SlowSpeed", flags.SlowSpeed, 0.6},
		{"MaxWords", flags.MaxWords, 200},
		{"Voice", flags.Voice, "English"},
		{"Output", flags.Output, "cloud.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"SkipSameLanguage", flags.SkipSameLanguage},
		{"All", flags.All},
		{"NoPlay", flags.NoPlay},
		{"NoAutoPlay", flags.NoAutoPlay},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"File", flags.File},
		{"AudioFallback", flags.AudioFallback},
		{"OpenAIInstruction", flags.OpenAIInstruction},
		{"StopwordsFile", flags.StopwordsFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if len(flags.To) != 0 {
		t.Errorf("To = %v, want empty", flags.To)
	}
}
