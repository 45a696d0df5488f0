package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{input: "en", want: English},
		{input: "GU", want: Gujarati},
		{input: " mr ", want: Marathi},
		{input: "hi", want: Hindi},
		{input: "hi-IN", want: Hindi},
		{input: "en-US", want: English},
		{input: "gu-IN", want: Gujarati},
		{input: "", want: Default},
		{input: "not a tag!", want: Default},
		{input: "fr", want: Default},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestLanguage_Name(t *testing.T) {
	assert.Equal(t, "English", English.Name())
	assert.Equal(t, "Gujarati", Gujarati.Name())
	assert.Equal(t, "Marathi", Marathi.Name())
	assert.Equal(t, "Hindi", Hindi.Name())
	// Anything unrecognized renders as Hindi.
	assert.Equal(t, "Hindi", Language("ta").Name())
}

func TestLanguage_Next(t *testing.T) {
	assert.Equal(t, Gujarati, English.Next())
	assert.Equal(t, English, Hindi.Next())
	assert.Equal(t, Default, Language("xx").Next())
}

func TestLanguage_Valid(t *testing.T) {
	for _, lang := range Supported {
		assert.True(t, lang.Valid(), lang)
	}
	assert.False(t, Language("fr").Valid())
}

func TestT(t *testing.T) {
	assert.Equal(t, "Sorry, I encountered an error. Please try again.", T(English, KeyError))
	assert.Equal(t, "क्षमा करें, एक त्रुटि आई। कृपया पुनः प्रयास करें।", T(Hindi, KeyError))
	assert.Equal(t, "माफ करा, मला तुमची विनंती समजली नाही.", T(Marathi, KeyNotUnderstood))
	assert.Equal(t, T(Hindi, KeyWelcome), T(Language("xx"), KeyWelcome))

	for _, lang := range Supported {
		for _, key := range []Key{KeyTitle, KeyWelcome, KeyPlaceholder, KeyNotUnderstood, KeyError} {
			assert.NotEmpty(t, T(lang, key), "%s/%s", lang, key)
		}
	}
}
