package locale

// Key identifies a localized string.
type Key string

// String keys.
const (
	KeyTitle         Key = "chatbotTitle"
	KeyWelcome       Key = "chatbotWelcome"
	KeyPlaceholder   Key = "chatbotPlaceholder"
	KeyNotUnderstood Key = "notUnderstood"
	KeyError         Key = "error"
	KeyAmount        Key = "amount"
	KeyCategory      Key = "category"
	KeyPaidTo        Key = "paidTo"
	KeySaved         Key = "saved"
	KeyGoal          Key = "goal"
	KeyDuration      Key = "duration"
)

var catalog = map[Language]map[Key]string{
	English: {
		KeyTitle:         "Pockit Assistant",
		KeyWelcome:       "Hi! I'm Pockit. Tell me what you spent or how your savings are going, and I'll keep track of it.",
		KeyPlaceholder:   "Type your message...",
		KeyNotUnderstood: "I'm sorry, I couldn't understand your request.",
		KeyError:         "Sorry, I encountered an error. Please try again.",
		KeyAmount:        "Amount",
		KeyCategory:      "Category",
		KeyPaidTo:        "Paid to",
		KeySaved:         "Saved",
		KeyGoal:          "Goal",
		KeyDuration:      "Duration",
	},
	Gujarati: {
		KeyTitle:         "પોકિટ સહાયક",
		KeyWelcome:       "નમસ્તે! હું પોકિટ છું. તમે શું ખર્ચ્યું અથવા તમારી બચત કેવી ચાલી રહી છે તે કહો, હું તેનો હિસાબ રાખીશ.",
		KeyPlaceholder:   "તમારો સંદેશ લખો...",
		KeyNotUnderstood: "માફ કરશો, હું તમારી વિનંતી સમજી શક્યો નથી.",
		KeyError:         "માફ કરશો, એક ભૂલ આવી. કૃપા કરી ફરી પ્રયાસ કરો.",
		KeyAmount:        "રકમ",
		KeyCategory:      "શ્રેણી",
		KeyPaidTo:        "ચૂકવણી",
		KeySaved:         "બચત",
		KeyGoal:          "લક્ષ્ય",
		KeyDuration:      "સમયગાળો",
	},
	Marathi: {
		KeyTitle:         "पॉकिट सहाय्यक",
		KeyWelcome:       "नमस्कार! मी पॉकिट आहे. तुम्ही काय खर्च केला किंवा तुमची बचत कशी चालली आहे ते सांगा, मी त्याची नोंद ठेवेन.",
		KeyPlaceholder:   "तुमचा संदेश लिहा...",
		KeyNotUnderstood: "माफ करा, मला तुमची विनंती समजली नाही.",
		KeyError:         "क्षमस्व, एक त्रुटी आली. कृपया पुन्हा प्रयत्न करा.",
		KeyAmount:        "रक्कम",
		KeyCategory:      "श्रेणी",
		KeyPaidTo:        "यांना दिले",
		KeySaved:         "बचत",
		KeyGoal:          "लक्ष्य",
		KeyDuration:      "कालावधी",
	},
	Hindi: {
		KeyTitle:         "पॉकिट सहायक",
		KeyWelcome:       "नमस्ते! मैं पॉकिट हूँ। बताइए आपने क्या खर्च किया या आपकी बचत कैसी चल रही है, मैं उसका हिसाब रखूँगा।",
		KeyPlaceholder:   "अपना संदेश लिखें...",
		KeyNotUnderstood: "क्षमा करें, मैं आपका अनुरोध समझ नहीं पाया।",
		KeyError:         "क्षमा करें, एक त्रुटि आई। कृपया पुनः प्रयास करें।",
		KeyAmount:        "राशि",
		KeyCategory:      "श्रेणी",
		KeyPaidTo:        "भुगतान",
		KeySaved:         "बचत",
		KeyGoal:          "लक्ष्य",
		KeyDuration:      "अवधि",
	},
}

// T returns the string for key in lang. Unsupported languages use the Hindi
// table, and keys missing from a table fall back to English.
func T(lang Language, key Key) string {
	table, ok := catalog[lang]
	if !ok {
		table = catalog[Hindi]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return catalog[English][key]
}
