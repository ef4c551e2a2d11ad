package dictionary

// DefaultTable returns the embedded bilingual tables. The returned
// table is shared; callers must treat it as read-only.
func DefaultTable() Table {
	return defaultTable
}

var defaultTable = Table{
	"en": {
		"gon": {
			// Greetings
			"hello": "नमस्कार", "hi": "नमस्कार", "greetings": "अभिवादन",
			"good morning": "सुप्रभात", "good afternoon": "शुभ दोपहर",
			"good evening": "शुभ संध्या", "good night": "शुभ रात्रि",
			"welcome": "स्वागत है", "goodbye": "अलविदा",

			// Common phrases
			"thank you": "धन्यवाद", "thanks": "धन्यवाद",
			"please": "कृपया", "sorry": "क्षमा करें",
			"excuse me": "माफ़ कीजिए",
			"how are you": "तुम कैसे हो?", "how are you?": "तुम कैसे हो?",
			"i am fine": "मैं ठीक हूं", "what is your name": "तुम्हारा नाम क्या है?",
			"my name is": "मेरा नाम है", "nice to meet you": "आपसे मिलकर खुशी हुई",

			// Questions
			"what": "क्या", "where": "कहाँ", "when": "कब", "why": "क्यों",
			"who": "कौन", "how": "कैसे", "which": "कौन सा",

			// Basic words
			"yes": "हाँ", "no": "नहीं", "maybe": "शायद",
			"i": "मैं", "you": "तुम", "he": "वह", "she": "वह",
			"we": "हम", "they": "वे", "this": "यह", "that": "वह",

			// Common nouns
			"water": "पानी", "food": "खाना", "house": "घर", "home": "घर",
			"family": "परिवार", "friend": "दोस्त", "mother": "माँ", "father": "पिता",
			"brother": "भाई", "sister": "बहन", "child": "बच्चा",
			"man": "आदमी", "woman": "औरत", "person": "व्यक्ति",
			"day": "दिन", "night": "रात", "time": "समय",
			"place": "जगह", "village": "गाँव", "city": "शहर",
			"tree": "पेड़", "river": "नदी", "mountain": "पहाड़",

			// Verbs
			"come": "आओ", "go": "जाओ", "eat": "खाओ", "drink": "पियो",
			"sleep": "सो जाओ", "wake": "उठो", "sit": "बैठो", "stand": "खड़े हो",
			"speak": "बोलो", "listen": "सुनो", "see": "देखो", "hear": "सुनो",
			"help": "मदद", "love": "प्यार", "like": "पसंद",

			// Adjectives
			"good": "अच्छा", "bad": "बुरा", "big": "बड़ा", "small": "छोटा",
			"hot": "गरम", "cold": "ठंडा", "new": "नया", "old": "पुराना",
			"beautiful": "सुंदर", "happy": "खुश", "sad": "दुखी",
		},
		"sat": {
			// Greetings
			"hello": "ᱡᱚᱦᱟᱨ", "hi": "ᱡᱚᱦᱟᱨ",
			"good morning": "ᱥᱮᱛᱟᱜ ᱡᱚᱦᱟᱨ",
			"good evening": "ᱧᱤᱫᱟ ᱡᱚᱦᱟᱨ",
			"welcome": "ᱥᱟᱹᱜᱩᱱ", "goodbye": "ᱟᱹᱰᱤ ᱥᱟᱹᱜᱩᱱ",

			// Common phrases
			"thank you": "ᱥᱟᱨᱦᱟᱣ", "thanks": "ᱥᱟᱨᱦᱟᱣ",
			"please":       "ᱫᱟᱭᱟ ᱠᱟᱛᱮ",
			"how are you":  "ᱟᱢ ᱪᱮᱫᱟᱜ ᱢᱮᱱᱟᱢᱟ?",
			"how are you?": "ᱟᱢ ᱪᱮᱫᱟᱜ ᱢᱮᱱᱟᱢᱟ?",
			"i am fine":    "ᱤᱧ ᱵᱟᱹᱲᱛᱤ ᱵᱟᱹᱲᱛᱤ",

			// Basic words
			"yes": "ᱦᱮᱸ", "no": "ᱵᱟᱝ",
			"i": "ᱤᱧ", "you": "ᱟᱢ", "he": "ᱩᱱᱤ", "she": "ᱩᱱᱤ",
			"we": "ᱟᱞᱮ", "they": "ᱩᱱᱠᱩ",

			// Common nouns
			"water": "ᱫᱟᱜ", "food": "ᱡᱚᱢᱟᱜ", "house": "ᱚᱲᱟᱜ",
			"family": "ᱜᱷᱟᱨᱚᱸᱡᱽ", "friend": "ᱜᱟᱛᱮ",
			"mother": "ᱟᱭᱚ", "father": "ᱵᱟᱵᱟ",
			"day": "ᱢᱟᱦᱟᱸ", "night": "ᱧᱤᱫᱟ",
			"village": "ᱟᱹᱛᱩ", "tree": "ᱫᱟᱨᱮ", "river": "ᱜᱟᱰᱟ",

			// Verbs
			"come": "ᱦᱮᱡ", "go": "ᱪᱟᱞᱟᱜ", "eat": "ᱡᱚᱢ",
			"help": "ᱜᱚᱲᱚ", "love": "ᱫᱩᱞᱟᱹᱲ",
		},
		"hi": {
			// Greetings
			"hello": "नमस्ते", "hi": "नमस्ते",
			"good morning": "सुप्रभात", "good afternoon": "शुभ दोपहर",
			"good evening": "शुभ संध्या", "good night": "शुभ रात्रि",
			"welcome": "स्वागत है", "goodbye": "अलविदा",

			// Common phrases
			"thank you": "धन्यवाद", "thanks": "शुक्रिया",
			"please": "कृपया", "sorry": "माफ़ करें",
			"how are you": "आप कैसे हैं?", "how are you?": "आप कैसे हैं?",
			"i am fine":         "मैं ठीक हूं",
			"what is your name": "आपका नाम क्या है?",
			"my name is":        "मेरा नाम है",

			// Basic words
			"yes": "हाँ", "no": "नहीं",
			"i": "मैं", "you": "आप", "he": "वह", "she": "वह",
			"we": "हम", "they": "वे",

			// Common nouns
			"water": "पानी", "food": "खाना", "house": "घर",
			"family": "परिवार", "friend": "दोस्त",
			"mother": "माँ", "father": "पिता",
			"day": "दिन", "night": "रात",

			// Verbs
			"help": "मदद", "love": "प्यार",
		},
		"nv": {
			// Greetings
			"hello": "Yá'át'ééh", "hi": "Yá'át'ééh",
			"good morning": "Yá'át'ééh abíní",
			"welcome":      "Hozhǫ́ǫ́go",
			"goodbye":      "Hágoónee'",

			// Common phrases
			"thank you": "Ahéhee'", "thanks": "Ahéhee'",
			"how are you": "Hágooshį́į́?",

			// Basic words
			"yes": "Aoo'", "no": "Dooda",
			"water": "Tó", "food": "Ch'iyáán",
			"help": "Anáá'áhwiinít'į́",
		},
		"chr": {
			// Greetings
			"hello": "ᎣᏏᏲ (Osiyo)", "hi": "ᎣᏏᏲ",
			"goodbye": "ᏙᎾᏓᎪᎲᎢ",

			// Common phrases
			"thank you":   "ᏩᏙ (Wado)",
			"how are you": "ᏙᎯᏧ? (Tohiju?)",

			// Basic words
			"yes": "ᎥᎥ (V)", "no": "ᎯᎠ (Hla)",
			"water": "ᎠᎹ (Ama)", "food": "ᎠᏧᎵ (Agali)",
		},
	},

	// Reverse mappings
	"gon": {
		"en": {
			"नमस्कार": "hello", "धन्यवाद": "thank you",
			"हाँ": "yes", "नहीं": "no",
			"पानी": "water", "खाना": "food",
			"मैं": "I", "तुम": "you",
		},
	},
	"hi": {
		"en": {
			"नमस्ते": "hello", "धन्यवाद": "thank you",
			"हाँ": "yes", "नहीं": "no",
			"पानी": "water", "खाना": "food",
		},
	},
	"sat": {
		"en": {
			"ᱡᱚᱦᱟᱨ":       "hello",
			"ᱥᱟᱨᱦᱟᱣ":      "thank you",
			"ᱥᱮᱛᱟᱜ ᱡᱚᱦᱟᱨ": "good morning",
			"ᱦᱮᱸ": "yes", "ᱵᱟᱝ": "no",
			"ᱫᱟᱜ": "water", "ᱡᱚᱢᱟᱜ": "food",
		},
	},
	"nv": {
		"en": {
			"yá'át'ééh": "hello",
			"ahéhee'":   "thank you",
			"aoo'":      "yes", "dooda": "no",
			"tó": "water", "ch'iyáán": "food",
		},
	},
	"chr": {
		"en": {
			"ᎣᏏᏲ": "hello",
			"ᏩᏙ":  "thank you",
			"ᎥᎥ":  "yes", "ᎯᎠ": "no",
			"ᎠᎹ": "water", "ᎠᏧᎵ": "food",
		},
	},
}
