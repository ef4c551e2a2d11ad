package catalog

import "tribalbridge/backend/internal/model"

var majorLanguages = []model.Language{
	{Code: "en", Name: "English", NativeName: "English", Region: "Global", Country: "United Kingdom", Speakers: 1500000000, Status: model.StatusSafe, Family: "Indo-European"},
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", Region: "North India", Country: "India", Speakers: 600000000, Status: model.StatusSafe, Family: "Indo-European", Script: "Devanagari"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", Region: "Bengal", Country: "Bangladesh", Speakers: 300000000, Status: model.StatusSafe, Family: "Indo-European", Script: "Bengali"},
	{Code: "es", Name: "Spanish", NativeName: "Español", Region: "Global", Country: "Spain", Speakers: 500000000, Status: model.StatusSafe, Family: "Indo-European"},
	{Code: "fr", Name: "French", NativeName: "Français", Region: "Global", Country: "France", Speakers: 280000000, Status: model.StatusSafe, Family: "Indo-European"},
	{Code: "de", Name: "German", NativeName: "Deutsch", Region: "Central Europe", Country: "Germany", Speakers: 100000000, Status: model.StatusSafe, Family: "Indo-European"},
	{Code: "pt", Name: "Portuguese", NativeName: "Português", Region: "Global", Country: "Portugal", Speakers: 260000000, Status: model.StatusSafe, Family: "Indo-European"},
	{Code: "zh", Name: "Chinese", NativeName: "中文", Region: "East Asia", Country: "China", Speakers: 1100000000, Status: model.StatusSafe, Family: "Sino-Tibetan", Script: "Chinese characters"},
	{Code: "ja", Name: "Japanese", NativeName: "日本語", Region: "Japan", Country: "Japan", Speakers: 125000000, Status: model.StatusSafe, Family: "Japonic", Script: "Hiragana, Katakana, Kanji"},
	{Code: "ar", Name: "Arabic", NativeName: "العربية", Region: "Middle East", Country: "Saudi Arabia", Speakers: 400000000, Status: model.StatusSafe, Family: "Afro-Asiatic", Script: "Arabic"},
}

var tribalLanguages = []model.Language{
	// Indian tribal languages
	{Code: "gon", Name: "Gondi", NativeName: "गोंडी", Region: "Central India", Country: "India", Speakers: 2900000, Status: model.StatusVulnerable, Family: "Dravidian", Script: "Devanagari", Tribal: true, Description: "Spoken by the Gond people, one of the largest tribal groups in India"},
	{Code: "sat", Name: "Santali", NativeName: "ᱥᱟᱱᱛᱟᱲᱤ", Region: "Eastern India", Country: "India", Speakers: 7368192, Status: model.StatusSafe, Family: "Austroasiatic", Script: "Ol Chiki", Tribal: true, Description: "Official language in Jharkhand, spoken by the Santal people"},
	{Code: "ho", Name: "Ho", NativeName: "Ho", Region: "Jharkhand", Country: "India", Speakers: 1040000, Status: model.StatusVulnerable, Family: "Austroasiatic", Tribal: true, Description: "Spoken by the Ho people in Jharkhand and Odisha"},
	{Code: "brx", Name: "Bodo", NativeName: "बोडो", Region: "Assam", Country: "India", Speakers: 1350478, Status: model.StatusVulnerable, Family: "Sino-Tibetan", Script: "Devanagari", Tribal: true, Description: "Official language of Bodoland Territorial Region in Assam"},
	{Code: "kha", Name: "Khasi", NativeName: "Ka Ktien Khasi", Region: "Meghalaya", Country: "India", Speakers: 1128575, Status: model.StatusVulnerable, Family: "Austroasiatic", Script: "Latin", Tribal: true, Description: "Official language of Meghalaya state"},
	{Code: "grt", Name: "Garo", NativeName: "A·chik", Region: "Meghalaya", Country: "India", Speakers: 889000, Status: model.StatusVulnerable, Family: "Sino-Tibetan", Script: "Latin", Tribal: true, Description: "Spoken by the Garo people in Meghalaya and Bangladesh"},
	{Code: "mni", Name: "Manipuri", NativeName: "ꯃꯤꯇꯩ ꯂꯣꯟ", Region: "Manipur", Country: "India", Speakers: 1760000, Status: model.StatusVulnerable, Family: "Sino-Tibetan", Script: "Meitei Mayek", Tribal: true, Description: "Official language of Manipur, also known as Meitei"},
	{Code: "lus", Name: "Mizo", NativeName: "Mizo ṭawng", Region: "Mizoram", Country: "India", Speakers: 830846, Status: model.StatusVulnerable, Family: "Sino-Tibetan", Script: "Latin", Tribal: true, Description: "Official language of Mizoram state"},
	{Code: "kru", Name: "Kurukh", NativeName: "कुड़ुख़", Region: "Jharkhand", Country: "India", Speakers: 2053000, Status: model.StatusVulnerable, Family: "Dravidian", Script: "Devanagari", Tribal: true, Description: "Spoken by the Oraon people across central and eastern India"},
	{Code: "mjz", Name: "Majhi", NativeName: "माझी", Region: "Nepal/India", Country: "Nepal", Speakers: 22000, Status: model.StatusSeverelyEndangered, Family: "Indo-European", Tribal: true, Description: "Spoken by the Majhi people along rivers in Nepal and India"},

	// African indigenous languages
	{Code: "kho", Name: "Khoikhoi", NativeName: "Khoekhoegowab", Region: "Southern Africa", Country: "Namibia", Speakers: 200000, Status: model.StatusSeverelyEndangered, Family: "Khoe-Kwadi", Tribal: true, Description: "Traditional language of the Khoi people with distinctive click consonants"},
	{Code: "san", Name: "San", NativeName: "!Xóõ", Region: "Kalahari", Country: "Botswana", Speakers: 4200, Status: model.StatusSeverelyEndangered, Family: "Tuu", Tribal: true, Description: "Ancient hunter-gatherer language with complex click system"},
	{Code: "had", Name: "Hadza", NativeName: "Hadzane", Region: "Tanzania", Country: "Tanzania", Speakers: 1000, Status: model.StatusCriticallyEndangered, Family: "Language isolate", Tribal: true, Description: "Unique click language of the Hadza hunter-gatherers"},
	{Code: "pig", Name: "Pirahã", NativeName: "Pirahã", Region: "Amazon", Country: "Brazil", Speakers: 420, Status: model.StatusCriticallyEndangered, Family: "Mura", Tribal: true, Description: "Amazonian language famous for its unique grammatical properties"},

	// Native American languages
	{Code: "nv", Name: "Navajo", NativeName: "Diné bizaad", Region: "Southwest US", Country: "United States", Speakers: 170000, Status: model.StatusVulnerable, Family: "Na-Dené", Tribal: true, Description: "Most widely spoken Native American language in the US"},
	{Code: "chr", Name: "Cherokee", NativeName: "ᏣᎳᎩ ᎦᏬᏂᎯᏍᏗ", Region: "Southeast US", Country: "United States", Speakers: 2000, Status: model.StatusSeverelyEndangered, Family: "Iroquoian", Script: "Cherokee syllabary", Tribal: true, Description: "Historic language with its own writing system"},
	{Code: "lkt", Name: "Lakota", NativeName: "Lakȟótiyapi", Region: "Great Plains", Country: "United States", Speakers: 2000, Status: model.StatusSeverelyEndangered, Family: "Siouan", Tribal: true, Description: "Language of the Lakota people of the Great Plains"},
	{Code: "iu", Name: "Inuktitut", NativeName: "ᐃᓄᒃᑎᑐᑦ", Region: "Arctic Canada", Country: "Canada", Speakers: 39000, Status: model.StatusVulnerable, Family: "Eskimo-Aleut", Script: "Canadian Aboriginal syllabics", Tribal: true, Description: "Official language of Nunavut territory"},
	{Code: "oj", Name: "Ojibwe", NativeName: "Anishinaabemowin", Region: "Great Lakes", Country: "Canada", Speakers: 50000, Status: model.StatusSeverelyEndangered, Family: "Algonquian", Tribal: true, Description: "Language of the Ojibwe people around the Great Lakes"},
	{Code: "qu", Name: "Quechua", NativeName: "Runa Simi", Region: "Andes", Country: "Peru", Speakers: 8000000, Status: model.StatusVulnerable, Family: "Quechuan", Tribal: true, Description: "Ancient language of the Inca Empire, still widely spoken"},

	// Australian Aboriginal languages
	{Code: "wbp", Name: "Warlpiri", NativeName: "Warlpiri", Region: "Central Australia", Country: "Australia", Speakers: 3000, Status: model.StatusSeverelyEndangered, Family: "Pama-Nyungan", Tribal: true, Description: "Well-documented Aboriginal language with unique grammar"},
	{Code: "aer", Name: "Arrernte", NativeName: "Arrernte", Region: "Central Australia", Country: "Australia", Speakers: 4500, Status: model.StatusSeverelyEndangered, Family: "Arandic", Tribal: true, Description: "Traditional language of the Alice Springs region"},
	{Code: "yol", Name: "Yolŋu Matha", NativeName: "Yolŋu Matha", Region: "Northern Australia", Country: "Australia", Speakers: 4000, Status: model.StatusSeverelyEndangered, Family: "Pama-Nyungan", Tribal: true, Description: "Language group of Arnhem Land Aboriginal peoples"},

	// Pacific islander languages
	{Code: "rap", Name: "Rapa Nui", NativeName: "Vananga Rapa Nui", Region: "Easter Island", Country: "Chile", Speakers: 5000, Status: model.StatusSeverelyEndangered, Family: "Polynesian", Tribal: true, Description: "Language of Easter Island with ancient Polynesian roots"},
	{Code: "mi", Name: "Māori", NativeName: "Te Reo Māori", Region: "New Zealand", Country: "New Zealand", Speakers: 185000, Status: model.StatusVulnerable, Family: "Polynesian", Tribal: true, Description: "Official language of New Zealand, undergoing revitalization"},

	// Asian indigenous languages
	{Code: "ain", Name: "Ainu", NativeName: "アイヌ・イタㇰ", Region: "Hokkaido", Country: "Japan", Speakers: 10, Status: model.StatusCriticallyEndangered, Family: "Language isolate", Tribal: true, Description: "Indigenous language of northern Japan, nearly extinct"},
	{Code: "hmn", Name: "Hmong", NativeName: "Hmoob", Region: "Southeast Asia", Country: "China", Speakers: 4000000, Status: model.StatusVulnerable, Family: "Hmong-Mien", Tribal: true, Description: "Language of the Hmong people across Southeast Asia"},
	{Code: "kar", Name: "Karen", NativeName: "ကညီကျိာ်", Region: "Myanmar/Thailand", Country: "Myanmar", Speakers: 1000000, Status: model.StatusVulnerable, Family: "Sino-Tibetan", Tribal: true, Description: "Language group of the Karen people"},

	// European indigenous languages
	{Code: "se", Name: "Sami", NativeName: "Sámegiella", Region: "Lapland", Country: "Norway", Speakers: 30000, Status: model.StatusSeverelyEndangered, Family: "Uralic", Tribal: true, Description: "Indigenous language of the Arctic Sami people"},
	{Code: "eu", Name: "Basque", NativeName: "Euskera", Region: "Basque Country", Country: "Spain", Speakers: 750000, Status: model.StatusVulnerable, Family: "Language isolate", Tribal: true, Description: "Ancient pre-Indo-European language isolate"},
}
