package translit

// maxSequence is the longest Latin substring the greedy mapper will try.
const maxSequence = 3

// DefaultDictionary returns the curated word dictionary of common Marathi
// given names and surnames, keyed by lowercase romanization. Dictionary hits
// take precedence over the character mapper: the long tail of common roll
// names is exactly where greedy substitution gets spellings wrong.
func DefaultDictionary() map[string]string {
	return map[string]string{
		// surnames
		"badale":      "बधाले",
		"patil":       "पाटील",
		"pawar":       "पवार",
		"jadhav":      "जाधव",
		"shinde":      "शिंदे",
		"deshmukh":    "देशमुख",
		"kulkarni":    "कुलकर्णी",
		"joshi":       "जोशी",
		"chavan":      "चव्हाण",
		"more":        "मोरे",
		"bhosale":     "भोसले",
		"kale":        "काळे",
		"gaikwad":     "गायकवाड",
		"sawant":      "सावंत",
		"salunkhe":    "साळुंखे",
		"thorat":      "थोरात",
		"kadam":       "कदम",
		"mane":        "माने",
		"suryavanshi": "सूर्यवंशी",

		// given names
		"mangesh":     "मंगेश",
		"ramdas":      "रामदास",
		"suresh":      "सुरेश",
		"ramesh":      "रमेश",
		"ganesh":      "गणेश",
		"santosh":     "संतोष",
		"prakash":     "प्रकाश",
		"vijay":       "विजय",
		"sanjay":      "संजय",
		"ajay":        "अजय",
		"anil":        "अनिल",
		"sunil":       "सुनील",
		"ashok":       "अशोक",
		"dipak":       "दीपक",
		"rahul":       "राहुल",
		"sachin":      "सचिन",
		"amol":        "अमोल",
		"nitin":       "नितीन",
		"dnyaneshwar": "ज्ञानेश्वर",
		"dattatray":   "दत्तात्रय",
		"balasaheb":   "बाळासाहेब",
		"anita":       "अनिता",
		"sunita":      "सुनीता",
		"sangita":     "संगीता",
		"savita":      "सविता",
		"kavita":      "कविता",
		"archana":     "अर्चना",
		"vaishali":    "वैशाली",
		"manisha":     "मनीषा",
		"vandana":     "वंदना",
	}
}

// DefaultRomanTable returns the romanization table used by the greedy
// longest-match mapper. Keys are 1 to 3 Latin characters; the mapper tries
// the longest key first at each position.
func DefaultRomanTable() map[string]string {
	return map[string]string{
		// three-character sequences
		"chh": "छ",
		"ksh": "क्ष",
		"shr": "श्र",
		"dny": "ज्ञ",
		"aai": "आई",

		// two-character sequences
		"aa": "आ",
		"ee": "ई",
		"ii": "ई",
		"oo": "ऊ",
		"uu": "ऊ",
		"ai": "ऐ",
		"au": "औ",
		"kh": "ख",
		"gh": "घ",
		"ch": "च",
		"jh": "झ",
		"th": "थ",
		"dh": "ध",
		"ph": "फ",
		"bh": "भ",
		"sh": "श",

		// single characters
		"a": "अ",
		"b": "ब",
		"c": "क",
		"d": "द",
		"e": "ए",
		"f": "फ",
		"g": "ग",
		"h": "ह",
		"i": "इ",
		"j": "ज",
		"k": "क",
		"l": "ल",
		"m": "म",
		"n": "न",
		"o": "ओ",
		"p": "प",
		"q": "क",
		"r": "र",
		"s": "स",
		"t": "त",
		"u": "उ",
		"v": "व",
		"w": "व",
		"x": "क्स",
		"y": "य",
		"z": "झ",
	}
}
