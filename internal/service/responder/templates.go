package responder

import "github.com/contra-ai/contra/backend/internal/analysis/intent"

// Template holds the fixed phrases of one persona.
type Template struct {
	Price  string
	Bad    string
	Prefix string
	Suffix string
	// Localized replaces the phrases above when the detected language has an entry.
	Localized map[intent.Language]Localized
}

// Localized 是某个语言下的替代回复。QA 为包含一个 %s 的格式串。
type Localized struct {
	Price   string
	Bad     string
	Default string
	QA      string
}

func (l Localized) answersIntents() bool {
	return l.Price != "" || l.Bad != "" || l.Default != ""
}

// rule 将人设标签与模板绑定，标签按子串匹配。
type rule struct {
	Tag      string
	Template Template
}

// UniversalPersona is the label used when no persona tag matches.
const UniversalPersona = "Universal"

// personaRules 的顺序即匹配优先级，不可随意调整。
var personaRules = []rule{
	{
		Tag: "Japanese",
		Template: Template{
			Price:  "Regarding the investment required, we would be honored to discuss a structure that brings mutual prosperity.",
			Bad:    "We deeply apologize if our approach did not meet your expectations. We will improve immediately.",
			Prefix: "Reflecting on your query: ",
			Suffix: " I hope this perspective is helpful.",
		},
	},
	{
		Tag: "NYC",
		Template: Template{
			Price:  "The bottom line is about $50k. Good ROI though, trust me.",
			Bad:    "Alright, what’s the issue? Let’s fix it and move on. Time is money.",
			Prefix: "Here's the deal: ",
			Suffix: " Simple as that.",
		},
	},
	{
		Tag: "Yoruba",
		Template: Template{
			Price:  "A good soup requires money to cook. Value is not just in gold, but in lasting satisfaction.",
			Bad:    "The river that forgets its source will dry up. Let us find the root of this disagreement together.",
			Prefix: "The elders say: ",
			Suffix: " Wisdom is a journey.",
		},
	},
	{
		Tag: "Aristocratic",
		Template: Template{
			Price:  "One must consider the value proposition, which is, naturally, quite substantial.",
			Bad:    "Oh dear. That is rather unfortunate. We shall endeavor to rectify this.",
			Prefix: "One might opine that ",
			Suffix: " Indeed.",
		},
	},
	{
		Tag: "Bangalore",
		Template: Template{
			Price:  "Current pricing is very competitive, sir/ma’am. Best value for money.",
			Bad:    "Sorry for the inconvenience. Kindly tell me the issue, I will do the needful.",
			Prefix: "Basically, ",
			Suffix: " Please revert if you have doubts.",
		},
	},
	{
		Tag: "German",
		Template: Template{
			Price:  "The cost is calculated precisely based on required resources. No hidden fees.",
			Bad:    "Error acknowledged. Corrective measures are being initiated.",
			Prefix: "Analysis: ",
			Suffix: " Logic dictates this.",
		},
	},
	{
		Tag: "Brazilian",
		Template: Template{
			Price:  "Don’t worry about the cost now, let’s see the value! It’s gonna be worth it!",
			Bad:    "Relax, my friend! We can fix this, no stress.",
			Prefix: "Look, ",
			Suffix: " access it!",
		},
	},
	{
		Tag: "French",
		Template: Template{
			Price:  "Quality has a price. If you want mediocrity, look elsewhere.",
			Bad:    "I disagree with your assessment, but I will listen to your reasoning.",
			Prefix: "From a certain point of view, ",
			Suffix: " But c'est la vie.",
		},
	},
	{
		Tag: "Gen Z",
		Template: Template{
			Price:  "It’s kinda pricey but honestly? Worth it.",
			Bad:    "Oof. Big yikes. My bad bestie.",
			Prefix: "So basically, ",
			Suffix: " no cap.",
		},
	},
	{
		Tag: "Saudi",
		Template: Template{
			Price:  "Do not worry about the cost (filus) between friends. We will find a fair arrangement, Inshallah.",
			Bad:    "We seek your forgiveness (samahni). Your satisfaction is our duty.",
			Prefix: "In our view, ",
			Suffix: " Inshallah it is clear.",
			Localized: map[intent.Language]Localized{
				intent.Arabic: {
					Price:   "لَا تَشْغَلْ بَالَكَ بِالتَّكْلِفَةِ بَيْنَ الْأَصْدِقَاءِ. سَنَجِدُ حَلًّا مُنَاسِبًا بِإِذْنِ اللَّهِ.",
					Bad:     "نَسْتَسْمِحُكَ عُذْرًا. رِضَاكُمْ هُوَ غَايَتُنَا وَوَاجِبُنَا.",
					Default: "عَلَى رَأْسِي. سَيَتِمُّ تَنْفِيذُ طَلَبِكُمْ عَلَى الْفَوْرِ.",
					QA:      "بناءً على طلبك: %s - هذا أمر يستحق النظر.",
				},
			},
		},
	},
	{
		Tag: "Australian",
		Template: Template{
			Price:  "Bit steep, but you get what you pay for, aye?",
			Bad:    "Yeah, nah, that’s no good. We’ll sort it out mate.",
			Prefix: "Reckon that ",
			Suffix: " hope that helps mate.",
		},
	},
}

var universalTemplate = Template{
	Prefix: "Response: ",
	Suffix: ".",
	Localized: map[intent.Language]Localized{
		intent.Spanish: {QA: "Respuesta simulada para: %s"},
		intent.French:  {QA: "Réponse simulée pour: %s"},
		intent.German:  {QA: "Simulierte Antwort für: %s"},
		intent.Arabic:  {QA: "رد محاكي لـ: %s"},
	},
}

// searchReplies 为每种语言提供一个包含 %s 的检索提示。
var searchReplies = map[intent.Language]string{
	intent.Spanish: "Buscando en la base de datos cultural sobre '%s'... [Simulación: 3 resultados encontrados]",
	intent.French:  "Recherche dans la base de données culturelle pour '%s'... [Simulation: 3 résultats trouvés]",
	intent.German:  "Suche in der Kulturdatenbank nach '%s'... [Simulation: 3 Ergebnisse gefunden]",
	intent.Arabic:  "جارٍ البحث في قاعدة البيانات الثقافية عن '%s'... [محاكاة: تم العثور على 3 نتائج]",
	intent.English: "Searching cultural knowledge base for '%s'... \n\n[Displaying top 3 cultural insights...]",
}

var universalPriceReplies = map[intent.Language]string{
	intent.Spanish: "El modelo de precios estándar se aplica según los niveles de uso.",
	intent.French:  "Le modèle de tarification standard s'applique en fonction des niveaux d'utilisation.",
	intent.German:  "Das Standardpreismodell gilt je nach Nutzungsstufe.",
	intent.Arabic:  "يتم تطبيق نموذج التسعير القياسي بناءً على مستويات الاستخدام.",
	intent.English: "The standard pricing model applies based on usage tiers.",
}

var universalBadReplies = map[intent.Language]string{
	intent.Spanish: "Agradezco sus comentarios. Por favor especifique el problema.",
	intent.French:  "Je prends note de vos commentaires. Veuillez préciser le problème.",
	intent.German:  "Ich nehme Ihr Feedback zur Kenntnis. Bitte geben Sie das Problem an.",
	intent.Arabic:  "نحن نقدر ملاحظاتكم. يرجى توضيح المشكلة.",
	intent.English: "I acknowledge your feedback. Please specify the issue.",
}

// localizedOrEnglish falls back to the English entry for ar_lat and unknown tags.
func localizedOrEnglish(table map[intent.Language]string, lang intent.Language) string {
	if text, ok := table[lang]; ok {
		return text
	}
	return table[intent.English]
}
