package classify

// defaultEntries is the built-in dictionary. Declaration order is the
// tie-break order of the scorer: politics wins a tie against sports, and so on.
// Keywords shorter than three characters are kept out on purpose; the scorer
// would ignore them anyway.
var defaultEntries = []Entry{
	{Category: "politics", Keywords: []string{
		// english
		"government", "election", "elections", "minister", "parliament", "assembly",
		"congress", "opposition", "politics", "political", "democracy", "cabinet",
		"campaign", "ballot", "senate", "legislature", "constituency",
		// telugu
		"ప్రభుత్వం", "ఎన్నికలు", "ఎన్నికల", "మంత్రి", "ముఖ్యమంత్రి", "అసెంబ్లీ",
		"రాజకీయ", "పార్టీ", "ప్రతిపక్ష", "శాసనసభ", "పార్లమెంట్",
		// hindi / marathi
		"सरकार", "चुनाव", "मंत्री", "मुख्यमंत्री", "संसद", "विधानसभा", "राजनीति",
		"राजनीतिक", "पार्टी", "विपक्ष", "प्रधानमंत्री", "मतदान", "निवडणूक", "राजकारण",
		// tamil
		"அரசு", "தேர்தல்", "அமைச்சர்", "முதல்வர்", "சட்டமன்றம்", "நாடாளுமன்றம்",
		"அரசியல்", "கட்சி", "எதிர்க்கட்சி",
		// bengali
		"সরকার", "নির্বাচন", "মন্ত্রী", "মুখ্যমন্ত্রী", "সংসদ", "বিধানসভা", "রাজনীতি",
		"রাজনৈতিক", "বিরোধী",
		// gujarati
		"સરકાર", "ચૂંટણી", "મંત્રી", "મુખ્યમંત્રી", "સંસદ", "વિધાનસભા", "રાજકારણ",
		"રાજકીય", "વિપક્ષ",
		// kannada
		"ಸರ್ಕಾರ", "ಚುನಾವಣೆ", "ಸಚಿವ", "ಮುಖ್ಯಮಂತ್ರಿ", "ವಿಧಾನಸಭೆ", "ಸಂಸತ್ತು", "ರಾಜಕೀಯ",
		"ಪಕ್ಷ", "ವಿರೋಧ",
	}},
	{Category: "sports", Keywords: []string{
		"cricket", "football", "soccer", "tournament", "matches", "stadium", "olympics",
		"athlete", "championship", "tennis", "hockey", "wicket", "innings", "league",
		"medals", "coach", "player", "players", "batsman", "bowler",
		"క్రికెట్", "మ్యాచ్", "టోర్నమెంట్", "స్టేడియం", "క్రీడలు", "క్రీడా", "ఆటగాడు",
		"ఆటగాళ్లు", "ఫుట్‌బాల్", "ప్రపంచకప్", "వికెట్", "పరుగులు", "సెంచరీ",
		"क्रिकेट", "मैच", "टूर्नामेंट", "स्टेडियम", "खिलाड़ी", "फुटबॉल", "विश्वकप",
		"विकेट", "शतक", "ओलंपिक", "क्रीडा", "खेळाडू",
		"கிரிக்கெட்", "போட்டி", "விளையாட்டு", "வீரர்", "கால்பந்து", "மைதானம்",
		"உலகக்கோப்பை", "விக்கெட்",
		"ক্রিকেট", "ম্যাচ", "খেলোয়াড়", "ফুটবল", "স্টেডিয়াম", "বিশ্বকাপ", "উইকেট",
		"টুর্নামেন্ট",
		"ક્રિકેટ", "મેચ", "ખેલાડી", "ફૂટબોલ", "સ્ટેડિયમ", "વિશ્વકપ", "વિકેટ",
		"ಕ್ರಿಕೆಟ್", "ಪಂದ್ಯ", "ಕ್ರೀಡೆ", "ಆಟಗಾರ", "ಫುಟ್ಬಾಲ್", "ಕ್ರೀಡಾಂಗಣ", "ವಿಶ್ವಕಪ್", "ವಿಕೆಟ್",
	}},
	{Category: "crime", Keywords: []string{
		"police", "murder", "arrested", "robbery", "thefts", "crimes", "criminal",
		"accused", "investigation", "fraud", "kidnapping", "assault", "suspect",
		"custody", "homicide",
		"పోలీసులు", "పోలీస్", "హత్య", "అరెస్ట్", "దొంగతనం", "నేరం", "నిందితుడు",
		"కేసు", "మోసం", "కిడ్నాప్", "దర్యాప్తు",
		"पुलिस", "हत्या", "गिरफ्तार", "चोरी", "अपराध", "आरोपी", "धोखाधड़ी", "अपहरण",
		"पोलीस", "गुन्हा",
		"காவல்துறை", "போலீஸ்", "கொலை", "கைது", "திருட்டு", "குற்றம்", "குற்றவாளி",
		"மோசடி", "விசாரணை",
		"পুলিশ", "হত্যা", "গ্রেপ্তার", "চুরি", "অপরাধ", "অভিযুক্ত", "প্রতারণা", "তদন্ত",
		"પોલીસ", "હત્યા", "ધરપકડ", "ચોરી", "ગુનો", "આરોપી", "છેતરપિંડી",
		"ಪೊಲೀಸ್", "ಕೊಲೆ", "ಬಂಧನ", "ಕಳ್ಳತನ", "ಅಪರಾಧ", "ಆರೋಪಿ", "ವಂಚನೆ", "ತನಿಖೆ",
	}},
	{Category: "business", Keywords: []string{
		"market", "stocks", "shares", "economy", "economic", "investment", "investors",
		"company", "revenue", "profit", "inflation", "banking", "startup", "sensex",
		"nifty", "rupee", "budget", "exports",
		"మార్కెట్", "వ్యాపారం", "ఆర్థిక", "పెట్టుబడి", "కంపెనీ", "షేర్లు", "బ్యాంకు",
		"లాభం", "ద్రవ్యోల్బణం", "బడ్జెట్",
		"बाजार", "व्यापार", "अर्थव्यवस्था", "निवेश", "कंपनी", "शेयर", "बैंक", "मुनाफा",
		"महंगाई", "बजट", "व्यवसाय", "गुंतवणूक", "अर्थसंकल्प",
		"சந்தை", "வணிகம்", "பொருளாதாரம்", "முதலீடு", "நிறுவனம்", "பங்குச்சந்தை",
		"வங்கி", "லாபம்", "பட்ஜெட்",
		"বাজার", "ব্যবসা", "অর্থনীতি", "বিনিয়োগ", "কোম্পানি", "শেয়ার", "ব্যাংক",
		"মুনাফা", "বাজেট",
		"બજાર", "વેપાર", "અર્થતંત્ર", "રોકાણ", "કંપની", "શેર", "બેંક", "નફો", "બજેટ",
		"ಮಾರುಕಟ್ಟೆ", "ವ್ಯಾಪಾರ", "ಆರ್ಥಿಕ", "ಹೂಡಿಕೆ", "ಕಂಪನಿ", "ಷೇರು", "ಬ್ಯಾಂಕ್", "ಲಾಭ", "ಬಜೆಟ್",
	}},
	{Category: "technology", Keywords: []string{
		"technology", "software", "smartphone", "internet", "digital", "artificial",
		"computer", "cybersecurity", "gadget", "satellite", "robotics",
		"semiconductor", "telecom", "mobile", "hackers",
		"సాంకేతిక", "టెక్నాలజీ", "స్మార్ట్‌ఫోన్", "ఇంటర్నెట్", "డిజిటల్", "సాఫ్ట్‌వేర్",
		"ఉపగ్రహం", "మొబైల్",
		"तकनीक", "प्रौद्योगिकी", "स्मार्टफोन", "इंटरनेट", "डिजिटल", "सॉफ्टवेयर",
		"उपग्रह", "मोबाइल", "साइबर", "तंत्रज्ञान",
		"தொழில்நுட்பம்", "ஸ்மார்ட்போன்", "இணையம்", "டிஜிட்டல்", "மென்பொருள்",
		"செயற்கைக்கோள்", "மொபைல்",
		"প্রযুক্তি", "স্মার্টফোন", "ইন্টারনেট", "ডিজিটাল", "সফটওয়্যার", "উপগ্রহ", "মোবাইল",
		"ટેકનોલોજી", "સ્માર્ટફોન", "ઇન્ટરનેટ", "ડિજિટલ", "સોફ્ટવેર", "ઉપગ્રહ", "મોબાઇલ",
		"ತಂತ್ರಜ್ಞಾನ", "ಸ್ಮಾರ್ಟ್‌ಫೋನ್", "ಇಂಟರ್ನೆಟ್", "ಡಿಜಿಟಲ್", "ಸಾಫ್ಟ್‌ವೇರ್", "ಉಪಗ್ರಹ", "ಮೊಬೈಲ್",
	}},
	{Category: "entertainment", Keywords: []string{
		"movie", "cinema", "actor", "actress", "director", "bollywood", "tollywood",
		"music", "album", "trailer", "celebrity", "television",
		"సినిమా", "చిత్రం", "హీరోయిన్", "నటుడు", "దర్శకుడు", "ట్రైలర్", "వినోదం",
		"फिल्म", "सिनेमा", "अभिनेता", "अभिनेत्री", "निर्देशक", "ट्रेलर", "मनोरंजन",
		"बॉलीवुड", "चित्रपट",
		"திரைப்படம்", "சினிமா", "நடிகர்", "நடிகை", "இயக்குநர்", "டிரெய்லர்", "பாடல்",
		"பொழுதுபோக்கு",
		"সিনেমা", "চলচ্চিত্র", "অভিনেতা", "অভিনেত্রী", "পরিচালক", "ট্রেলার", "বিনোদন",
		"ફિલ્મ", "સિનેમા", "અભિનેતા", "અભિનેત્રી", "દિગ્દર્શક", "ટ્રેલર", "મનોરંજન",
		"ಸಿನಿಮಾ", "ಚಿತ್ರ", "ನಿರ್ದೇಶಕ", "ಟ್ರೈಲರ್", "ಮನರಂಜನೆ",
	}},
	{Category: "health", Keywords: []string{
		"health", "hospital", "doctor", "doctors", "disease", "vaccine", "covid",
		"virus", "medical", "medicine", "patients", "treatment", "cancer", "diabetes",
		"ఆరోగ్యం", "ఆసుపత్రి", "వైద్యులు", "వ్యాధి", "వ్యాక్సిన్", "కరోనా", "చికిత్స",
		"రోగులు",
		"स्वास्थ्य", "अस्पताल", "डॉक्टर", "बीमारी", "वैक्सीन", "कोरोना", "इलाज",
		"मरीज", "आरोग्य", "रुग्णालय",
		"சுகாதாரம்", "மருத்துவமனை", "மருத்துவர்", "தடுப்பூசி", "கொரோனா", "சிகிச்சை",
		"நோயாளி",
		"স্বাস্থ্য", "হাসপাতাল", "চিকিৎসক", "ডাক্তার", "করোনা", "চিকিৎসা", "রোগী",
		"આરોગ્ય", "હોસ્પિટલ", "ડોક્ટર", "કોરોના", "સારવાર", "દર્દી",
		"ಆರೋಗ್ಯ", "ಆಸ್ಪತ್ರೆ", "ವೈದ್ಯ", "ಲಸಿಕೆ", "ಕೊರೊನಾ", "ಚಿಕಿತ್ಸೆ", "ರೋಗಿ",
	}},
	{Category: "education", Keywords: []string{
		"education", "school", "schools", "university", "college", "students",
		"examination", "teacher", "teachers", "admission", "scholarship", "syllabus",
		"విద్య", "పాఠశాల", "విశ్వవిద్యాలయం", "కళాశాల", "విద్యార్థులు", "పరీక్ష",
		"ఉపాధ్యాయులు",
		"शिक्षा", "स्कूल", "विश्वविद्यालय", "कॉलेज", "छात्र", "परीक्षा", "शिक्षक",
		"विद्यापीठ", "विद्यार्थी", "शाळा",
		"கல்வி", "பள்ளி", "பல்கலைக்கழகம்", "கல்லூரி", "மாணவர்", "தேர்வு", "ஆசிரியர்",
		"শিক্ষা", "স্কুল", "বিশ্ববিদ্যালয়", "কলেজ", "ছাত্র", "পরীক্ষা", "শিক্ষক",
		"શિક્ષણ", "શાળા", "યુનિવર્સિટી", "કોલેજ", "વિદ્યાર્થી", "પરીક્ષા", "શિક્ષક",
		"ಶಿಕ್ಷಣ", "ಶಾಲೆ", "ವಿಶ್ವವಿದ್ಯಾಲಯ", "ಕಾಲೇಜು", "ವಿದ್ಯಾರ್ಥಿ", "ಪರೀಕ್ಷೆ", "ಶಿಕ್ಷಕ",
	}},
	{Category: "international", Keywords: []string{
		"international", "foreign", "diplomatic", "embassy", "summit", "treaty",
		"bilateral", "refugees", "ceasefire", "sanctions",
		"అంతర్జాతీయ", "విదేశీ", "రాయబార", "ఐక్యరాజ్యసమితి", "సరిహద్దు", "యుద్ధం",
		"ఒప్పందం",
		"अंतरराष्ट्रीय", "विदेश", "दूतावास", "युद्ध", "समझौता", "आंतरराष्ट्रीय",
		"சர்வதேச", "வெளிநாட்டு", "தூதரகம்", "எல்லை", "ஒப்பந்தம்",
		"আন্তর্জাতিক", "বিদেশ", "দূতাবাস", "জাতিসংঘ", "সীমান্ত", "যুদ্ধ", "চুক্তি",
		"આંતરરાષ્ટ્રીય", "વિદેશ", "દૂતાવાસ", "સરહદ", "યુદ્ધ", "કરાર",
		"ಅಂತಾರಾಷ್ಟ್ರೀಯ", "ವಿದೇಶ", "ರಾಯಭಾರ", "ಯುದ್ಧ", "ಒಪ್ಪಂದ",
	}},
}
