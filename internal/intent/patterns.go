package intent

import "regexp"

// Pattern is one scoring rule bound to an intent. A message is scored
// against every pattern independently; priority breaks ties between
// patterns whose regex/keyword hits otherwise score the same.
type Pattern struct {
	Intent   string
	Regexes  []*regexp.Regexp
	Keywords []string
	Priority int
}

// defaultPatterns returns the production pattern table. Declaration
// order matters: the earlier pattern wins an exact score tie.
func defaultPatterns() []Pattern {
	return []Pattern{
		{
			Intent: IntentGreeting,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^\s*(hi|hello|hey|yo|howdy)[\s!.,]*$`),
				regexp.MustCompile(`(?i)^\s*good\s+(morning|afternoon|evening)`),
			},
			Keywords: []string{"hello", "hey there", "greetings"},
			Priority: 10,
		},
		{
			Intent: IntentFarewell,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^\s*(bye|goodbye|see you|see ya|take care|good night)[\s!.]*$`),
			},
			Keywords: []string{"goodbye", "bye bye", "see you", "take care", "farewell", "gotta go"},
			Priority: 10,
		},
		{
			Intent: IntentThanks,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(thanks?|thank you|thx|ty)\b`),
			},
			Keywords: []string{"thank", "appreciate", "very helpful"},
			Priority: 10,
		},
		{
			Intent: IntentCapabilities,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)what (can|do) you (do|know|answer)`),
				regexp.MustCompile(`(?i)how (do|does) (you|this|the assistant) work`),
			},
			Keywords: []string{"what can you", "capabilities", "help me with", "what are you for"},
			Priority: 5,
		},
		{
			Intent: IntentAbout,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(who is|who's|whos) (max|he|this (guy|person)|the (developer|owner))`),
				regexp.MustCompile(`(?i)tell me about (yourself|max|him|the developer)`),
			},
			Keywords: []string{"about you", "who are you", "introduce", "background", "bio"},
			Priority: 5,
		},
		{
			Intent: IntentSkills,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(what|which) (skills|technologies|tech|languages|frameworks)`),
				regexp.MustCompile(`(?i)(tech stack|skill ?set)`),
			},
			Keywords: []string{"skills", "technologies", "stack", "tools", "frameworks", "languages"},
			Priority: 5,
		},
		{
			Intent: IntentSpecificSkill,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)how (good|experienced|proficient|comfortable) .* (at|with|in)\b`),
				regexp.MustCompile(`(?i)(know|familiar with|worked with) [a-z]`),
			},
			Keywords: []string{"experience with", "good at", "proficient", "familiar with", "how well"},
			Priority: 4,
		},
		{
			Intent: IntentProjects,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(show|list|see|view) .*(projects?|work|portfolio)`),
				regexp.MustCompile(`(?i)what (have you|has he) (built|made|worked on)`),
			},
			Keywords: []string{"projects", "portfolio", "built", "worked on", "showcase", "side project"},
			Priority: 5,
		},
		{
			Intent: IntentSpecificProject,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(what is|what's|tell me (more )?about|how (did|does)) .*(invotrek|devboard|fitpulse|portfolio)`),
			},
			Keywords: []string{"invotrek", "devboard", "fitpulse", "more about", "that project", "this project"},
			Priority: 8,
		},
		{
			Intent: IntentExperience,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(where|how long) .*(work|career)`),
				regexp.MustCompile(`(?i)(work|job) (history|experience)`),
			},
			Keywords: []string{"experience", "career", "employer", "company", "worked at", "current job"},
			Priority: 4,
		},
		{
			Intent: IntentEducation,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(where|what) .*(study|studied|degree|university|college)`),
			},
			Keywords: []string{"education", "degree", "university", "studied", "college", "school"},
			Priority: 5,
		},
		{
			Intent: IntentStartup,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(your|his) (startup|company|business)`),
				regexp.MustCompile(`(?i)(founded|founder of)`),
			},
			Keywords: []string{"startup", "founder", "founded", "own business", "entrepreneur"},
			Priority: 4,
		},
		{
			Intent: IntentAvailability,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(are you|is he) (available|open to|taking)`),
				regexp.MustCompile(`(?i)can i hire`),
			},
			Keywords: []string{"available", "availability", "hire", "hiring", "freelance", "open to work"},
			Priority: 5,
		},
		{
			Intent: IntentContact,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)how (can|do) i (contact|reach|message|email)`),
				regexp.MustCompile(`(?i)(get in touch|send .*message)`),
			},
			Keywords: []string{"contact", "email", "reach out", "get in touch", "linkedin"},
			Priority: 5,
		},
		{
			Intent: IntentPricing,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(how much|what) .*(charge|cost|rate)`),
				regexp.MustCompile(`(?i)(hourly|daily) rate`),
			},
			Keywords: []string{"pricing", "price", "rates", "budget", "how much", "charge"},
			Priority: 5,
		},
		{
			Intent: IntentOffTopic,
			Regexes: []*regexp.Regexp{
				regexp.MustCompile(`(?i)(what('s| is) the weather|tell me a joke|latest news)`),
			},
			Keywords: []string{"weather", "joke", "news", "lottery"},
			Priority: 2,
		},
	}
}
