package lexicon

var languageMatcher = newListMatcher([]string{
	"English", "Malay", "Bahasa Malaysia", "Bahasa Melayu", "Bahasa Indonesia", "Mandarin",
	"Chinese", "Cantonese", "Hokkien", "Tamil", "Hindi", "Urdu", "Bengali", "Japanese",
	"Korean", "French", "German", "Spanish", "Portuguese", "Italian", "Arabic", "Russian",
	"Thai", "Vietnamese", "Tagalog", "Dutch", "Turkish",
}, map[string]string{
	"bm":     "Bahasa Malaysia",
	"bahasa": "Bahasa Malaysia",
})

// Languages returns the spoken-language matcher.
func Languages() *Matcher {
	return languageMatcher
}

func newListMatcher(names []string, aliases map[string]string, caseSensitive ...string) *Matcher {
	all := make(map[string]string, len(names)+len(aliases))
	for _, n := range names {
		all[n] = n
	}
	for a, c := range aliases {
		all[a] = c
	}
	return NewMatcher(all, caseSensitive...)
}
