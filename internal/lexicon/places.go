package lexicon

var placeMatcher = newListMatcher([]string{
	// Malaysia
	"Kuala Lumpur", "Petaling Jaya", "Shah Alam", "Subang Jaya", "Cyberjaya", "Putrajaya",
	"Klang", "Puchong", "Selangor", "Penang", "George Town", "Johor", "Johor Bahru", "Ipoh",
	"Perak", "Melaka", "Malacca", "Negeri Sembilan", "Seremban", "Pahang", "Kuantan",
	"Kedah", "Kelantan", "Kota Bharu", "Terengganu", "Sabah", "Kota Kinabalu", "Sarawak",
	"Kuching", "Miri", "Labuan", "Malaysia",
	// Region
	"Singapore", "Jakarta", "Indonesia", "Bangkok", "Thailand", "Manila", "Philippines",
	"Ho Chi Minh City", "Hanoi", "Vietnam", "Hong Kong", "Taipei", "Taiwan", "Shanghai",
	"Beijing", "Shenzhen", "China", "Tokyo", "Japan", "Seoul", "South Korea",
	"Bangalore", "Bengaluru", "Mumbai", "New Delhi", "Delhi", "Chennai", "Hyderabad", "India",
	"Dubai", "United Arab Emirates", "Sydney", "Melbourne", "Perth", "Australia", "Auckland",
	"New Zealand",
	// Elsewhere
	"London", "Manchester", "United Kingdom", "Dublin", "Ireland", "Berlin", "Munich", "Germany",
	"Paris", "France", "Amsterdam", "Netherlands", "New York", "San Francisco", "Seattle",
	"Boston", "Chicago", "Los Angeles", "United States", "Toronto", "Vancouver", "Canada",
}, map[string]string{
	"kl":           "Kuala Lumpur",
	"pj":           "Petaling Jaya",
	"jb":           "Johor Bahru",
	"usa":          "United States",
	"us":           "United States",
	"uk":           "United Kingdom",
	"uae":          "United Arab Emirates",
	"nyc":          "New York",
	"sf":           "San Francisco",
	"pulau pinang": "Penang",
}, "us", "kl", "pj", "jb", "sf", "uk")

// Places returns the location gazetteer matcher.
func Places() *Matcher {
	return placeMatcher
}
