package patientcase

import "strings"

// maleNames is the recognized male first-name set used to enforce the
// male-patient constraint on generated cases. It covers the common UK male
// names the generation prompt steers towards; a name outside this set fails
// validation rather than being coerced.
var maleNames = map[string]struct{}{
	"aaron": {}, "adam": {}, "adrian": {}, "alan": {}, "albert": {},
	"alexander": {}, "alex": {}, "alfie": {}, "andrew": {}, "anthony": {},
	"archie": {}, "arthur": {}, "barry": {}, "benjamin": {}, "ben": {},
	"bernard": {}, "brian": {}, "callum": {}, "carl": {}, "charles": {},
	"charlie": {}, "christopher": {}, "colin": {}, "connor": {}, "craig": {},
	"daniel": {}, "darren": {}, "david": {}, "dean": {}, "dennis": {},
	"derek": {}, "dominic": {}, "donald": {}, "douglas": {}, "duncan": {},
	"edward": {}, "eric": {}, "ethan": {}, "frank": {}, "frederick": {},
	"gary": {}, "gavin": {}, "geoffrey": {}, "george": {}, "gerald": {},
	"gordon": {}, "graham": {}, "gregory": {}, "harold": {}, "harry": {},
	"henry": {}, "howard": {}, "hugh": {}, "ian": {}, "jack": {},
	"jacob": {}, "james": {}, "jason": {}, "jeffrey": {}, "jeremy": {},
	"joe": {}, "john": {}, "jonathan": {}, "joseph": {}, "joshua": {},
	"julian": {}, "justin": {}, "keith": {}, "kenneth": {}, "kevin": {},
	"kieran": {}, "kyle": {}, "lawrence": {}, "lee": {}, "leonard": {},
	"lewis": {}, "liam": {}, "luke": {}, "malcolm": {}, "marcus": {},
	"mark": {}, "martin": {}, "matthew": {}, "michael": {}, "nathan": {},
	"neil": {}, "nicholas": {}, "nigel": {}, "norman": {}, "oliver": {},
	"oscar": {}, "owen": {}, "patrick": {}, "paul": {}, "peter": {},
	"philip": {}, "raymond": {}, "reginald": {}, "richard": {}, "robert": {},
	"roger": {}, "ronald": {}, "rory": {}, "russell": {}, "ryan": {},
	"samuel": {}, "sam": {}, "scott": {}, "sean": {}, "shaun": {},
	"simon": {}, "stanley": {}, "stephen": {}, "steven": {}, "stuart": {},
	"terence": {}, "thomas": {}, "timothy": {}, "tom": {}, "trevor": {},
	"victor": {}, "vincent": {}, "walter": {}, "warren": {}, "wayne": {},
	"william": {},
}

// IsMaleName reports whether the first token of name is in the recognized
// male-name set. Comparison is case-insensitive.
func IsMaleName(name string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(name), " ")
	_, ok := maleNames[strings.ToLower(first)]
	return ok
}
