// Package vocab holds the fixed quiz vocabulary and the display names of the
// supported target languages.
package vocab

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

type Category struct {
	Name  string
	Words []string
}

var Categories = []Category{
	{"greetings", []string{"Hello", "Goodbye", "Good morning", "Good night", "Thank you", "Please", "Sorry", "Excuse me"}},
	{"numbers", []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten"}},
	{"colors", []string{"Red", "Blue", "Green", "Yellow", "Black", "White", "Orange", "Purple", "Pink", "Brown"}},
	{"food", []string{"Water", "Bread", "Rice", "Milk", "Coffee", "Tea", "Apple", "Banana", "Chicken", "Fish"}},
	{"family", []string{"Mother", "Father", "Sister", "Brother", "Grandmother", "Grandfather", "Daughter", "Son", "Family", "Friend"}},
	{"animals", []string{"Dog", "Cat", "Bird", "Fish", "Horse", "Cow", "Elephant", "Lion", "Tiger", "Monkey"}},
	{"body", []string{"Head", "Hand", "Foot", "Eye", "Ear", "Nose", "Mouth", "Heart", "Arm", "Leg"}},
	{"time", []string{"Today", "Tomorrow", "Yesterday", "Morning", "Afternoon", "Evening", "Night", "Day", "Week", "Month"}},
	{"places", []string{"Home", "School", "Work", "Hospital", "Restaurant", "Store", "Park", "City", "Country", "Street"}},
	{"common", []string{"Yes", "No", "Good", "Bad", "Big", "Small", "Hot", "Cold", "Happy", "Sad", "Love", "Hate", "Beautiful", "Ugly"}},
}

// words is the flattened pool. "Fish" is listed under two categories but must
// only be drawn once per quiz.
var words = lo.Uniq(lo.Flatten(lo.Map(Categories, func(c Category, _ int) []string {
	return c.Words
})))

// Words returns a copy of the flattened, de-duplicated vocabulary pool.
func Words() []string {
	return append([]string(nil), words...)
}

var languageNames = map[string]string{
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"hi":    "Hindi",
	"te":    "Telugu",
	"ta":    "Tamil",
	"ja":    "Japanese",
	"ko":    "Korean",
	"zh-cn": "Chinese",
	"ar":    "Arabic",
	"ru":    "Russian",
	"pt":    "Portuguese",
	"it":    "Italian",
	"nl":    "Dutch",
	"pl":    "Polish",
}

type Language struct {
	Code string
	Name string
}

// Languages lists the named languages ordered by name.
func Languages() []Language {
	langs := lo.MapToSlice(languageNames, func(code, name string) Language {
		return Language{Code: code, Name: name}
	})
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs
}

// LanguageName falls back to the upper-cased code for unknown languages.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}
