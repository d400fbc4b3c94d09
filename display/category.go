package display

import (
	"unicode"
	"unicode/utf8"

	"devhub/models"
)

const defaultStyle = "bg-gray-600/20 text-gray-300 border-gray-500/30"

var categoryStyles = map[models.EventCategory]string{
	models.CategoryWorkshop:   "bg-blue-600/20 text-blue-300 border-blue-500/30",
	models.CategoryNetworking: "bg-purple-600/20 text-purple-300 border-purple-500/30",
	models.CategoryHackathon:  "bg-orange-600/20 text-orange-300 border-orange-500/30",
	models.CategorySeminar:    "bg-green-600/20 text-green-300 border-green-500/30",
}

var categoryIcons = map[models.EventCategory]string{
	models.CategoryWorkshop:   "code",
	models.CategoryNetworking: "users",
	models.CategoryHackathon:  "zap",
	models.CategorySeminar:    "graduation-cap",
}

// CategoryStyle maps a category to its badge style token. Unknown categories
// get the neutral style.
func CategoryStyle(c models.EventCategory) string {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return defaultStyle
}

func CategoryIcon(c models.EventCategory) string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "calendar"
}

// CategoryLabel upper-cases the first letter of the category.
func CategoryLabel(c models.EventCategory) string {
	s := string(c)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func IsOnline(location string) bool {
	return location == models.OnlineLocation
}
