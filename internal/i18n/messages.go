// Package i18n resolves message codes to human strings for the request
// locale. The service runs in English and Welsh; unknown locales and unknown
// codes fall back to the configured default and the code itself.
package i18n

import (
	"golang.org/x/text/language"
)

var welsh = language.MustParse("cy")

var supported = []language.Tag{
	language.English,
	welsh,
}

var catalogs = map[string]map[string]string{
	"en": {
		"success.user.login":            "User authenticated successfully",
		"success.task.retrieved":        "Task retrieved successfully",
		"success.task.created":          "Task created successfully",
		"success.task.updated":          "Task updated successfully",
		"success.task.deleted":          "Task deleted successfully",
		"error.duplicate.title":         "A case with this title already exists",
		"error.duplicate.entity":        "Entity already exists",
		"error.case.not.found":          "Case not found",
		"error.user.not.found":          "User not found",
		"error.field.validation.failed": "Field validation failed",
		"error.failed.authentication":   "Invalid username or password",
		"error.token.expired":           "Authentication token has expired",
		"error.token.invalid":           "Authentication token is invalid",
		"error.authorization.denied":    "You are not authorized to perform this action",
		"error.general.issue":           "Request could not be completed",
		"error.unexpected":              "An unexpected error occurred",
		"id.required":                   "Id is required",
		"title.required":                "Title is required",
		"description.required":          "Description is required",
		"due.date.required":             "Due date is required",
		"username.required":             "Username is required",
		"password.required":             "Password is required",
		"field.invalid":                 "Value is invalid",
	},
	"cy": {
		"success.user.login":            "Dilyswyd y defnyddiwr yn llwyddiannus",
		"success.task.retrieved":        "Adalwyd y dasg yn llwyddiannus",
		"success.task.created":          "Crëwyd y dasg yn llwyddiannus",
		"success.task.updated":          "Diweddarwyd y dasg yn llwyddiannus",
		"success.task.deleted":          "Dilëwyd y dasg yn llwyddiannus",
		"error.duplicate.title":         "Mae achos gyda'r teitl hwn yn bodoli eisoes",
		"error.duplicate.entity":        "Mae'r endid yn bodoli eisoes",
		"error.case.not.found":          "Ni chanfuwyd yr achos",
		"error.user.not.found":          "Ni chanfuwyd y defnyddiwr",
		"error.field.validation.failed": "Methodd dilysu'r meysydd",
		"error.failed.authentication":   "Enw defnyddiwr neu gyfrinair annilys",
		"error.token.expired":           "Mae'r tocyn dilysu wedi dod i ben",
		"error.token.invalid":           "Mae'r tocyn dilysu yn annilys",
		"error.authorization.denied":    "Nid oes gennych awdurdod i gyflawni'r weithred hon",
		"error.general.issue":           "Nid oedd modd cwblhau'r cais",
		"error.unexpected":              "Digwyddodd gwall annisgwyl",
		"id.required":                   "Mae angen id",
		"title.required":                "Mae angen teitl",
		"description.required":          "Mae angen disgrifiad",
		"due.date.required":             "Mae angen dyddiad cau",
		"username.required":             "Mae angen enw defnyddiwr",
		"password.required":             "Mae angen cyfrinair",
		"field.invalid":                 "Mae'r gwerth yn annilys",
	},
}

// Messages resolves codes against the supported catalogs.
type Messages struct {
	matcher  language.Matcher
	fallback string
}

// New builds a resolver with the given default locale ("en" or "cy").
func New(defaultLocale string) *Messages {
	if _, ok := catalogs[defaultLocale]; !ok {
		defaultLocale = "en"
	}
	return &Messages{
		matcher:  language.NewMatcher(supported),
		fallback: defaultLocale,
	}
}

// Get returns the message for code in the closest supported locale.
func (m *Messages) Get(locale, code string) string {
	cat := catalogs[m.resolve(locale)]
	if msg, ok := cat[code]; ok {
		return msg
	}
	if msg, ok := catalogs["en"][code]; ok {
		return msg
	}
	return code
}

func (m *Messages) resolve(locale string) string {
	if locale == "" {
		return m.fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return m.fallback
	}
	_, idx, conf := m.matcher.Match(tag)
	if conf == language.No {
		return m.fallback
	}
	switch supported[idx] {
	case welsh:
		return "cy"
	default:
		return "en"
	}
}
