package datetz

import "golang.org/x/text/language"

// monthTables holds capitalized month names per supported locale. The
// order of entries defines the matcher below; English first so it wins
// when matching is inconclusive.
var monthTables = []struct {
	tag   language.Tag
	names [12]string
}{
	{language.English, [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}},
	{language.German, [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	}},
	{language.French, [12]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}},
	{language.Italian, [12]string{
		"Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
		"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
	}},
	{language.Spanish, [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}},
	{language.Portuguese, [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}},
	{language.Dutch, [12]string{
		"Januari", "Februari", "Maart", "April", "Mei", "Juni",
		"Juli", "Augustus", "September", "Oktober", "November", "December",
	}},
}

var monthMatcher = language.NewMatcher(func() []language.Tag {
	tags := make([]language.Tag, len(monthTables))
	for i, t := range monthTables {
		tags[i] = t.tag
	}
	return tags
}())

// monthName returns the capitalized name of month (1-12) in the given
// locale, falling back to English when the locale is empty, fails to
// parse, or has no table.
func monthName(month int, locale string) string {
	if locale == "" {
		return monthTables[0].names[month-1]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return monthTables[0].names[month-1]
	}
	_, idx, conf := monthMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return monthTables[idx].names[month-1]
}
