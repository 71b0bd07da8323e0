package views

import (
	"golang.org/x/text/language"

	"msgdesk/internal/directory"
	"msgdesk/internal/domain"
)

// Labels holds the user-facing text of the admin view in one language
type Labels struct {
	Messages       string
	Detail         string
	Name           string
	Email          string
	Date           string
	Message        string
	Search         string
	EmptyDetail    string
	NoResults      string
	HiddenByFilter string
	Stats          string
	Total          string
	Status         map[domain.Status]string
	Filter         map[directory.StatusFilter]string
	StatsStatus    map[domain.Status]string
}

var supportedLanguages = []language.Tag{
	language.English, // first tag is the fallback
	language.French,
}

var matcher = language.NewMatcher(supportedLanguages)

var catalog = []Labels{
	{
		Messages:       "Messages",
		Detail:         "Message detail",
		Name:           "Name",
		Email:          "Email",
		Date:           "Date",
		Message:        "Message",
		Search:         "Search",
		EmptyDetail:    "Select a message to see its details",
		NoResults:      "No messages match",
		HiddenByFilter: "hidden by the current search or filter",
		Stats:          "Statistics",
		Total:          "Total messages",
		Status: map[domain.Status]string{
			domain.StatusNew:     "New",
			domain.StatusRead:    "Read",
			domain.StatusReplied: "Replied",
		},
		Filter: map[directory.StatusFilter]string{
			directory.FilterAll:     "All statuses",
			directory.FilterNew:     "New",
			directory.FilterRead:    "Read",
			directory.FilterReplied: "Replied",
		},
		StatsStatus: map[domain.Status]string{
			domain.StatusNew:     "New",
			domain.StatusRead:    "Read",
			domain.StatusReplied: "Replied",
		},
	},
	{
		Messages:       "Messages reçus",
		Detail:         "Détail du message",
		Name:           "Nom",
		Email:          "Email",
		Date:           "Date",
		Message:        "Message",
		Search:         "Rechercher",
		EmptyDetail:    "Sélectionnez un message pour voir les détails",
		NoResults:      "Aucun message ne correspond",
		HiddenByFilter: "masqué par la recherche ou le filtre",
		Stats:          "Statistiques",
		Total:          "Messages totaux",
		Status: map[domain.Status]string{
			domain.StatusNew:     "Nouveau",
			domain.StatusRead:    "Lu",
			domain.StatusReplied: "Répondu",
		},
		Filter: map[directory.StatusFilter]string{
			directory.FilterAll:     "Tous les statuts",
			directory.FilterNew:     "Nouveaux",
			directory.FilterRead:    "Lus",
			directory.FilterReplied: "Répondus",
		},
		StatsStatus: map[domain.Status]string{
			domain.StatusNew:     "Nouveaux",
			domain.StatusRead:    "Lus",
			domain.StatusReplied: "Répondus",
		},
	},
}

// LabelsFor returns the closest supported labels for a BCP 47 tag.
// Unknown or malformed tags get English.
func LabelsFor(lang string) Labels {
	tag, err := language.Parse(lang)
	if err != nil {
		return catalog[0]
	}
	_, index, _ := matcher.Match(tag)
	return catalog[index]
}

// StatusLabel returns the label for a status
func (l Labels) StatusLabel(status domain.Status) string {
	if s, ok := l.Status[status]; ok {
		return s
	}
	return status.String()
}

// FilterLabel returns the label for a status filter
func (l Labels) FilterLabel(filter directory.StatusFilter) string {
	if s, ok := l.Filter[filter]; ok {
		return s
	}
	return filter.String()
}
