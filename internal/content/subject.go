package content

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Subject is a middle-school subject the learner can pick.
type Subject struct {
	// Slug is the stable identifier used on the command line.
	Slug string

	// Label is the Indonesian subject name, also used in prompts.
	Label       string
	Icon        string
	Description string

	// Difficulty is a 1-3 star rating shown on the subject card.
	Difficulty int
	Popular    bool
}

var (
	Math = Subject{
		Slug:        "math",
		Label:       "Matematika",
		Icon:        "📐",
		Description: "Taklukkan angka dan rumus dengan cara yang paling seru!",
		Difficulty:  3,
		Popular:     true,
	}
	Science = Subject{
		Slug:        "science",
		Label:       "IPA",
		Icon:        "🔬",
		Description: "Jadilah ilmuwan muda dan temukan rahasia alam semesta.",
		Difficulty:  2,
	}
	English = Subject{
		Slug:        "english",
		Label:       "Bahasa Inggris",
		Icon:        "🇬🇧",
		Description: "Ngobrol bahasa Inggris jadi makin pede dan lancar.",
		Difficulty:  1,
		Popular:     true,
	}
	History = Subject{
		Slug:        "history",
		Label:       "IPS/Sejarah",
		Icon:        "🏺",
		Description: "Jelajahi waktu dan pelajari kisah hebat pahlawan kita.",
		Difficulty:  2,
	}
)

// Subjects returns the catalogue in display order.
func Subjects() []Subject {
	return []Subject{Math, Science, English, History}
}

// SubjectBySlug looks a subject up by slug or label, ignoring case.
func SubjectBySlug(s string) (Subject, error) {
	for _, subj := range Subjects() {
		if strings.EqualFold(s, subj.Slug) || strings.EqualFold(s, subj.Label) {
			return subj, nil
		}
	}
	return Subject{}, fmt.Errorf("unknown subject %q (want one of: %s)", s, strings.Join(Slugs(), ", "))
}

// Slugs lists the slugs of all subjects.
func Slugs() []string {
	return lo.Map(Subjects(), func(s Subject, _ int) string { return s.Slug })
}

func (s Subject) String() string {
	return s.Label
}
