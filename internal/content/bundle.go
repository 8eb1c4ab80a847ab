package content

import (
	"fmt"
	"sort"
	"strings"
)

// Hero holds the top-of-page copy.
type Hero struct {
	Title    string
	Subtitle string
	// Description may contain "\n"; each line renders separately.
	Description string
	GitHubLabel string
	DocsLabel   string
}

// DescriptionLines splits the description on line breaks.
func (h Hero) DescriptionLines() []string {
	return strings.Split(h.Description, "\n")
}

// Stats holds the four short stat labels.
type Stats struct {
	Free      string
	Models    string
	Unlimited string
	Fast      string
}

// Feature is one named feature entry.
type Feature struct {
	Title       string
	Description string
}

// Features holds the section title and the four feature entries.
type Features struct {
	Title    string
	Commit   Feature
	Code     Feature
	Review   Feature
	Comments Feature
}

// List returns the feature entries in display order.
func (f Features) List() []Feature {
	return []Feature{f.Commit, f.Code, f.Review, f.Comments}
}

// Install holds the install section copy.
type Install struct {
	Title           string
	AlternativeText string
}

// Tech holds the technology blurb.
type Tech struct {
	Title       string
	Description string
}

// Footer holds footer labels.
type Footer struct {
	CreatedLabel   string
	CopyrightLabel string
}

// Bundle is the complete set of display strings for one language.
type Bundle struct {
	Hero     Hero
	Stats    Stats
	Features Features
	Install  Install
	Tech     Tech
	Footer   Footer
}

// Field is one leaf of a bundle, addressed by its catalog key.
type Field struct {
	Key   string
	Value string
}

// Fields lists every leaf string in a fixed order shared by all bundles.
func (b Bundle) Fields() []Field {
	return []Field{
		{"hero.title", b.Hero.Title},
		{"hero.subtitle", b.Hero.Subtitle},
		{"hero.description", b.Hero.Description},
		{"hero.github", b.Hero.GitHubLabel},
		{"hero.docs", b.Hero.DocsLabel},
		{"stats.free", b.Stats.Free},
		{"stats.models", b.Stats.Models},
		{"stats.unlimited", b.Stats.Unlimited},
		{"stats.fast", b.Stats.Fast},
		{"features.title", b.Features.Title},
		{"features.commit.title", b.Features.Commit.Title},
		{"features.commit.description", b.Features.Commit.Description},
		{"features.code.title", b.Features.Code.Title},
		{"features.code.description", b.Features.Code.Description},
		{"features.review.title", b.Features.Review.Title},
		{"features.review.description", b.Features.Review.Description},
		{"features.comments.title", b.Features.Comments.Title},
		{"features.comments.description", b.Features.Comments.Description},
		{"install.title", b.Install.Title},
		{"install.alternative", b.Install.AlternativeText},
		{"tech.title", b.Tech.Title},
		{"tech.description", b.Tech.Description},
		{"footer.created", b.Footer.CreatedLabel},
		{"footer.copyright", b.Footer.CopyrightLabel},
	}
}

// Validate reports the first empty leaf, if any.
func (b Bundle) Validate() error {
	for _, field := range b.Fields() {
		if strings.TrimSpace(field.Value) == "" {
			return fmt.Errorf("bundle field %q is empty", field.Key)
		}
	}
	return nil
}

// bundleFromMessages builds a bundle from a flat catalog namespace.
// Missing and unknown keys are both rejected so every bundle has one shape.
func bundleFromMessages(messages map[string]string) (Bundle, error) {
	used := make(map[string]struct{}, len(messages))
	var missing []string
	pick := func(key string) string {
		value, ok := messages[key]
		if !ok {
			missing = append(missing, key)
			return ""
		}
		used[key] = struct{}{}
		return value
	}

	b := Bundle{
		Hero: Hero{
			Title:       pick("hero.title"),
			Subtitle:    pick("hero.subtitle"),
			Description: pick("hero.description"),
			GitHubLabel: pick("hero.github"),
			DocsLabel:   pick("hero.docs"),
		},
		Stats: Stats{
			Free:      pick("stats.free"),
			Models:    pick("stats.models"),
			Unlimited: pick("stats.unlimited"),
			Fast:      pick("stats.fast"),
		},
		Features: Features{
			Title:    pick("features.title"),
			Commit:   Feature{Title: pick("features.commit.title"), Description: pick("features.commit.description")},
			Code:     Feature{Title: pick("features.code.title"), Description: pick("features.code.description")},
			Review:   Feature{Title: pick("features.review.title"), Description: pick("features.review.description")},
			Comments: Feature{Title: pick("features.comments.title"), Description: pick("features.comments.description")},
		},
		Install: Install{
			Title:           pick("install.title"),
			AlternativeText: pick("install.alternative"),
		},
		Tech: Tech{
			Title:       pick("tech.title"),
			Description: pick("tech.description"),
		},
		Footer: Footer{
			CreatedLabel:   pick("footer.created"),
			CopyrightLabel: pick("footer.copyright"),
		},
	}

	if len(missing) > 0 {
		return Bundle{}, fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}
	if len(used) != len(messages) {
		var unknown []string
		for key := range messages {
			if _, ok := used[key]; !ok {
				unknown = append(unknown, key)
			}
		}
		sort.Strings(unknown)
		return Bundle{}, fmt.Errorf("unknown keys: %s", strings.Join(unknown, ", "))
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}
