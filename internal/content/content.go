// Package content holds the static records the portfolio renders.
package content

import "github.com/Zachkp/portfolio/internal/view"

// Project types.
const (
	ProjectCode = "code"
	ProjectFilm = "film"
)

type Links struct {
	Demo   string `yaml:"demo,omitempty"`
	GitHub string `yaml:"github,omitempty"`
	Watch  string `yaml:"watch,omitempty"`
}

type Project struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	Type        string   `yaml:"type"`
	Links       Links    `yaml:"links"`
	// Video is a watch URL played in the portfolio's video modal.
	Video string `yaml:"video,omitempty"`
}

// ShowCodeLinks reports whether the GitHub/demo icons apply.
func (p Project) ShowCodeLinks() bool {
	return p.Type == ProjectCode
}

// EmbedURL is the player URL for the project's video, or "".
func (p Project) EmbedURL() string {
	if p.Video == "" {
		return ""
	}
	return view.EmbedURL(p.Video)
}

type Achievement struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Year        string `yaml:"year"`
	Icon        string `yaml:"icon"`
	// Detail is the optional text behind the "read more" toggle.
	Detail string `yaml:"detail,omitempty"`
	// Certificate is an optional image path shown in the achievement lightbox.
	Certificate string `yaml:"certificate,omitempty"`
}

// Certificate categories.
const (
	CertTechnical = "technical"
	CertCreative  = "creative"
	CertAcademic  = "academic"
)

type Certificate struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Issuer      string `yaml:"issuer"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Category    string `yaml:"category"`
}

// Badge is the capitalised category label.
func (c Certificate) Badge() string {
	return view.Title(c.Category)
}

// Gallery categories.
const (
	GalleryCoding     = "coding"
	GalleryFilmmaking = "filmmaking"
	GalleryEvents     = "events"
)

type GalleryImage struct {
	ID       string `yaml:"id"`
	Src      string `yaml:"src"`
	Alt      string `yaml:"alt"`
	Category string `yaml:"category"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url"`
}

// Profile is the hero, about and contact copy.
type Profile struct {
	Name        string       `yaml:"name"`
	Tagline     string       `yaml:"tagline"`
	Intro       string       `yaml:"intro"`
	Motto       string       `yaml:"motto"`
	Photo       string       `yaml:"photo"`
	Resume      string       `yaml:"resume"`
	Email       string       `yaml:"email"`
	Phone       string       `yaml:"phone"`
	// PhoneLink is the dialable number, without the tel: scheme.
	PhoneLink   string       `yaml:"phone_link"`
	Socials     []SocialLink `yaml:"socials"`
	AboutSource string       `yaml:"about"`
}

// Catalog is every static record of the site.
type Catalog struct {
	Profile      Profile        `yaml:"profile"`
	Projects     []Project      `yaml:"projects"`
	Achievements []Achievement  `yaml:"achievements"`
	Certificates []Certificate  `yaml:"certificates"`
	Gallery      []GalleryImage `yaml:"gallery"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Profile:      profile,
		Projects:     projects,
		Achievements: achievements,
		Certificates: certificates,
		Gallery:      galleryImages,
	}
}

// Identity and category accessors for the view helpers.

func CertificateID(c Certificate) string         { return c.ID }
func CertificateCategory(c Certificate) string   { return c.Category }
func GalleryImageID(g GalleryImage) string       { return g.ID }
func GalleryImageCategory(g GalleryImage) string { return g.Category }
func ProjectSlug(p Project) string               { return p.Slug }
func AchievementSlug(a Achievement) string       { return a.Slug }

// CertificateCategories lists the filter values of the certificates page.
func CertificateCategories() []string {
	return []string{CertTechnical, CertCreative, CertAcademic}
}

// GalleryCategories lists the filter values of the gallery.
func GalleryCategories() []string {
	return []string{GalleryCoding, GalleryFilmmaking, GalleryEvents}
}
