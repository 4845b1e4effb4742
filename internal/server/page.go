package server

import (
	"net/url"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/view"
)

// Sections of the home page in document order.
var sections = []view.NavItem{
	{ID: "home", Label: "Home", Icon: "home"},
	{ID: "about", Label: "About Me", Icon: "user"},
	{ID: "portfolio", Label: "Portfolio", Icon: "briefcase"},
	{ID: "achievements", Label: "Achievements", Icon: "trophy"},
	{ID: "gallery", Label: "Gallery", Icon: "image"},
	{ID: "contact", Label: "Contact", Icon: "phone"},
}

// Query parameters carrying widget state.
const (
	paramGalleryCategory = "gallery"
	paramGalleryPhoto    = "photo"
	paramExpanded        = "expanded"
	paramAward           = "award"
	paramVideo           = "video"
	paramCategory        = "category"
	paramCertificate     = "cert"
	paramNav             = "nav"
)

// link is a widget action: Href reloads the whole page, HX swaps the fragment.
type link struct {
	Href string
	HX   string
}

// encode builds a query string from key/value pairs, skipping empty values.
func encode(kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	return q.Encode()
}

func withQuery(path, q string) string {
	if q == "" {
		return path
	}
	return path + "?" + q
}

// homeLink points at one section of the home page and its fragment endpoint.
func homeLink(section string, kv ...string) link {
	q := encode(kv...)
	return link{
		Href: withQuery("/", q) + "#" + section,
		HX:   withQuery("/sections/"+section, q),
	}
}

func certificatesLink(kv ...string) link {
	q := encode(kv...)
	return link{
		Href: withQuery("/certificates", q),
		HX:   withQuery("/certificates/grid", q),
	}
}

type filterButton struct {
	view.FilterOption
	Link link
}

// navView is the navbar fragment.
type navView struct {
	Entries       []view.NavEntry
	Active        string
	Scrolled      bool
	ShowScrollTop bool
	Theme         string
	// Base prefixes section anchors on pages other than home.
	Base string
	// Refresh is the /nav URL the next scroll event requests.
	Refresh string
}

func buildNav(pos view.Position, theme, base string) navView {
	base = navBase(base)
	return navView{
		Entries:       view.Navigation(sections, pos.Active),
		Active:        pos.Active,
		Scrolled:      pos.Scrolled,
		ShowScrollTop: pos.ShowScrollTop,
		Theme:         theme,
		Base:          base,
		Refresh:       withQuery("/nav", encode("active", pos.Active, "base", base)),
	}
}

// navBase allows anchors on the home page itself or on the home page from
// another route.
func navBase(base string) string {
	if base == "/" {
		return "/"
	}
	return ""
}

func isSection(id string) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// registeredLayout keeps the measured sections that belong to the page, in
// document order. The first measurement of a repeated id wins.
func registeredLayout(measured []view.Section) []view.Section {
	var layout []view.Section
	for _, s := range sections {
		for _, m := range measured {
			if m.ID == s.ID {
				layout = append(layout, m)
				break
			}
		}
	}
	return layout
}

// registeredActive falls back to the first section for unknown ids.
func registeredActive(id string) string {
	if isSection(id) {
		return id
	}
	return sections[0].ID
}

type galleryCard struct {
	Image content.GalleryImage
	Open  link
}

type galleryView struct {
	Filters  []filterButton
	Cards    []galleryCard
	Open     *content.GalleryImage
	Prev     link
	Next     link
	Close    link
	Category string
	// Position is 1-based within the filtered list, 0 when the open item
	// is not part of it.
	Position int
	Total    int
}

// buildGallery applies the request's filter, lightbox and navigation
// state to the gallery.
func buildGallery(images []content.GalleryImage, category, photo, nav string) galleryView {
	category = view.NormalizeCategory(category, content.GalleryCategories()...)
	filtered := view.Filter(category, images, content.GalleryImageCategory)

	v := galleryView{Category: category}
	for _, opt := range view.FilterOptions(category, content.GalleryCategories()...) {
		v.Filters = append(v.Filters, filterButton{
			FilterOption: opt,
			Link:         homeLink("gallery", paramGalleryCategory, categoryParam(opt.Value)),
		})
	}
	cat := categoryParam(category)
	for _, img := range filtered {
		v.Cards = append(v.Cards, galleryCard{
			Image: img,
			Open:  homeLink("gallery", paramGalleryCategory, cat, paramGalleryPhoto, img.ID),
		})
	}

	overlay := view.NewOverlay(content.GalleryImageID)
	if overlay.OpenKey(images, photo) {
		applyNav(overlay, filtered, nav)
	}
	if img, ok := overlay.Current(); ok {
		v.Open = &img
		v.Position, v.Total = overlay.Index(filtered)+1, len(filtered)
		v.Prev = homeLink("gallery", paramGalleryCategory, cat, paramGalleryPhoto, img.ID, paramNav, "prev")
		v.Next = homeLink("gallery", paramGalleryCategory, cat, paramGalleryPhoto, img.ID, paramNav, "next")
		v.Close = homeLink("gallery", paramGalleryCategory, cat)
	}
	return v
}

type certificateCard struct {
	Certificate content.Certificate
	Open        link
}

type certificatesView struct {
	Filters  []filterButton
	Cards    []certificateCard
	Open     *content.Certificate
	Prev     link
	Next     link
	Close    link
	Category string
	// Position is 1-based within the filtered list, 0 when the open item
	// is not part of it.
	Position int
	Total    int
}

func buildCertificates(certs []content.Certificate, category, cert, nav string) certificatesView {
	category = view.NormalizeCategory(category, content.CertificateCategories()...)
	filtered := view.Filter(category, certs, content.CertificateCategory)

	v := certificatesView{Category: category}
	for _, opt := range view.FilterOptions(category, content.CertificateCategories()...) {
		v.Filters = append(v.Filters, filterButton{
			FilterOption: opt,
			Link:         certificatesLink(paramCategory, categoryParam(opt.Value)),
		})
	}
	cat := categoryParam(category)
	for _, c := range filtered {
		v.Cards = append(v.Cards, certificateCard{
			Certificate: c,
			Open:        certificatesLink(paramCategory, cat, paramCertificate, c.ID),
		})
	}

	overlay := view.NewOverlay(content.CertificateID)
	if overlay.OpenKey(certs, cert) {
		applyNav(overlay, filtered, nav)
	}
	if c, ok := overlay.Current(); ok {
		v.Open = &c
		v.Position, v.Total = overlay.Index(filtered)+1, len(filtered)
		v.Prev = certificatesLink(paramCategory, cat, paramCertificate, c.ID, paramNav, "prev")
		v.Next = certificatesLink(paramCategory, cat, paramCertificate, c.ID, paramNav, "next")
		v.Close = certificatesLink(paramCategory, cat)
	}
	return v
}

type achievementCard struct {
	Achievement content.Achievement
	Expanded    bool
	Toggle      link
	Award       link
}

type achievementsView struct {
	Cards []achievementCard
	Open  *content.Achievement
	Close link
}

// buildAchievements expands at most one entry and shows the certificate of
// at most one award. Entries without detail or certificate get no control.
func buildAchievements(items []content.Achievement, expanded, award string) achievementsView {
	acc := view.ParseAccordion(expanded)

	var v achievementsView
	for i, a := range items {
		card := achievementCard{Achievement: a, Expanded: acc.IsExpanded(i) && a.Detail != ""}
		if a.Detail != "" {
			card.Toggle = homeLink("achievements", paramExpanded, acc.ToggleQuery(i))
		}
		if a.Certificate != "" {
			card.Award = homeLink("achievements", paramExpanded, acc.Query(), paramAward, a.Slug)
		}
		v.Cards = append(v.Cards, card)
	}

	var withCertificate []content.Achievement
	for _, a := range items {
		if a.Certificate != "" {
			withCertificate = append(withCertificate, a)
		}
	}
	overlay := view.NewOverlay(content.AchievementSlug)
	overlay.OpenKey(withCertificate, award)
	if a, ok := overlay.Current(); ok {
		v.Open = &a
		v.Close = homeLink("achievements", paramExpanded, acc.Query())
	}
	return v
}

type projectCard struct {
	Project content.Project
	Play    link
}

type portfolioView struct {
	Cards    []projectCard
	Open     *content.Project
	EmbedURL string
	Close    link
}

func buildPortfolio(projects []content.Project, video string) portfolioView {
	var v portfolioView
	var playable []content.Project
	for _, p := range projects {
		card := projectCard{Project: p}
		if p.Video != "" {
			card.Play = homeLink("portfolio", paramVideo, p.Slug)
			playable = append(playable, p)
		}
		v.Cards = append(v.Cards, card)
	}

	overlay := view.NewOverlay(content.ProjectSlug)
	overlay.OpenKey(playable, video)
	if p, ok := overlay.Current(); ok {
		v.Open = &p
		v.EmbedURL = p.EmbedURL()
		v.Close = homeLink("portfolio")
	}
	return v
}

func applyNav[T any](o *view.Overlay[T], list []T, nav string) {
	switch nav {
	case "next":
		o.Next(list)
	case "prev":
		o.Prev(list)
	}
}

// categoryParam leaves "all" out of links.
func categoryParam(c string) string {
	if c == view.All {
		return ""
	}
	return c
}
