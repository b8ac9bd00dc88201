package usecase

import (
	"html/template"
	"time"

	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/pkg/locale"
)

// Resolved view models: content with the bilingual pairs already
// collapsed for one locale. Templates never see a Bilingual value.

type ResolvedFAQ struct {
	Question string
	Answer   string
}

type ResolvedService struct {
	Slug        string
	Name        string
	Tagline     string
	Description string
	Image       string
	Href        string
	Features    []string
	FAQs        []ResolvedFAQ
}

type ResolvedTOCEntry struct {
	ID    string
	Title string
	Level int
}

type ResolvedRelated struct {
	Slug  string
	Title string
	Image string
	Href  string
}

type ResolvedPost struct {
	Slug        string
	Title       string
	Excerpt     string
	Body        template.HTML
	Author      string
	PublishedAt time.Time
	Image       string
	Href        string
	TOC         []ResolvedTOCEntry
	Related     []ResolvedRelated
}

type ResolvedDistrict struct {
	Slug  string
	Name  string
	Blurb string
	Href  string
}

type ResolvedTestimonial struct {
	Author string
	Quote  string
	Rating int
}

// ContentUsecase resolves catalog records for the active locale.
type ContentUsecase interface {
	Services(l locale.Locale) []ResolvedService
	ServiceBySlug(l locale.Locale, slug string) (ResolvedService, bool)
	Posts(l locale.Locale) []ResolvedPost
	PostBySlug(l locale.Locale, slug string) (ResolvedPost, bool)
	Districts(l locale.Locale) []ResolvedDistrict
	DistrictBySlug(l locale.Locale, slug string) (ResolvedDistrict, bool)
	Testimonials(l locale.Locale) []ResolvedTestimonial
}

type contentUsecase struct {
	catalog *content.Catalog
}

func NewContentUsecase(catalog *content.Catalog) ContentUsecase {
	return &contentUsecase{catalog: catalog}
}

func (uc *contentUsecase) Services(l locale.Locale) []ResolvedService {
	records := uc.catalog.Services()
	out := make([]ResolvedService, 0, len(records))
	for _, s := range records {
		out = append(out, resolveService(l, s))
	}
	return out
}

func (uc *contentUsecase) ServiceBySlug(l locale.Locale, slug string) (ResolvedService, bool) {
	s, ok := uc.catalog.ServiceBySlug(slug)
	if !ok {
		return ResolvedService{}, false
	}
	return resolveService(l, s), true
}

func (uc *contentUsecase) Posts(l locale.Locale) []ResolvedPost {
	records := uc.catalog.Posts()
	out := make([]ResolvedPost, 0, len(records))
	for _, p := range records {
		out = append(out, resolvePost(l, p))
	}
	return out
}

func (uc *contentUsecase) PostBySlug(l locale.Locale, slug string) (ResolvedPost, bool) {
	p, ok := uc.catalog.PostBySlug(slug)
	if !ok {
		return ResolvedPost{}, false
	}
	return resolvePost(l, p), true
}

func (uc *contentUsecase) Districts(l locale.Locale) []ResolvedDistrict {
	records := uc.catalog.Districts()
	out := make([]ResolvedDistrict, 0, len(records))
	for _, d := range records {
		out = append(out, ResolvedDistrict{
			Slug:  d.Slug,
			Name:  d.Name.Resolve(l),
			Blurb: d.Blurb.Resolve(l),
			Href:  locale.PathFor(l, "/districts/"+d.Slug),
		})
	}
	return out
}

func (uc *contentUsecase) DistrictBySlug(l locale.Locale, slug string) (ResolvedDistrict, bool) {
	d, ok := uc.catalog.DistrictBySlug(slug)
	if !ok {
		return ResolvedDistrict{}, false
	}
	return ResolvedDistrict{
		Slug:  d.Slug,
		Name:  d.Name.Resolve(l),
		Blurb: d.Blurb.Resolve(l),
		Href:  locale.PathFor(l, "/districts/"+d.Slug),
	}, true
}

func (uc *contentUsecase) Testimonials(l locale.Locale) []ResolvedTestimonial {
	records := uc.catalog.Testimonials()
	out := make([]ResolvedTestimonial, 0, len(records))
	for _, t := range records {
		out = append(out, ResolvedTestimonial{
			Author: t.Author.Resolve(l),
			Quote:  t.Quote.Resolve(l),
			Rating: t.Rating,
		})
	}
	return out
}

func resolveService(l locale.Locale, s domain.ServiceContent) ResolvedService {
	features := make([]string, 0, len(s.Features))
	for _, f := range s.Features {
		features = append(features, f.Resolve(l))
	}
	faqs := make([]ResolvedFAQ, 0, len(s.FAQs))
	for _, f := range s.FAQs {
		faqs = append(faqs, ResolvedFAQ{
			Question: f.Question.Resolve(l),
			Answer:   f.Answer.Resolve(l),
		})
	}
	return ResolvedService{
		Slug:        s.Slug,
		Name:        s.Name.Resolve(l),
		Tagline:     s.Tagline.Resolve(l),
		Description: s.Description.Resolve(l),
		Image:       s.Image,
		Href:        locale.PathFor(l, "/services/"+s.Slug),
		Features:    features,
		FAQs:        faqs,
	}
}

func resolvePost(l locale.Locale, p domain.BlogContent) ResolvedPost {
	toc := make([]ResolvedTOCEntry, 0, len(p.TOC))
	for _, e := range p.TOC {
		toc = append(toc, ResolvedTOCEntry{
			ID:    e.ID,
			Title: e.Title.Resolve(l),
			Level: e.Level,
		})
	}
	related := make([]ResolvedRelated, 0, len(p.Related))
	for _, r := range p.Related {
		related = append(related, ResolvedRelated{
			Slug:  r.Slug,
			Title: r.Title.Resolve(l),
			Image: r.Image,
			Href:  locale.PathFor(l, "/blog/"+r.Slug),
		})
	}
	return ResolvedPost{
		Slug:        p.Slug,
		Title:       p.Title.Resolve(l),
		Excerpt:     p.Excerpt.Resolve(l),
		Body:        template.HTML(p.Body.Resolve(l)),
		Author:      p.Author,
		PublishedAt: p.PublishedAt,
		Image:       p.Image,
		Href:        locale.PathFor(l, "/blog/"+p.Slug),
		TOC:         toc,
		Related:     related,
	}
}
