package web

import (
	"net/http"
	"strconv"

	"go-pestcontrol-web/config"
	"go-pestcontrol-web/internal/content"
	"go-pestcontrol-web/internal/domain"
	"go-pestcontrol-web/internal/slideshow"
	"go-pestcontrol-web/internal/usecase"
	"go-pestcontrol-web/pkg/locale"
	"go-pestcontrol-web/pkg/seo"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the page handlers need.
type Deps struct {
	ContentUC usecase.ContentUsecase
	Hero      *slideshow.Slideshow
	Config    *config.Config
}

type Handler struct {
	contentUC  usecase.ContentUsecase
	hero       *slideshow.Slideshow
	heroImages []string
	cfg        *config.Config
}

// Register mounts the server-rendered site on the engine: the Arabic
// (default, unprefixed) tree and its mirror under /en, plus the hero
// carousel endpoints.
func Register(r *gin.Engine, deps Deps) {
	r.SetHTMLTemplate(Templates())
	r.Static("/static", "./static")

	h := &Handler{
		contentUC:  deps.ContentUC,
		hero:       deps.Hero,
		heroImages: content.NewCatalog().HeroImages(),
		cfg:        deps.Config,
	}

	for _, l := range []locale.Locale{locale.Arabic, locale.English} {
		g := r.Group(locale.PathFor(l, "/"))
		g.GET("", h.home(l))
		g.GET("/services", h.services(l))
		g.GET("/services/:slug", h.service(l))
		g.GET("/blog", h.blog(l))
		g.GET("/blog/:slug", h.blogPost(l))
		g.GET("/districts/:slug", h.district(l))
		g.GET("/contact", h.contact(l))
	}

	hero := r.Group("/hero")
	hero.GET("/state", h.heroState)
	hero.POST("/next", h.heroNext)
	hero.POST("/prev", h.heroPrev)
	hero.POST("/goto/:index", h.heroGoTo)
}

// HeroView is the slideshow snapshot a page renders against.
type HeroView struct {
	Images []string `json:"images"`
	Active int      `json:"active"`
	Paused bool     `json:"paused"`
}

func (h *Handler) heroView() HeroView {
	return HeroView{
		Images: h.heroImages,
		Active: h.hero.Index(),
		Paused: h.hero.State() == slideshow.Paused,
	}
}

func (h *Handler) home(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := h.cfg.CompanyNameEn
		if l == locale.Arabic {
			title = h.cfg.CompanyNameAr
		}
		page := newPage(h.cfg, l, "/", title, content.T(l, "services.title"))

		c.HTML(http.StatusOK, "home.html", gin.H{
			"Page":         page,
			"Hero":         h.heroView(),
			"Services":     h.contentUC.Services(l),
			"Districts":    h.contentUC.Districts(l),
			"Testimonials": h.contentUC.Testimonials(l),
		})
	}
}

func (h *Handler) services(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := newPage(h.cfg, l, "/services", content.T(l, "services.title"), content.T(l, "services.title"))
		c.HTML(http.StatusOK, "services.html", gin.H{
			"Page":     page,
			"Services": h.contentUC.Services(l),
		})
	}
}

func (h *Handler) service(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		svc, ok := h.contentUC.ServiceBySlug(l, slug)
		if !ok {
			h.notFound(c, l)
			return
		}

		qas := make([]seo.QA, 0, len(svc.FAQs))
		for _, f := range svc.FAQs {
			qas = append(qas, seo.QA{Question: f.Question, Answer: f.Answer})
		}

		page := newPage(h.cfg, l, "/services/"+slug, svc.Name, svc.Tagline).withSchema(
			seo.Service(seo.ServiceData{
				Name:        svc.Name,
				Description: svc.Description,
				ServiceType: "Pest Control",
				Provider:    h.cfg.CompanyNameEn,
				AreaServed:  "Jeddah",
				URL:         h.cfg.BaseURL + svc.Href,
			}),
			seo.FAQ(qas),
		)

		c.HTML(http.StatusOK, "service.html", gin.H{
			"Page":    page,
			"Service": svc,
		})
	}
}

func (h *Handler) blog(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := newPage(h.cfg, l, "/blog", content.T(l, "blog.title"), content.T(l, "blog.title"))
		c.HTML(http.StatusOK, "blog.html", gin.H{
			"Page":  page,
			"Posts": h.contentUC.Posts(l),
		})
	}
}

func (h *Handler) blogPost(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		post, ok := h.contentUC.PostBySlug(l, slug)
		if !ok {
			h.notFound(c, l)
			return
		}

		page := newPage(h.cfg, l, "/blog/"+slug, post.Title, post.Excerpt).withSchema(
			seo.Article(seo.ArticleData{
				Title:       post.Title,
				Description: post.Excerpt,
				Author:      post.Author,
				PublishedAt: post.PublishedAt.Format("2006-01-02"),
				Image:       h.cfg.BaseURL + post.Image,
				URL:         h.cfg.BaseURL + post.Href,
			}),
		)

		c.HTML(http.StatusOK, "blog_post.html", gin.H{
			"Page": page,
			"Post": post,
		})
	}
}

func (h *Handler) district(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		d, ok := h.contentUC.DistrictBySlug(l, slug)
		if !ok {
			h.notFound(c, l)
			return
		}

		page := newPage(h.cfg, l, "/districts/"+slug, d.Name, d.Blurb)
		c.HTML(http.StatusOK, "district.html", gin.H{
			"Page":     page,
			"District": d,
			"Services": h.contentUC.Services(l),
		})
	}
}

func (h *Handler) contact(l locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := newPage(h.cfg, l, "/contact", content.T(l, "contact.title"), content.T(l, "contact.title"))
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Page":      page,
			"Districts": domain.Districts,
			"PestTypes": domain.PestTypes,
		})
	}
}

func (h *Handler) notFound(c *gin.Context, l locale.Locale) {
	page := newPage(h.cfg, l, "/", "404", "")
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Page": page})
}

// Hero carousel endpoints. The page script polls state while
// autoplaying and posts navigation; any post pauses the rotation for
// good.

func (h *Handler) heroState(c *gin.Context) {
	c.JSON(http.StatusOK, h.heroView())
}

func (h *Handler) heroNext(c *gin.Context) {
	h.hero.Next()
	c.JSON(http.StatusOK, h.heroView())
}

func (h *Handler) heroPrev(c *gin.Context) {
	h.hero.Prev()
	c.JSON(http.StatusOK, h.heroView())
}

func (h *Handler) heroGoTo(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}
	h.hero.GoTo(i)
	c.JSON(http.StatusOK, h.heroView())
}
